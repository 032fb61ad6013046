package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrTerminalStatus  = errors.New("booking status is terminal")
	ErrInvalidGuests   = errors.New("guests count cannot be negative")
	ErrMissingRecordID = errors.New("booking id is required")
)

// ValidateTransition enforces pending -> confirmed|cancelled; everything else is rejected.
func ValidateTransition(from, to Status) error {
	if !from.IsValid() {
		return fmt.Errorf("%w: current %q", ErrInvalidStatus, from)
	}
	if !to.IsTerminal() {
		return fmt.Errorf("%w: target %q", ErrInvalidStatus, to)
	}
	if from.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalStatus, from)
	}
	return nil
}

// ConfirmationTitle and ConfirmationPrompt are what the operator is asked before a decision is committed.
const ConfirmationTitle = "Confirm Status Change"

func ConfirmationPrompt(to Status) string {
	return fmt.Sprintf("Are you sure you want to %s this booking?", to)
}

// StatusEvent is the audit entry written alongside every committed decision.
type StatusEvent struct {
	id         uuid.UUID
	bookingID  string
	from       Status
	to         Status
	operatorID uuid.UUID
	createdAt  time.Time
}

func NewStatusEvent(bookingID string, from, to Status, operatorID uuid.UUID, now time.Time) (*StatusEvent, error) {
	if bookingID == "" {
		return nil, ErrMissingRecordID
	}
	if err := ValidateTransition(from, to); err != nil {
		return nil, err
	}
	return &StatusEvent{
		id:         uuid.New(),
		bookingID:  bookingID,
		from:       from,
		to:         to,
		operatorID: operatorID,
		createdAt:  now,
	}, nil
}

func (e *StatusEvent) ID() uuid.UUID         { return e.id }
func (e *StatusEvent) BookingID() string     { return e.bookingID }
func (e *StatusEvent) From() Status          { return e.from }
func (e *StatusEvent) To() Status            { return e.to }
func (e *StatusEvent) OperatorID() uuid.UUID { return e.operatorID }
func (e *StatusEvent) CreatedAt() time.Time  { return e.createdAt }

// ValidateGuests is applied when records cross the store boundary.
func ValidateGuests(n int32) error {
	if n < 0 {
		return ErrInvalidGuests
	}
	return nil
}
