package booking

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Actions lists the decisions an operator can still take on a booking in this status.
func (s Status) Actions() []Status {
	if s != StatusPending {
		return nil
	}
	return []Status{StatusConfirmed, StatusCancelled}
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// ParseDecision accepts only the statuses an operator may move a booking into.
func ParseDecision(s string) (Status, error) {
	status, err := ParseStatus(s)
	if err != nil {
		return "", err
	}
	if !status.IsTerminal() {
		return "", fmt.Errorf("%w: %q is not a decision", ErrInvalidStatus, s)
	}
	return status, nil
}
