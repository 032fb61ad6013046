package listing

import (
	"context"
	"fmt"
	"sync"

	"hotel-admin/internal/domain/booking"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

const (
	GateIdle       = "idle"
	GateAwaiting   = "awaiting_confirmation"
	GateCommitting = "committing"

	eventRequest = "request"
	eventCancel  = "cancel"
	eventConfirm = "confirm"
	eventDone    = "done"
)

// Intent is a status change waiting for the operator's answer.
type Intent struct {
	BookingID string
	Status    booking.Status
}

func (i Intent) Title() string {
	return booking.ConfirmationTitle
}

func (i Intent) Prompt() string {
	return booking.ConfirmationPrompt(i.Status)
}

// ConfirmationGate holds at most one Intent. Nothing reaches the mutator
// until Confirm; Cancel discards the intent without any remote call.
type ConfirmationGate struct {
	list    *List[queries.BookingView]
	mutator *StatusMutator

	mu      sync.Mutex
	machine *fsm.FSM
	pending *Intent
}

func NewConfirmationGate(list *List[queries.BookingView], mutator *StatusMutator) *ConfirmationGate {
	return &ConfirmationGate{
		list:    list,
		mutator: mutator,
		machine: fsm.NewFSM(
			GateIdle,
			fsm.Events{
				{Name: eventRequest, Src: []string{GateIdle}, Dst: GateAwaiting},
				{Name: eventCancel, Src: []string{GateAwaiting}, Dst: GateIdle},
				{Name: eventConfirm, Src: []string{GateAwaiting}, Dst: GateCommitting},
				{Name: eventDone, Src: []string{GateCommitting}, Dst: GateIdle},
			},
			fsm.Callbacks{},
		),
	}
}

func (g *ConfirmationGate) State() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.machine.Current()
}

func (g *ConfirmationGate) Pending() (Intent, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return Intent{}, false
	}
	return *g.pending, true
}

// Request records an intent for a loaded, pending booking.
func (g *ConfirmationGate) Request(ctx context.Context, id string, status string) (Intent, error) {
	target, err := booking.ParseDecision(status)
	if err != nil {
		return Intent{}, errs.Mark(err, errs.ErrInvalidStatus)
	}
	record, ok := g.list.Find(id)
	if !ok {
		return Intent{}, errs.Mark(fmt.Errorf("booking %q is not loaded", id), errs.ErrBookingNotFound)
	}
	if record.Status.IsTerminal() {
		return Intent{}, errs.Mark(
			fmt.Errorf("booking %q is already %s", id, record.Status), errs.ErrStatusTerminal)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.machine.Can(eventRequest) {
		return Intent{}, errs.ErrIntentPending
	}
	if err := g.machine.Event(ctx, eventRequest); err != nil {
		return Intent{}, err
	}
	g.pending = &Intent{BookingID: id, Status: target}
	return *g.pending, nil
}

func (g *ConfirmationGate) Cancel(ctx context.Context) (Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.machine.Can(eventCancel) {
		return Intent{}, errs.ErrNoIntent
	}
	if err := g.machine.Event(ctx, eventCancel); err != nil {
		return Intent{}, err
	}
	intent := *g.pending
	g.pending = nil
	return intent, nil
}

// Confirm hands the pending intent to the mutator. The gate is back to idle
// afterwards whether or not the commit succeeded.
func (g *ConfirmationGate) Confirm(ctx context.Context, actor uuid.UUID) (Intent, error) {
	g.mu.Lock()
	if !g.machine.Can(eventConfirm) {
		g.mu.Unlock()
		return Intent{}, errs.ErrNoIntent
	}
	if err := g.machine.Event(ctx, eventConfirm); err != nil {
		g.mu.Unlock()
		return Intent{}, err
	}
	intent := *g.pending
	g.mu.Unlock()

	commitErr := g.mutator.Apply(ctx, intent.BookingID, intent.Status, actor)

	g.mu.Lock()
	g.pending = nil
	_ = g.machine.Event(ctx, eventDone)
	g.mu.Unlock()

	return intent, commitErr
}
