package handoff

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-picker/internal/model"
)

// ErrBusy is returned when an operation of the same kind is already in flight
var ErrBusy = errors.New("operation already in progress")

// ErrClosed is returned after the tracker has been shut down
var ErrClosed = errors.New("application is shutting down")

// OpIDPrefix prefixes generated operation IDs
const OpIDPrefix = "op-"

// Op is the bookkeeping for one background operation
type Op struct {
	ID        string
	Kind      model.OpKind
	Status    model.OpStatus
	LastError string
	StartedAt time.Time
	EndedAt   time.Time

	cancel context.CancelFunc
}

// Tracker holds the busy flag and cancel function of each operation kind.
// It belongs to the foreground and is not safe for concurrent use.
type Tracker struct {
	parent context.Context
	ops    map[model.OpKind]*Op
	closed bool
}

// NewTracker creates a tracker whose operations derive from parent
func NewTracker(parent context.Context) *Tracker {
	return &Tracker{
		parent: parent,
		ops:    make(map[model.OpKind]*Op),
	}
}

// Busy reports whether an operation of kind is in flight
func (t *Tracker) Busy(kind model.OpKind) bool {
	op, ok := t.ops[kind]
	return ok && op.Status.IsActive()
}

// Status returns the status of the latest operation of kind
func (t *Tracker) Status(kind model.OpKind) model.OpStatus {
	if op, ok := t.ops[kind]; ok {
		return op.Status
	}
	return model.OpStatusIdle
}

// Get returns a copy of the latest operation of kind
func (t *Tracker) Get(kind model.OpKind) (Op, bool) {
	op, ok := t.ops[kind]
	if !ok {
		return Op{}, false
	}
	return *op, true
}

// Begin marks kind as busy and returns the context and ID for the new
// operation. It fails with ErrBusy while one is already in flight.
func (t *Tracker) Begin(kind model.OpKind) (context.Context, string, error) {
	if t.closed {
		return nil, "", ErrClosed
	}
	if t.Busy(kind) {
		return nil, "", fmt.Errorf("%s: %w", kind, ErrBusy)
	}
	return t.start(kind)
}

// Replace cancels any in-flight operation of kind and begins a new one
func (t *Tracker) Replace(kind model.OpKind) (context.Context, string, error) {
	if t.closed {
		return nil, "", ErrClosed
	}
	if op, ok := t.ops[kind]; ok && op.Status.IsActive() {
		log.Printf("handoff: superseding %s operation %s", kind, op.ID)
		op.cancel()
		op.Status = model.OpStatusCanceled
		op.EndedAt = time.Now()
	}
	return t.start(kind)
}

// Cancel aborts the in-flight operation of kind, if any. Its result will be
// rejected by Finish.
func (t *Tracker) Cancel(kind model.OpKind) {
	op, ok := t.ops[kind]
	if !ok || !op.Status.IsActive() {
		return
	}
	log.Printf("handoff: canceling %s operation %s", kind, op.ID)
	op.cancel()
	op.Status = model.OpStatusCanceled
	op.EndedAt = time.Now()
}

// Finish records the outcome of operation id. It returns false when id is no
// longer the current operation of kind, in which case the result is stale.
func (t *Tracker) Finish(kind model.OpKind, id string, err error) bool {
	op, ok := t.ops[kind]
	if !ok || op.ID != id || !op.Status.IsActive() {
		return false
	}
	op.cancel()
	op.EndedAt = time.Now()
	switch {
	case err == nil:
		op.Status = model.OpStatusSucceeded
	case errors.Is(err, context.Canceled):
		op.Status = model.OpStatusCanceled
		op.LastError = err.Error()
	default:
		op.Status = model.OpStatusFailed
		op.LastError = err.Error()
	}
	return true
}

// CancelAll aborts every in-flight operation and refuses new ones
func (t *Tracker) CancelAll() {
	t.closed = true
	for kind, op := range t.ops {
		if op.Status.IsActive() {
			log.Printf("handoff: canceling %s operation %s", kind, op.ID)
			op.cancel()
			op.Status = model.OpStatusCanceled
			op.EndedAt = time.Now()
		}
	}
}

// Closed reports whether CancelAll has been called
func (t *Tracker) Closed() bool {
	return t.closed
}

func (t *Tracker) start(kind model.OpKind) (context.Context, string, error) {
	ctx, cancel := context.WithCancel(t.parent)
	op := &Op{
		ID:        generateOpID(),
		Kind:      kind,
		Status:    model.OpStatusRunning,
		StartedAt: time.Now(),
		cancel:    cancel,
	}
	t.ops[kind] = op
	return ctx, op.ID, nil
}

// generateOpID generates a time-ordered operation ID
func generateOpID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(OpIDPrefix+"%d", time.Now().UnixNano())
	}
	return OpIDPrefix + id.String()
}
