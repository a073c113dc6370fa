package tasks

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/theapemachine/diagen/pkg/a2a"
	"github.com/theapemachine/diagen/pkg/stores"
)

/*
Lifecycle enforces the task state machine atop the store.  It is the only
component that calls the store's raw state setter; everything else goes
through Transition or Cancel so an illegal transition surfaces as a typed
error instead of being silently applied.

	submitted      → working, canceled
	working        → input-required, completed, failed, canceled
	input-required → working, canceled
	terminal       → (nothing)
*/
type Lifecycle struct {
	store stores.TaskStore
}

func NewLifecycle(store stores.TaskStore) *Lifecycle {
	return &Lifecycle{store: store}
}

var transitions = map[a2a.TaskState][]a2a.TaskState{
	a2a.TaskStateSubmitted: {a2a.TaskStateWorking, a2a.TaskStateCanceled},
	a2a.TaskStateWorking: {
		a2a.TaskStateInputReq,
		a2a.TaskStateCompleted,
		a2a.TaskStateFailed,
		a2a.TaskStateCanceled,
	},
	a2a.TaskStateInputReq: {a2a.TaskStateWorking, a2a.TaskStateCanceled},
}

// TransitionError reports an attempt to move a task between two states the
// state machine does not connect.
type TransitionError struct {
	From a2a.TaskState
	To   a2a.TaskState
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal task transition %s → %s", e.From, e.To)
}

func legal(from, to a2a.TaskState) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

/*
Transition moves a task to target, attaching errMsg when the target is the
failed state.  The found flag distinguishes an unknown task from an illegal
transition.  The store itself refuses writes to terminal records, so a
transition racing a cancellation resolves in the cancellation's favour.
*/
func (lc *Lifecycle) Transition(id string, target a2a.TaskState, errMsg string) (stores.Task, bool, error) {
	current, ok := lc.store.Get(id)
	if !ok {
		return stores.Task{}, false, nil
	}

	if !legal(current.State, target) {
		return current, true, &TransitionError{From: current.State, To: target}
	}

	updated, ok := lc.store.UpdateState(id, target, errMsg)
	if !ok {
		return stores.Task{}, false, nil
	}

	log.Info("task state updated", "task", id, "state", updated.State)

	return updated, true, nil
}

/*
Cancel requests cancellation.  Against a terminal task it is a silent no-op
that returns the unchanged record, never an error.
*/
func (lc *Lifecycle) Cancel(id string) (stores.Task, bool) {
	current, ok := lc.store.Get(id)
	if !ok {
		return stores.Task{}, false
	}

	if current.State.Terminal() {
		return current, true
	}

	updated, ok := lc.store.UpdateState(id, a2a.TaskStateCanceled, "")
	if !ok {
		return stores.Task{}, false
	}

	log.Info("task canceled", "task", id)

	return updated, true
}
