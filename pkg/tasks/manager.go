package tasks

// TaskManager defines the server‑side behaviour for the core task lifecycle
// JSON‑RPC methods: tasks/send, tasks/get, tasks/cancel and tasks/list.
// Each method does its own validation and returns a *errors.RpcError value
// if the request is invalid or cannot be fulfilled.

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/theapemachine/diagen/pkg/a2a"
	"github.com/theapemachine/diagen/pkg/errors"
	"github.com/theapemachine/diagen/pkg/stores"
)

type TaskManager interface {
	SendTask(ctx context.Context, params a2a.TaskSendParams) (a2a.Task, *errors.RpcError)
	GetTask(ctx context.Context, id string) (a2a.Task, *errors.RpcError)
	CancelTask(ctx context.Context, id string) (a2a.Task, *errors.RpcError)
	ListTasks(ctx context.Context, sessionID string) ([]a2a.Task, *errors.RpcError)
}

/*
Runner drives a submitted task to a terminal state, detached from the
request that created it.  Reserve claims a slot in the bounded pool; Start
consumes the reserved slot.
*/
type Runner interface {
	Reserve() bool
	Start(taskID string, userText string)
}

/*
Manager wires the store, the lifecycle controller and the generation runner
into the TaskManager contract.
*/
type Manager struct {
	store     stores.TaskStore
	lifecycle *Lifecycle
	runner    Runner
}

func NewManager(store stores.TaskStore, lifecycle *Lifecycle, runner Runner) *Manager {
	return &Manager{
		store:     store,
		lifecycle: lifecycle,
		runner:    runner,
	}
}

/*
SendTask creates a task, launches the runner detached and immediately
returns the freshly created task, necessarily still submitted.  A full
runner pool rejects the request before anything is created.
*/
func (m *Manager) SendTask(ctx context.Context, params a2a.TaskSendParams) (a2a.Task, *errors.RpcError) {
	userText := params.Message.FirstText()

	if userText == "" {
		return a2a.Task{}, errors.ErrInvalidParams.WithMessagef(
			"message requires at least one text part with non-empty text",
		)
	}

	if !m.runner.Reserve() {
		return a2a.Task{}, errors.ErrCapacityExceeded
	}

	task := m.store.Create(userText, params.SessionID)

	log.Info("task submitted", "task", task.ID, "session", task.SessionID)

	m.runner.Start(task.ID, userText)

	return task.ToWire(), nil
}

func (m *Manager) GetTask(ctx context.Context, id string) (a2a.Task, *errors.RpcError) {
	task, ok := m.store.Get(id)
	if !ok {
		return a2a.Task{}, errors.ErrTaskNotFound
	}

	return task.ToWire(), nil
}

/*
CancelTask requests cancellation.  On a terminal task it returns the
unchanged task; only an unknown id is an error.
*/
func (m *Manager) CancelTask(ctx context.Context, id string) (a2a.Task, *errors.RpcError) {
	task, ok := m.lifecycle.Cancel(id)
	if !ok {
		return a2a.Task{}, errors.ErrTaskNotFound
	}

	return task.ToWire(), nil
}

/*
ListTasks renders every matching task.  No match yields an empty array, not
an error.
*/
func (m *Manager) ListTasks(ctx context.Context, sessionID string) ([]a2a.Task, *errors.RpcError) {
	records := m.store.List(sessionID)

	out := make([]a2a.Task, 0, len(records))
	for i := range records {
		out = append(out, records[i].ToWire())
	}

	return out, nil
}
