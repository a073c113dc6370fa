package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/theapemachine/diagen/pkg/a2a"
	"github.com/theapemachine/diagen/pkg/errors"
	"github.com/theapemachine/diagen/pkg/stores"
)

// stubRunner records launches instead of actually generating anything.
type stubRunner struct {
	full    bool
	started []string
}

func (r *stubRunner) Reserve() bool { return !r.full }

func (r *stubRunner) Start(taskID string, userText string) {
	r.started = append(r.started, taskID)
}

func newTestManager(runner *stubRunner) (*Manager, *stores.InMemoryTaskStore) {
	store := stores.NewInMemoryTaskStore()
	return NewManager(store, NewLifecycle(store), runner), store
}

func TestManager_SendTask(t *testing.T) {
	runner := &stubRunner{}
	manager, _ := newTestManager(runner)

	task, rpcErr := manager.SendTask(context.Background(), a2a.TaskSendParams{
		Message: a2a.NewTextMessage(a2a.RoleUser, "draw a login flow"),
	})

	assert.Nil(t, rpcErr)
	assert.Equal(t, a2a.TaskStateSubmitted, task.Status.State)
	assert.Len(t, task.History, 1)
	assert.Equal(t, "draw a login flow", task.History[0].FirstText())
	assert.Equal(t, []string{task.ID}, runner.started)
}

func TestManager_SendTaskInvalidMessage(t *testing.T) {
	runner := &stubRunner{}
	manager, _ := newTestManager(runner)

	tests := []struct {
		name    string
		message a2a.Message
	}{
		{
			name:    "no parts",
			message: a2a.Message{Role: a2a.RoleUser},
		},
		{
			name: "empty text",
			message: a2a.Message{
				Role:  a2a.RoleUser,
				Parts: []a2a.Part{{Type: a2a.PartTypeText, Text: ""}},
			},
		},
		{
			name: "data part only",
			message: a2a.Message{
				Role:  a2a.RoleUser,
				Parts: []a2a.Part{{Type: a2a.PartTypeData, Data: map[string]any{"k": "v"}, MimeType: "application/json"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rpcErr := manager.SendTask(context.Background(), a2a.TaskSendParams{Message: tt.message})
			assert.NotNil(t, rpcErr)
			assert.Equal(t, errors.ErrInvalidParams.Code, rpcErr.Code)
		})
	}

	assert.Empty(t, runner.started)
}

func TestManager_SendTaskCapacity(t *testing.T) {
	runner := &stubRunner{full: true}
	manager, store := newTestManager(runner)

	_, rpcErr := manager.SendTask(context.Background(), a2a.TaskSendParams{
		Message: a2a.NewTextMessage(a2a.RoleUser, "draw something"),
	})

	assert.NotNil(t, rpcErr)
	assert.Equal(t, errors.ErrCapacityExceeded.Code, rpcErr.Code)

	// nothing was created for the rejected send
	assert.Empty(t, store.List(""))
	assert.Empty(t, runner.started)
}

func TestManager_GetTask(t *testing.T) {
	manager, store := newTestManager(&stubRunner{})

	created := store.Create("prompt", "")

	task, rpcErr := manager.GetTask(context.Background(), created.ID)
	assert.Nil(t, rpcErr)
	assert.Equal(t, created.ID, task.ID)

	_, rpcErr = manager.GetTask(context.Background(), "nonexistent")
	assert.NotNil(t, rpcErr)
	assert.Equal(t, errors.ErrTaskNotFound.Code, rpcErr.Code)
}

func TestManager_CancelTask(t *testing.T) {
	manager, store := newTestManager(&stubRunner{})

	created := store.Create("prompt", "")

	task, rpcErr := manager.CancelTask(context.Background(), created.ID)
	assert.Nil(t, rpcErr)
	assert.Equal(t, a2a.TaskStateCanceled, task.Status.State)

	_, rpcErr = manager.CancelTask(context.Background(), "nonexistent")
	assert.NotNil(t, rpcErr)
	assert.Equal(t, errors.ErrTaskNotFound.Code, rpcErr.Code)
}

func TestManager_CancelCompletedTaskReturnsUnchanged(t *testing.T) {
	manager, store := newTestManager(&stubRunner{})
	lc := NewLifecycle(store)

	created := store.Create("prompt", "")
	lc.Transition(created.ID, a2a.TaskStateWorking, "")
	lc.Transition(created.ID, a2a.TaskStateCompleted, "")

	task, rpcErr := manager.CancelTask(context.Background(), created.ID)
	assert.Nil(t, rpcErr)
	assert.Equal(t, a2a.TaskStateCompleted, task.Status.State)
}

func TestManager_ListTasks(t *testing.T) {
	manager, store := newTestManager(&stubRunner{})

	list, rpcErr := manager.ListTasks(context.Background(), "")
	assert.Nil(t, rpcErr)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	store.Create("one", "session-a")
	store.Create("two", "session-b")

	list, rpcErr = manager.ListTasks(context.Background(), "")
	assert.Nil(t, rpcErr)
	assert.Len(t, list, 2)

	list, rpcErr = manager.ListTasks(context.Background(), "session-a")
	assert.Nil(t, rpcErr)
	assert.Len(t, list, 1)
}
