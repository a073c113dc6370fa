package stores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/theapemachine/diagen/pkg/a2a"
)

func TestNewInMemoryTaskStore(t *testing.T) {
	store := NewInMemoryTaskStore()
	assert.NotNil(t, store)
	assert.NotNil(t, store.tasks)
	assert.Empty(t, store.tasks)
}

func TestTaskStore_Create(t *testing.T) {
	store := NewInMemoryTaskStore()

	task := store.Create("draw a login flow", "")
	assert.NotEmpty(t, task.ID)
	assert.NotEmpty(t, task.SessionID)
	assert.Equal(t, a2a.TaskStateSubmitted, task.State)
	assert.Len(t, task.Messages, 1)
	assert.Equal(t, a2a.RoleUser, task.Messages[0].Role)
	assert.Equal(t, "draw a login flow", task.Messages[0].FirstText())
	assert.Empty(t, task.Artifacts)
	assert.NotZero(t, task.CreatedAt)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)

	// caller-supplied session id is kept
	other := store.Create("another", "session-1")
	assert.Equal(t, "session-1", other.SessionID)
	assert.NotEqual(t, task.ID, other.ID)
}

func TestTaskStore_Get(t *testing.T) {
	store := NewInMemoryTaskStore()
	created := store.Create("prompt", "")

	task, ok := store.Get(created.ID)
	assert.True(t, ok)
	assert.Equal(t, created.ID, task.ID)

	// repeated gets with no intervening mutation are identical
	again, ok := store.Get(created.ID)
	assert.True(t, ok)
	assert.Equal(t, task, again)

	_, ok = store.Get("nonexistent")
	assert.False(t, ok)
}

func TestTaskStore_GetReturnsCopies(t *testing.T) {
	store := NewInMemoryTaskStore()
	created := store.Create("prompt", "")

	task, _ := store.Get(created.ID)
	task.Messages[0].Parts[0].Text = "mutated"
	task.State = a2a.TaskStateFailed

	fresh, _ := store.Get(created.ID)
	assert.Equal(t, "prompt", fresh.Messages[0].FirstText())
	assert.Equal(t, a2a.TaskStateSubmitted, fresh.State)
}

func TestTaskStore_UpdateState(t *testing.T) {
	store := NewInMemoryTaskStore()
	created := store.Create("prompt", "")

	task, ok := store.UpdateState(created.ID, a2a.TaskStateWorking, "")
	assert.True(t, ok)
	assert.Equal(t, a2a.TaskStateWorking, task.State)
	assert.False(t, task.UpdatedAt.Before(task.CreatedAt))

	task, ok = store.UpdateState(created.ID, a2a.TaskStateFailed, "model exploded")
	assert.True(t, ok)
	assert.Equal(t, a2a.TaskStateFailed, task.State)
	assert.Equal(t, "model exploded", task.Error)

	_, ok = store.UpdateState("nonexistent", a2a.TaskStateWorking, "")
	assert.False(t, ok)
}

func TestTaskStore_TerminalTasksAreImmutable(t *testing.T) {
	store := NewInMemoryTaskStore()
	created := store.Create("prompt", "")

	store.UpdateState(created.ID, a2a.TaskStateCanceled, "")

	// a late worker write must not flip the task back
	task, ok := store.UpdateState(created.ID, a2a.TaskStateCompleted, "")
	assert.True(t, ok)
	assert.Equal(t, a2a.TaskStateCanceled, task.State)

	task, ok = store.AppendMessage(created.ID, a2a.NewTextMessage(a2a.RoleAgent, "late"))
	assert.True(t, ok)
	assert.Len(t, task.Messages, 1)

	task, ok = store.AppendArtifact(created.ID, a2a.NewDataArtifact("diagram.xml", "<x/>", "application/xml"))
	assert.True(t, ok)
	assert.Empty(t, task.Artifacts)
}

func TestTaskStore_AppendMessage(t *testing.T) {
	store := NewInMemoryTaskStore()
	created := store.Create("prompt", "")

	task, ok := store.AppendMessage(created.ID, a2a.NewTextMessage(a2a.RoleAgent, "here you go"))
	assert.True(t, ok)
	assert.Len(t, task.Messages, 2)
	assert.Equal(t, a2a.RoleUser, task.Messages[0].Role)
	assert.Equal(t, a2a.RoleAgent, task.Messages[1].Role)

	_, ok = store.AppendMessage("nonexistent", a2a.NewTextMessage(a2a.RoleAgent, "x"))
	assert.False(t, ok)
}

func TestTaskStore_AppendArtifact(t *testing.T) {
	store := NewInMemoryTaskStore()
	created := store.Create("prompt", "")

	artifact := a2a.NewDataArtifact("diagram.xml", "<mxGraphModel/>", "application/xml")
	task, ok := store.AppendArtifact(created.ID, artifact)
	assert.True(t, ok)
	assert.Len(t, task.Artifacts, 1)
	assert.Equal(t, "diagram.xml", *task.Artifacts[0].Name)
}

func TestTaskStore_List(t *testing.T) {
	store := NewInMemoryTaskStore()

	assert.Empty(t, store.List(""))

	first := store.Create("one", "session-a")
	second := store.Create("two", "session-b")
	third := store.Create("three", "session-a")

	all := store.List("")
	assert.Len(t, all, 3)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, third.ID, all[2].ID)

	scoped := store.List("session-a")
	assert.Len(t, scoped, 2)
	assert.Equal(t, first.ID, scoped[0].ID)
	assert.Equal(t, third.ID, scoped[1].ID)
}

func TestTaskStore_PurgeOlderThan(t *testing.T) {
	store := NewInMemoryTaskStore()

	old := store.Create("ancient", "")
	store.tasks[old.ID].CreatedAt = time.Now().UTC().Add(-48 * time.Hour)

	fresh := store.Create("recent", "")

	store.PurgeOlderThan(24 * time.Hour)

	_, ok := store.Get(old.ID)
	assert.False(t, ok)

	_, ok = store.Get(fresh.ID)
	assert.True(t, ok)

	assert.Len(t, store.List(""), 1)
}

func TestTask_ToWire(t *testing.T) {
	store := NewInMemoryTaskStore()
	created := store.Create("prompt", "")

	wire := created.ToWire()
	assert.Equal(t, created.ID, wire.ID)
	assert.Equal(t, created.SessionID, wire.SessionID)
	assert.Equal(t, a2a.TaskStateSubmitted, wire.Status.State)
	assert.Nil(t, wire.Status.Message)
	assert.Len(t, wire.History, 1)
	assert.NotNil(t, wire.Artifacts)
	assert.Empty(t, wire.Artifacts)
}

func TestTask_ToWireFoldsError(t *testing.T) {
	store := NewInMemoryTaskStore()
	created := store.Create("prompt", "")

	store.UpdateState(created.ID, a2a.TaskStateWorking, "")
	failed, _ := store.UpdateState(created.ID, a2a.TaskStateFailed, "rate limited")

	wire := failed.ToWire()
	assert.Equal(t, a2a.TaskStateFailed, wire.Status.State)
	assert.NotNil(t, wire.Status.Message)
	assert.Equal(t, a2a.RoleAgent, wire.Status.Message.Role)
	assert.Equal(t, "rate limited", wire.Status.Message.Parts[0].Text)
}
