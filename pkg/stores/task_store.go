package stores

// TaskStore owns the canonical collection of task records.  It is pure data
// plus mutation operations: no knowledge of the protocol or the generation
// engine lives here.  Legality of state transitions is the lifecycle
// controller's concern; the store only refuses to touch records that have
// already reached a terminal state, so a late worker write can never undo a
// cancellation.  The built‑in implementation is an in‑memory map safe for
// concurrent use.  Production deployments can swap in a persistent
// implementation (redis, sql, …).

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/diagen/pkg/a2a"
)

/*
Task is one stored task record.  The store hands out copies only: callers
never hold a reference into the store's own memory.
*/
type Task struct {
	ID        string
	SessionID string
	State     a2a.TaskState
	Messages  []a2a.Message
	Artifacts []a2a.Artifact
	CreatedAt time.Time
	UpdatedAt time.Time
	Error     string
}

/*
ToWire renders the record into the protocol shape.  A non-empty Error is
folded into a synthetic agent status message so that a naive client that
only reads message history still sees a human-readable explanation.
*/
func (task *Task) ToWire() a2a.Task {
	status := a2a.TaskStatus{
		State:     task.State,
		Timestamp: task.UpdatedAt,
	}

	if task.Error != "" {
		msg := a2a.NewTextMessage(a2a.RoleAgent, task.Error)
		status.Message = &msg
	}

	wire := a2a.Task{
		ID:        task.ID,
		SessionID: task.SessionID,
		Status:    status,
		History:   append([]a2a.Message{}, task.Messages...),
		Artifacts: make([]a2a.Artifact, 0, len(task.Artifacts)),
	}
	wire.Artifacts = append(wire.Artifacts, task.Artifacts...)

	return wire
}

func (task *Task) clone() Task {
	out := *task
	out.Messages = append([]a2a.Message{}, task.Messages...)
	out.Artifacts = append([]a2a.Artifact{}, task.Artifacts...)
	return out
}

type TaskStore interface {
	Create(userText string, sessionID string) Task
	Get(id string) (Task, bool)
	UpdateState(id string, state a2a.TaskState, errMsg string) (Task, bool)
	AppendMessage(id string, msg a2a.Message) (Task, bool)
	AppendArtifact(id string, artifact a2a.Artifact) (Task, bool)
	List(sessionID string) []Task
	PurgeOlderThan(maxAge time.Duration)
}

// InMemoryTaskStore is the default implementation.
type InMemoryTaskStore struct {
	mu    sync.RWMutex
	tasks map[string]*Task
	order []string
}

func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{
		tasks: make(map[string]*Task),
	}
}

/*
Create seeds a new record with the originating user message and returns a
copy.  It never fails: a missing sessionID is generated on the spot.
*/
func (s *InMemoryTaskStore) Create(userText string, sessionID string) Task {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	now := time.Now().UTC()
	task := &Task{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		State:     a2a.TaskStateSubmitted,
		Messages:  []a2a.Message{a2a.NewTextMessage(a2a.RoleUser, userText)},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.mu.Unlock()

	return task.clone()
}

func (s *InMemoryTaskStore) Get(id string) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}

	return task.clone(), true
}

/*
UpdateState overwrites the record's state and stamps UpdatedAt.  Terminal
records are left untouched: the unchanged copy is returned so the caller can
observe what actually stands.
*/
func (s *InMemoryTaskStore) UpdateState(id string, state a2a.TaskState, errMsg string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}

	if task.State.Terminal() {
		return task.clone(), true
	}

	task.State = state
	if errMsg != "" {
		task.Error = errMsg
	}
	task.stamp()

	return task.clone(), true
}

func (s *InMemoryTaskStore) AppendMessage(id string, msg a2a.Message) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}

	if task.State.Terminal() {
		return task.clone(), true
	}

	task.Messages = append(task.Messages, msg)
	task.stamp()

	return task.clone(), true
}

func (s *InMemoryTaskStore) AppendArtifact(id string, artifact a2a.Artifact) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}

	if task.State.Terminal() {
		return task.clone(), true
	}

	task.Artifacts = append(task.Artifacts, artifact)
	task.stamp()

	return task.clone(), true
}

/*
List returns every task, or only those belonging to one session.  Order is
store-insertion order, stable within a process.
*/
func (s *InMemoryTaskStore) List(sessionID string) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Task, 0, len(s.order))
	for _, id := range s.order {
		task := s.tasks[id]
		if sessionID != "" && task.SessionID != sessionID {
			continue
		}
		out = append(out, task.clone())
	}

	return out
}

/*
PurgeOlderThan removes every task whose CreatedAt predates now - maxAge.
Intended to run periodically out-of-band.
*/
func (s *InMemoryTaskStore) PurgeOlderThan(maxAge time.Duration) {
	cutoff := time.Now().UTC().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order[:0]
	for _, id := range s.order {
		if s.tasks[id].CreatedAt.Before(cutoff) {
			delete(s.tasks, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
}

// stamp refreshes UpdatedAt, keeping it monotonic with respect to CreatedAt.
func (task *Task) stamp() {
	now := time.Now().UTC()
	if now.Before(task.UpdatedAt) {
		now = task.UpdatedAt
	}
	task.UpdatedAt = now
}
