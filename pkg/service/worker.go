package service

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/theapemachine/diagen/pkg/a2a"
	"github.com/theapemachine/diagen/pkg/diagram"
	"github.com/theapemachine/diagen/pkg/provider"
	"github.com/theapemachine/diagen/pkg/stores"
	"github.com/theapemachine/diagen/pkg/tasks"
	"golang.org/x/sync/semaphore"
)

/*
Worker turns a submitted task into a completed or failed one by calling the
generation capability exactly once.  Launches are detached from the request
that created them and bounded by a weighted semaphore: Reserve claims a
slot, Start consumes it on a fresh goroutine.  Completion paths are
exhaustive — a task never stays in working after the run returns.
*/
type Worker struct {
	store     stores.TaskStore
	lifecycle *tasks.Lifecycle
	generator provider.Generator
	pool      *semaphore.Weighted
}

func NewWorker(
	store stores.TaskStore,
	lifecycle *tasks.Lifecycle,
	generator provider.Generator,
	limit int64,
) *Worker {
	if limit <= 0 {
		limit = 32
	}

	return &Worker{
		store:     store,
		lifecycle: lifecycle,
		generator: generator,
		pool:      semaphore.NewWeighted(limit),
	}
}

// Reserve claims a pool slot without blocking.  A false return means the
// pool is at its ceiling and the send should be rejected.
func (w *Worker) Reserve() bool {
	return w.pool.TryAcquire(1)
}

// Start consumes a previously reserved slot.  Fire-and-forget.
func (w *Worker) Start(taskID string, userText string) {
	go func() {
		defer w.pool.Release(1)
		w.run(taskID, userText)
	}()
}

func (w *Worker) run(taskID string, userText string) {
	if _, ok, err := w.lifecycle.Transition(taskID, a2a.TaskStateWorking, ""); !ok || err != nil {
		// Canceled before we got scheduled, or already gone.
		log.Warn("worker could not start task", "task", taskID, "error", err)
		return
	}

	result, err := w.generator.Generate(
		context.Background(),
		diagram.SystemInstruction,
		diagram.BuildPrompt(userText),
	)

	if err != nil {
		w.fail(taskID, err)
		return
	}

	// The raw result is always appended, whether or not extraction succeeds.
	w.store.AppendMessage(taskID, a2a.NewTextMessage(a2a.RoleAgent, result))

	if payload, ok := diagram.Extract(result); ok {
		w.store.AppendArtifact(taskID, a2a.NewDataArtifact(
			diagram.ArtifactName, payload, diagram.MimeType,
		))
	}

	if _, ok, err := w.lifecycle.Transition(taskID, a2a.TaskStateCompleted, ""); !ok || err != nil {
		log.Warn("late completion dropped", "task", taskID, "error", err)
	}
}

func (w *Worker) fail(taskID string, cause error) {
	log.Error("generation failed", "task", taskID, "error", cause)

	if _, ok, err := w.lifecycle.Transition(taskID, a2a.TaskStateFailed, cause.Error()); !ok || err != nil {
		log.Warn("late failure dropped", "task", taskID, "error", err)
	}
}
