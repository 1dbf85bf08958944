// Package session wires one interpreter run together: an arena, a seeded
// root environment, a run-correlation ID, and the ambient logger, all
// scoped to a single process lifetime.
package session

import (
	"github.com/google/uuid"

	"github.com/wisplang/wisp/internal/applog"
	"github.com/wisplang/wisp/internal/arena"
	"github.com/wisplang/wisp/internal/evaluator"
)

// Session bundles the state one REPL run threads through the pipeline and
// the evaluator.
type Session struct {
	ID        string
	Arena     *arena.Arena
	Evaluator *evaluator.Evaluator
	Root      *evaluator.Environment
	Log       *applog.Logger
}

// New constructs a Session with a fresh arena and a root environment
// seeded with every primitive. The run ID comes from google/uuid,
// repurposed here to correlate one process's log lines instead of a
// request.
func New() *Session {
	runID := uuid.New().String()
	log := applog.New(runID)
	a := arena.New()
	ev := evaluator.New(a)
	root := evaluator.NewRootEnvironment(a)
	evaluator.SeedRoot(ev, root)

	log.Debug("session started")
	return &Session{ID: runID, Arena: a, Evaluator: ev, Root: root, Log: log}
}

// Teardown releases the arena and logs the run's end before the process
// exits with exitCode, via the arena's own Teardown.
func (s *Session) Teardown(exitCode int) {
	s.Log.Debug("session ending with exit code %d, %d allocations outstanding", exitCode, s.Arena.Len())
	s.Arena.Teardown(exitCode)
}
