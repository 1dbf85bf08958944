// Package arena implements the interpreter's lifetime-of-program
// allocator: every Value the lexer, parser, and evaluator construct is
// handed to an Arena, and the arena's contents are released together,
// once, at process exit.
//
// Interpreter values form cyclic ownership graphs — a closure captures an
// environment frame whose bindings can include that same closure, after a
// recursive define. A bulk, whole-program arena sidesteps that cycle
// entirely: nothing is freed until everything is freed, so there is no
// reference count to corrupt and no cycle to detect.
package arena

import "os"

// record is a tracked allocation. The payload itself is ordinary
// Go-GC-managed memory; what the arena tracks is *liveness bookkeeping*,
// not the bytes, so that allocation counts are inspectable and teardown
// has something concrete to release.
type record struct {
	tag string
}

// Arena owns the lifetime of every Value allocated against it. It is
// constructed once per interpreter run (see internal/session) and
// threaded explicitly through the lexer, parser, and evaluator rather
// than held in a package-level global.
//
// Single-threaded by contract: the interpreter never runs two goroutines
// over the same Arena, so no mutex guards records.
type Arena struct {
	records []record
}

// New constructs an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Allocate records one tracked allocation tagged with the Value kind that
// owns it (e.g. "Pair", "Closure") and returns nothing: the caller already
// holds the Go value it just constructed. Allocate's only job is to make
// that allocation visible to Len and Release.
func (a *Arena) Allocate(tag string) {
	a.records = append(a.records, record{tag: tag})
}

// Len reports how many allocations are currently tracked.
func (a *Arena) Len() int {
	return len(a.records)
}

// Release drops every tracked record. It does not terminate the process;
// it exists so tests can assert arena soundness — after teardown, no
// allocations remain tracked — without exiting the test binary.
func (a *Arena) Release() {
	a.records = nil
}

// Teardown releases the arena and terminates the process with exitCode.
// This is the only sanctioned way to end the program once the first
// allocation has been made; partial reclamation is not supported.
func (a *Arena) Teardown(exitCode int) {
	a.Release()
	os.Exit(exitCode)
}
