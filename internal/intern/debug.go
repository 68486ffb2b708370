package intern

import (
	"fmt"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// DebugReentrancy, when set, makes Intern assert that no goroutine ever
// calls it again while it is itself already holding the table's write
// lock on that same goroutine. The tokenizer never does this deliberately
// -- §5 requires the interner merely to tolerate re-entry from the same
// thread without corrupting state -- but a future caller that interns
// from inside a callback invoked by Intern itself would otherwise
// deadlock silently on mu.Lock(); with this set, it panics with a
// diagnosable message instead. Off by default; enable in tests.
var DebugReentrancy bool

// writerGoid holds the goid of whichever goroutine currently holds the
// table's write lock, or 0 if none does.
var writerGoid atomic.Int64

func enterWrite() {
	if !DebugReentrancy {
		return
	}
	id := goid.Get()
	if writerGoid.Load() == id {
		panic(fmt.Sprintf("internal/intern: goroutine %d re-entered Intern while already holding the write lock", id))
	}
	writerGoid.Store(id)
}

func exitWrite() {
	if !DebugReentrancy {
		return
	}
	writerGoid.Store(0)
}
