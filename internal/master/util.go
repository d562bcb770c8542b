package master

import "runtime"

// yield hands the scheduler a chance to run the reader goroutine feeding
// this sender's queue while it is momentarily empty but not yet drained.
func yield() { runtime.Gosched() }
