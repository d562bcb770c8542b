package distributor

import "runtime"

// yield hands the scheduler a chance to run the consumer side of whatever
// queue just reported zero WriteAvailable, mirroring queue.yield's role on
// the producer side of the same spin.
func yield() { runtime.Gosched() }
