package queue

import "runtime"

// yield hands the scheduler a chance to run the other side of the queue.
// Producers loop on this while spinning for free space (spec §5: "queue
// push loops when capacity is insufficient — producer must not hold a
// lock while looping").
func yield() { runtime.Gosched() }
