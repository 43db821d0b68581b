package platform

// Elapsed returns the ticks since start. The unsigned difference stays
// correct across a single counter wrap.
func Elapsed(clock Clock, start uint32) uint32 {
	return clock.ReadCycle() - start
}

// Delay spins until the counter has advanced by at least ticks.
func Delay(clock Clock, ticks uint32) {
	DelayPoll(clock, ticks, nil)
}

// DelayPoll spins like Delay, calling poll (if non-nil) between counter
// reads. The poll rate is whatever the loop achieves; there is no sleep.
func DelayPoll(clock Clock, ticks uint32, poll func()) {
	start := clock.ReadCycle()
	for Elapsed(clock, start) < ticks {
		if poll != nil {
			poll()
		}
	}
}
