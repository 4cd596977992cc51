package sequence

import "sync/atomic"

// Sequencer hands out command sequence numbers. Every accepted command
// gets one, and a placed bet uses its command's number as its bet id, so
// the numbers must survive restarts: after replay the sequencer is moved
// past the last number found in the snapshot or the WAL.
type Sequencer struct {
	last atomic.Uint64
}

// New starts a sequencer whose next number is start+1.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.last.Store(start)
	return s
}

func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Current is the last number handed out.
func (s *Sequencer) Current() uint64 {
	return s.last.Load()
}

// Observe advances the sequencer to v if v is ahead of it. Replay calls it
// for every record so out-of-order segments cannot move it backwards.
func (s *Sequencer) Observe(v uint64) {
	for {
		cur := s.last.Load()
		if v <= cur || s.last.CompareAndSwap(cur, v) {
			return
		}
	}
}
