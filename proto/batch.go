package proto

import (
	"golang.org/x/sync/errgroup"
)

// MarshalAll serializes each message in msgs concurrently, one goroutine
// per message via errgroup.Group. This is safe because each goroutine
// touches a distinct message and never shares one with another, so there
// is no mutation race to guard against — only a single message value
// accessed from more than one goroutine at once would need locking.
func MarshalAll(msgs []Message) ([][]byte, error) {
	out := make([][]byte, len(msgs))
	var g errgroup.Group
	for i, m := range msgs {
		i, m := i, m
		g.Go(func() error {
			b, err := Marshal(m)
			if err != nil {
				return err
			}
			out[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// UnmarshalAll parses each element of bufs into the corresponding
// element of msgs concurrently. len(bufs) must equal len(msgs); each
// (buf, msg) pair is independent, so — as with MarshalAll — concurrent
// parsing is safe without additional synchronization.
func UnmarshalAll(bufs [][]byte, msgs []Message) error {
	var g errgroup.Group
	for i := range bufs {
		i := i
		g.Go(func() error {
			return Unmarshal(bufs[i], msgs[i])
		})
	}
	return g.Wait()
}
