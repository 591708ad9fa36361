package app

import (
	"context"
	"log"
)

// fragmentStore is the part of location.Store the writer needs.
type fragmentStore interface {
	Replace(fragment string) error
}

// PositionWriter persists the current fragment off the UI goroutine. Only
// the latest fragment matters, so a pending value is replaced rather than
// queued behind.
type PositionWriter struct {
	store   fragmentStore
	pending chan string
	done    chan struct{}
}

// StartPositionWriter launches the background goroutine that writes
// published fragments to store. It returns immediately; call Close to flush
// and stop it.
func StartPositionWriter(ctx context.Context, store fragmentStore) *PositionWriter {
	w := &PositionWriter{
		store:   store,
		pending: make(chan string, 1),
		done:    make(chan struct{}),
	}
	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				w.drain()
				return
			case fragment, ok := <-w.pending:
				if !ok {
					return
				}
				w.write(fragment)
			}
		}
	}()
	return w
}

// Publish records fragment as the latest position. It never blocks.
func (w *PositionWriter) Publish(fragment string) {
	for {
		select {
		case w.pending <- fragment:
			return
		default:
		}
		select {
		case <-w.pending:
		default:
		}
	}
}

// Close writes any pending fragment and waits for the writer to exit. No
// Publish may follow.
func (w *PositionWriter) Close() {
	close(w.pending)
	<-w.done
}

func (w *PositionWriter) drain() {
	for fragment := range w.pending {
		w.write(fragment)
	}
}

func (w *PositionWriter) write(fragment string) {
	if err := w.store.Replace(fragment); err != nil {
		log.Printf("position write failed: %v", err)
	}
}
