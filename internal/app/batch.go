package app

import (
	"context"
	"path/filepath"

	"lapsecopy/internal/domain"
)

// Outcome records what happened to one approved session.
type Outcome struct {
	Session *domain.Session
	Counter int
	Dir     string
	Copied  int
	Err     error
}

// Batch runs approved sessions one after another and persists the highest
// counter consumed once the run is over.
type Batch struct {
	Processor *Processor
	Store     CounterStore
	DestBase  string
	Prefix    string

	next     int
	highest  int
	outcomes []Outcome
}

// NewBatch reads the stored counter; the first session gets the one after it.
func NewBatch(processor *Processor, store CounterStore, destBase, prefix string) *Batch {
	stored := store.Read(destBase)
	return &Batch{
		Processor: processor,
		Store:     store,
		DestBase:  destBase,
		Prefix:    prefix,
		next:      stored + 1,
	}
}

// Process copies s and records the outcome. A failed session does not stop
// the batch; the caller may carry on with the next one.
func (b *Batch) Process(ctx context.Context, s *domain.Session) Outcome {
	used, copied, err := b.Processor.ProcessSession(ctx, s, b.DestBase, b.Prefix, b.next)
	out := Outcome{Session: s, Copied: copied, Err: err}
	if used > 0 {
		out.Counter = used
		out.Dir = filepath.Join(b.DestBase, domain.SessionDirName(b.Prefix, used))
		b.next = used + 1
		if used > b.highest {
			b.highest = used
		}
	}
	b.outcomes = append(b.outcomes, out)
	return out
}

func (b *Batch) Outcomes() []Outcome {
	return b.outcomes
}

// Finish writes the highest consumed counter. Nothing is written when no
// session consumed a counter.
func (b *Batch) Finish() error {
	if b.highest == 0 {
		return nil
	}
	return b.Store.Write(b.DestBase, b.highest)
}
