package app

import (
	"sort"

	"lapsecopy/internal/domain"
)

// Aggregator groups parsed images into sessions keyed by group code.
type Aggregator struct {
	sessions map[int]*domain.Session
}

func NewAggregator() *Aggregator {
	return &Aggregator{sessions: make(map[int]*domain.Session)}
}

// Add places img in its session, creating the session on first sight.
// Images outside any session are ignored.
func (a *Aggregator) Add(img domain.Image) {
	if !img.InSession() {
		return
	}
	if a.sessions == nil {
		a.sessions = make(map[int]*domain.Session)
	}
	s, ok := a.sessions[img.SessionID]
	if !ok {
		s = domain.NewSession(img.SessionID)
		a.sessions[img.SessionID] = s
	}
	s.Add(img)
}

// Sessions returns all sessions sorted by id.
func (a *Aggregator) Sessions() []*domain.Session {
	out := make([]*domain.Session, 0, len(a.sessions))
	for _, s := range a.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (a *Aggregator) Len() int {
	return len(a.sessions)
}
