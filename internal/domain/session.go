package domain

import "time"

type Session struct {
	ID           int
	FirstCapture time.Time
	LastCapture  time.Time
	TotalBytes   int64

	// ResolvedCounter is the destination counter used once the session has
	// been processed, zero before that.
	ResolvedCounter int

	images []Image
}

type Summary struct {
	Count        int
	TotalBytes   int64
	FirstCapture time.Time
	LastCapture  time.Time
}

func NewSession(id int) *Session {
	return &Session{ID: id}
}

// Add appends img when it carries this session's id. FirstCapture is taken
// from the first image added and is never recomputed.
func (s *Session) Add(img Image) bool {
	if img.SessionID != s.ID {
		return false
	}
	if len(s.images) == 0 {
		s.FirstCapture = img.CaptureTime
	}
	s.images = append(s.images, img)
	if s.LastCapture.IsZero() || s.LastCapture.Before(img.CaptureTime) {
		s.LastCapture = img.CaptureTime
	}
	s.TotalBytes += img.Size
	return true
}

func (s *Session) Len() int {
	return len(s.images)
}

func (s *Session) Summary() Summary {
	return Summary{
		Count:        len(s.images),
		TotalBytes:   s.TotalBytes,
		FirstCapture: s.FirstCapture,
		LastCapture:  s.LastCapture,
	}
}

// Ordered returns the session's images in renaming order. The session's own
// slice is left untouched.
func (s *Session) Ordered() []Image {
	out := make([]Image, len(s.images))
	copy(out, s.images)
	SortImages(out)
	return out
}
