package domain

import (
	"regexp"
	"strconv"
	"time"
)

var (
	imageNamePattern  = regexp.MustCompile(`^G([0-9]{3})([0-9]{4})\.JPG$`)
	folderNamePattern = regexp.MustCompile(`^([0-9]{3})GOPRO$`)
)

// Candidate is one file found in a camera folder, before parsing.
type Candidate struct {
	Path     string
	FolderID int
}

// Image is a parsed time-lapse frame. SessionID is zero when the file name
// did not match the camera pattern; such images belong to no session.
type Image struct {
	Path        string
	FolderID    int
	SessionID   int
	Sequence    int
	CaptureTime time.Time
	Size        int64
	Ext         string
}

func (i Image) InSession() bool {
	return i.SessionID != 0
}

// MatchImageName extracts the group code and sequence number from a frame
// name such as G0041234.JPG. The extension is case-sensitive.
func MatchImageName(name string) (sessionID, sequence int, ok bool) {
	m := imageNamePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}
	sessionID, _ = strconv.Atoi(m[1])
	sequence, _ = strconv.Atoi(m[2])
	if sessionID == 0 {
		return 0, 0, false
	}
	return sessionID, sequence, true
}

// MatchFolderName extracts the folder code from a camera directory such as 100GOPRO.
func MatchFolderName(name string) (int, bool) {
	m := folderNamePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	id, _ := strconv.Atoi(m[1])
	return id, true
}
