package domain

import "sort"

// ImageLess orders by session, camera folder, capture time and finally the
// in-camera sequence number, which breaks ties between frames captured in
// the same second.
func ImageLess(a, b Image) bool {
	if a.SessionID != b.SessionID {
		return a.SessionID < b.SessionID
	}
	if a.FolderID != b.FolderID {
		return a.FolderID < b.FolderID
	}
	if !a.CaptureTime.Equal(b.CaptureTime) {
		return a.CaptureTime.Before(b.CaptureTime)
	}
	return a.Sequence < b.Sequence
}

func SortImages(images []Image) {
	sort.SliceStable(images, func(i, j int) bool {
		return ImageLess(images[i], images[j])
	})
}
