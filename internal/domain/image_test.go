package domain

import "testing"

func TestMatchImageNameExtractsDigits(t *testing.T) {
	id, seq, ok := MatchImageName("G0041234.JPG")
	if !ok {
		t.Fatalf("expected match")
	}
	if id != 4 || seq != 1234 {
		t.Fatalf("unexpected parse: session=%d sequence=%d", id, seq)
	}
}

func TestMatchImageNameRejectsOtherNames(t *testing.T) {
	names := []string{
		"note.txt",
		"G12.JPG",
		"G0041234.jpg",
		"G0041234.JPEG",
		"X0041234.JPG",
		"G00412345.JPG",
		"G0041234xJPG",
		"G0001234.JPG",
	}
	for _, name := range names {
		if _, _, ok := MatchImageName(name); ok {
			t.Fatalf("expected %q not to match", name)
		}
	}
}

func TestMatchFolderName(t *testing.T) {
	id, ok := MatchFolderName("103GOPRO")
	if !ok || id != 103 {
		t.Fatalf("expected 103, got %d (ok=%v)", id, ok)
	}
	for _, name := range []string{"MISC", "10GOPRO", "103GOPRO1", "103gopro"} {
		if _, ok := MatchFolderName(name); ok {
			t.Fatalf("expected %q not to match", name)
		}
	}
}

func TestOutputNames(t *testing.T) {
	if got := SessionDirName("GoPro", 7); got != "GoPro_007" {
		t.Fatalf("unexpected dir name %q", got)
	}
	if got := SessionDirName("GoPro", 1234); got != "GoPro_1234" {
		t.Fatalf("unexpected dir name %q", got)
	}
	if got := FrameFileName(12, ".JPG"); got != "00000012.JPG" {
		t.Fatalf("unexpected file name %q", got)
	}
}
