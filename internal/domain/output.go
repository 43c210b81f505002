package domain

import "fmt"

// CounterFileName is the hidden marker kept in the destination base directory.
const CounterFileName = ".lapsecopy_counter"

func SessionDirName(prefix string, counter int) string {
	return fmt.Sprintf("%s_%03d", prefix, counter)
}

func FrameFileName(index int, ext string) string {
	return fmt.Sprintf("%08d%s", index, ext)
}
