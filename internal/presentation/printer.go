package presentation

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"lapsecopy/internal/app"
	"lapsecopy/internal/domain"
)

const timeLayout = "02 January 2006 15:04:05"

type Printer struct {
	Writer io.Writer
}

func (p Printer) PrintScan(mountpoint string, result app.ScanResult) {
	fmt.Fprintf(p.Writer, "Scan of %s completed. Total of %d files examined.\n", mountpoint, result.FilesExamined)
	if len(result.Sessions) == 0 {
		fmt.Fprintln(p.Writer, "No timelapse sessions found.")
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(p.Writer, "%d frames skipped, see warnings above.\n", len(result.Warnings))
	}
}

func (p Printer) PrintSession(s *domain.Session) {
	for _, line := range SessionLines(s) {
		fmt.Fprintln(p.Writer, line)
	}
}

func (p Printer) PrintOutcome(out app.Outcome) {
	if out.Err != nil {
		fmt.Fprintf(p.Writer, "        Failed after %d files: %v\n\n", out.Copied, out.Err)
		return
	}
	fmt.Fprintf(p.Writer, "        Copied %d files to %s\n\n", out.Copied, out.Dir)
}

func (p Printer) PrintSkipped() {
	fmt.Fprintln(p.Writer, "        Skipped...")
	fmt.Fprintln(p.Writer)
}

// PrintRun prints one line per processed session.
func (p Printer) PrintRun(outcomes []app.Outcome) {
	if len(outcomes) == 0 {
		fmt.Fprintln(p.Writer, "No sessions processed.")
		return
	}
	for _, out := range outcomes {
		status := "ok"
		if out.Err != nil {
			status = "failed"
		}
		dir := "-"
		if out.Dir != "" {
			dir = filepath.Base(out.Dir)
		}
		fmt.Fprintf(p.Writer, "Timelapse %d -> %s: %d files copied (%s)\n", out.Session.ID, dir, out.Copied, status)
	}
}

// SessionLines is the summary shown before a session is approved.
func SessionLines(s *domain.Session) []string {
	sum := s.Summary()
	return []string{
		fmt.Sprintf("    Timelapse %d", s.ID),
		fmt.Sprintf("        Started   %s", formatTime(sum.FirstCapture)),
		fmt.Sprintf("        Finished  %s", formatTime(sum.LastCapture)),
		fmt.Sprintf("        %d images, %s disk space required", sum.Count, FormatBytes(sum.TotalBytes)),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format(timeLayout)
}

// FormatBytes renders n with one decimal in the largest fitting unit.
func FormatBytes(n int64) string {
	value := float64(n)
	for _, unit := range []string{"bytes", "KB", "MB", "GB"} {
		if value < 1024 {
			return fmt.Sprintf("%3.1f%s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%3.1f%s", value, "TB")
}
