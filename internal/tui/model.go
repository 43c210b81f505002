package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lapsecopy/internal/app"
	"lapsecopy/internal/domain"
	appErrors "lapsecopy/internal/errors"
	"lapsecopy/internal/presentation"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseReview
	PhaseCopying
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	ScanProgressMsg struct {
		Current int
		Total   int
	}
	ScanDoneMsg struct {
		Result app.ScanResult
	}
	CopyProgressMsg struct {
		Current int
		Total   int
	}
	SessionDoneMsg struct {
		Outcome app.Outcome
	}
	ErrorMsg struct {
		Err error
	}
	tickMsg time.Time
)

// ProcessFunc returns a command that copies one approved session and
// answers with a SessionDoneMsg.
type ProcessFunc func(s *domain.Session) tea.Cmd

// Config for the TUI
type Config struct {
	Mountpoint string
	DestDir    string
	Prefix     string
	DryRun     bool
	Verbose    bool
	Scan       tea.Cmd
	Process    ProcessFunc
}

// Model is the main TUI model
type Model struct {
	config       Config
	Phase        Phase
	Result       app.ScanResult
	Outcomes     []app.Outcome
	spinner      spinner.Model
	progress     progress.Model
	current      int
	scanCurrent  int
	scanTotal    int
	copyProgress int
	copyTotal    int
	Err          error
	Quitting     bool
	// Interrupted is set when the user quits while a copy is running.
	Interrupted bool
	width       int
}

func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseScanning,
		spinner:  s,
		progress: p,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.config.Scan)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			m.Interrupted = m.Phase == PhaseCopying
			return m, tea.Quit
		case "y", "Y":
			if m.Phase == PhaseReview {
				return m.approve()
			}
		case "n", "N":
			if m.Phase == PhaseReview {
				return m.next()
			}
		case "enter":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case ScanProgressMsg:
		m.scanCurrent = msg.Current
		m.scanTotal = msg.Total
		return m, nil

	case ScanDoneMsg:
		m.Result = msg.Result
		if m.config.DryRun || len(m.Result.Sessions) == 0 {
			m.Phase = PhaseDone
			return m, nil
		}
		m.Phase = PhaseReview
		m.current = 0
		return m, nil

	case CopyProgressMsg:
		m.copyProgress = msg.Current
		m.copyTotal = msg.Total
		return m, nil

	case SessionDoneMsg:
		m.Outcomes = append(m.Outcomes, msg.Outcome)
		return m.next()

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseCopying {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		if m.Phase == PhaseCopying {
			var cmds []tea.Cmd
			if m.copyTotal > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.copyProgress)/float64(m.copyTotal)))
			}
			cmds = append(cmds, tickCmd(), m.spinner.Tick)
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

func (m Model) approve() (tea.Model, tea.Cmd) {
	s := m.Result.Sessions[m.current]
	m.Phase = PhaseCopying
	m.copyProgress = 0
	m.copyTotal = s.Len()
	if m.config.Process == nil {
		return m.next()
	}
	return m, tea.Batch(tickCmd(), m.progress.SetPercent(0), m.config.Process(s))
}

// next moves the review cursor to the following session, or to the done
// phase once every session has been decided.
func (m Model) next() (tea.Model, tea.Cmd) {
	m.current++
	if m.current >= len(m.Result.Sessions) {
		m.Phase = PhaseDone
		return m, nil
	}
	m.Phase = PhaseReview
	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(m.renderScanning())
	case PhaseReview:
		b.WriteString(m.renderScanSummary())
		b.WriteString("\n")
		b.WriteString(m.renderSession(m.Result.Sessions[m.current]))
		b.WriteString("\n")
		b.WriteString(confirmPromptStyle.Render("Process this timelapse? [y/n]"))
	case PhaseCopying:
		b.WriteString(m.renderSession(m.Result.Sessions[m.current]))
		b.WriteString("\n")
		b.WriteString(m.renderCopying())
	case PhaseDone:
		b.WriteString(m.renderScanSummary())
		if m.config.DryRun {
			for _, s := range m.Result.Sessions {
				b.WriteString("\n")
				b.WriteString(m.renderSession(s))
			}
			b.WriteString("\n")
			b.WriteString(highlightBoxStyle.Render("🔍 Dry Run - No files were copied"))
		} else {
			b.WriteString("\n")
			b.WriteString(m.renderOutcomes())
		}
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("⏱ lapsecopy")
	subtitle := subtitleStyle.Render("Time-lapse sessions, numbered and in order")

	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Source: %s", iconFolder, shortenPath(m.config.Mountpoint))),
		dimStyle.Render(fmt.Sprintf("%s Target: %s", iconFolder, shortenPath(filepath.Join(m.config.DestDir, m.config.Prefix+"_NNN")))),
	)
}

func (m Model) renderScanning() string {
	if m.scanTotal > 0 {
		percent := float64(m.scanCurrent) / float64(m.scanTotal)
		countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
		return fmt.Sprintf("%s Scanning camera folders...\n\n  %s\n  %s",
			m.spinner.View(),
			m.progress.ViewAs(percent),
			countStyle.Render(fmt.Sprintf("%d/%d folders", m.scanCurrent, m.scanTotal)),
		)
	}
	return fmt.Sprintf("%s Scanning camera folders...", m.spinner.View())
}

func (m Model) renderScanSummary() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Scan"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Files examined:"), statValueStyle.Render(fmt.Sprintf("%d", m.Result.FilesExamined))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Timelapses:"), statValueStyle.Render(fmt.Sprintf("%d", len(m.Result.Sessions)))))

	if len(m.Result.Warnings) > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Skipped frames:"), warningStyle.Render(fmt.Sprintf("%s %d", iconWarning, len(m.Result.Warnings)))))
		if m.config.Verbose {
			for _, w := range m.Result.Warnings {
				b.WriteString(fmt.Sprintf("    %s %s\n", iconWarning, w))
			}
		}
	}

	return b.String()
}

func (m Model) renderSession(s *domain.Session) string {
	var b strings.Builder
	sum := s.Summary()

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Timelapse %d", s.ID)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Started:"), dateStyle.Render(sum.FirstCapture.Format("2006-01-02 15:04:05"))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Finished:"), dateStyle.Render(sum.LastCapture.Format("2006-01-02 15:04:05"))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Images:"), frameStyle.Render(fmt.Sprintf("%s %d", iconFrame, sum.Count))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Disk space:"), statValueStyle.Render(presentation.FormatBytes(sum.TotalBytes))))

	return b.String()
}

func (m Model) renderCopying() string {
	var b strings.Builder

	percent := 0.0
	if m.copyTotal > 0 {
		percent = float64(m.copyProgress) / float64(m.copyTotal)
	}

	b.WriteString(fmt.Sprintf("  %s Copying...\n\n", m.spinner.View()))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))

	countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	percentStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	b.WriteString(fmt.Sprintf("  %s %s\n",
		countStyle.Render(fmt.Sprintf("%d/%d files", m.copyProgress, m.copyTotal)),
		percentStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	))

	return b.String()
}

func (m Model) renderOutcomes() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Copy Complete"))
	b.WriteString("\n\n")

	if len(m.Outcomes) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)
		b.WriteString(dimStyle.Render("  No timelapses processed"))
		b.WriteString("\n")
		return b.String()
	}

	for _, out := range m.Outcomes {
		label := statLabelStyle.Render(fmt.Sprintf("Timelapse %d:", out.Session.ID))
		if out.Err != nil {
			b.WriteString(fmt.Sprintf("  %s  %s\n", label, errorStyle.Render(fmt.Sprintf("%s %d files, %v", iconError, out.Copied, out.Err))))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s  %s %s\n", label,
			successStyle.Render(fmt.Sprintf("%s %d files", iconSuccess, out.Copied)),
			pathStyle.Render(iconArrow+" "+filepath.Base(out.Dir)),
		))
	}

	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(appErrors.UserMessage(m.Err))

	return highlightBoxStyle.
		BorderForeground(errorColor).
		Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning:
		help = "Press q to quit"
	case PhaseReview:
		help = "y to copy • n to skip • q to quit"
	case PhaseCopying:
		help = "Copying files... Please wait"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
