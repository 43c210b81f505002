package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"lapsecopy/internal/app"
	"lapsecopy/internal/config"
	"lapsecopy/internal/domain"
	appErrors "lapsecopy/internal/errors"
	"lapsecopy/internal/infra/exif"
	"lapsecopy/internal/infra/fs"
	"lapsecopy/internal/logging"
	"lapsecopy/internal/presentation"
	"lapsecopy/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type flagValues struct {
	configPath string
	dest       string
	prefix     string
	dryRun     bool
	verbose    bool
	yes        bool
	strict     bool
	plain      bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		exitWithError(err)
	}
}

func newRootCmd() *cobra.Command {
	var flags flagValues

	cmd := &cobra.Command{
		Use:   "lapsecopy [flags] MOUNTPOINT",
		Short: "Copy camera time-lapse sessions into numbered directories",
		Long: "lapsecopy scans MOUNTPOINT/DCIM for time-lapse frames, groups them into\n" +
			"sessions and copies each approved session into DEST/PREFIX_NNN with\n" +
			"sequential 8-digit file names.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, flags, args[0])
			if err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	f.StringVarP(&flags.dest, "dest", "d", "", "Destination for created directories")
	f.StringVarP(&flags.prefix, "prefix", "p", config.DefaultPrefix, "Prefix for created directories")
	f.BoolVarP(&flags.dryRun, "dry-run", "n", false, "Scan and summarize, don't copy anything")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Verbose output")
	f.BoolVarP(&flags.yes, "yes", "y", false, "Process every session without asking")
	f.BoolVar(&flags.strict, "strict", false, "Abort when a frame cannot be read or has no capture time")
	f.BoolVar(&flags.plain, "plain", false, "Line-based prompts instead of the interactive UI")

	return cmd
}

func buildConfig(cmd *cobra.Command, flags flagValues, mountpoint string) (config.Config, error) {
	cfg := config.Default()

	path := flags.configPath
	required := path != ""
	if path == "" {
		path = config.DefaultPath()
	}
	if err := config.LoadFile(&cfg, path, required); err != nil {
		return config.Config{}, err
	}
	cfg.ApplyEnv()

	changed := cmd.Flags().Changed
	if changed("dest") {
		cfg.DestDir = flags.dest
	}
	if changed("prefix") {
		cfg.Prefix = flags.prefix
	}
	if changed("verbose") {
		cfg.Verbose = flags.verbose
	}
	if changed("strict") {
		cfg.Strict = flags.strict
	}
	if changed("plain") {
		cfg.Plain = flags.plain
	}
	cfg.DryRun = flags.dryRun
	cfg.AssumeYes = flags.yes
	cfg.Mountpoint = mountpoint

	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg config.Config) error {
	filesystem := fs.OSFS{}
	logger := logging.New(os.Stderr, cfg.Verbose)

	if !cfg.DryRun {
		if err := filesystem.MkdirAll(cfg.DestDir, 0o755); err != nil {
			return appErrors.Wrap(appErrors.IOFailure, "mkdir", cfg.DestDir, err)
		}
	}

	scanner := &app.Scanner{
		FS:     filesystem,
		Parser: app.Parser{FS: filesystem, Exif: exif.Reader{}},
		Logger: logger,
		Strict: cfg.Strict,
	}
	copier := &app.Copier{FS: filesystem, Logger: logger}
	processor := &app.Processor{
		Namer:  app.Namer{FS: filesystem},
		Copier: copier,
		Logger: logger,
	}
	batch := app.NewBatch(processor, app.CounterStore{FS: filesystem}, cfg.DestDir, cfg.Prefix)

	if cfg.Plain || cfg.AssumeYes {
		return runPlain(ctx, cfg, scanner, copier, batch)
	}
	return runTUI(ctx, cfg, scanner, copier, batch)
}

func runPlain(ctx context.Context, cfg config.Config, scanner *app.Scanner, copier *app.Copier, batch *app.Batch) error {
	printer := presentation.Printer{Writer: os.Stdout}

	fmt.Printf("Starting scan of %s\n", cfg.Mountpoint)
	result, err := scanner.Scan(ctx, cfg.Mountpoint)
	if err != nil {
		return err
	}
	printer.PrintScan(cfg.Mountpoint, result)

	copier.OnProgress = func(current, total int) {
		fmt.Printf("\r        %d/%d", current, total)
		if current == total {
			fmt.Println()
		}
	}

	reader := bufio.NewReader(os.Stdin)
	for _, s := range result.Sessions {
		fmt.Println()
		printer.PrintSession(s)
		if cfg.DryRun {
			continue
		}

		approved := cfg.AssumeYes
		if !approved {
			approved, err = confirm(reader, "\n        Process? (y/n) => ")
			if err != nil {
				return appErrors.Wrap(appErrors.Internal, "prompt", "", err)
			}
		}
		if !approved {
			printer.PrintSkipped()
			continue
		}
		printer.PrintOutcome(batch.Process(ctx, s))
	}

	if cfg.DryRun {
		return nil
	}
	if err := batch.Finish(); err != nil {
		return err
	}
	printer.PrintRun(batch.Outcomes())
	return nil
}

func runTUI(ctx context.Context, cfg config.Config, scanner *app.Scanner, copier *app.Copier, batch *app.Batch) error {
	var program *tea.Program

	scanner.OnProgress = func(current, total int) {
		program.Send(tui.ScanProgressMsg{Current: current, Total: total})
	}
	copier.OnProgress = func(current, total int) {
		program.Send(tui.CopyProgressMsg{Current: current, Total: total})
	}

	model := tui.NewModel(tui.Config{
		Mountpoint: cfg.Mountpoint,
		DestDir:    cfg.DestDir,
		Prefix:     cfg.Prefix,
		DryRun:     cfg.DryRun,
		Verbose:    cfg.Verbose,
		Scan: func() tea.Msg {
			result, err := scanner.Scan(ctx, cfg.Mountpoint)
			if err != nil {
				return tui.ErrorMsg{Err: err}
			}
			return tui.ScanDoneMsg{Result: result}
		},
		Process: func(s *domain.Session) tea.Cmd {
			return func() tea.Msg {
				return tui.SessionDoneMsg{Outcome: batch.Process(ctx, s)}
			}
		},
	})

	// Verbose lines would tear the alt screen.
	scanner.Logger.Writer = io.Discard
	copier.Logger.Writer = io.Discard
	batch.Processor.Logger.Writer = io.Discard

	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}

	interrupted, err := finalState(final)
	if err != nil {
		return err
	}
	if interrupted || cfg.DryRun {
		return nil
	}
	if err := batch.Finish(); err != nil {
		return err
	}
	presentation.Printer{Writer: os.Stdout}.PrintRun(batch.Outcomes())
	return nil
}

// finalState reports whether the user quit mid-copy and the error the UI
// ended on, if any.
func finalState(final tea.Model) (bool, error) {
	m, ok := final.(tui.Model)
	if !ok {
		return false, nil
	}
	return m.Interrupted, m.Err
}

func confirm(reader *bufio.Reader, prompt string) (bool, error) {
	fmt.Print(prompt)
	answer, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return strings.HasPrefix(answer, "y"), nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, appErrors.UserMessage(err))
	os.Exit(1)
}
