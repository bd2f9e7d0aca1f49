package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"selectgrip/internal/config"
	"selectgrip/internal/domain"
	"selectgrip/internal/eventbus"
	"selectgrip/internal/host"
	"selectgrip/internal/logging"
	"selectgrip/internal/ui"
	"selectgrip/internal/widget"
)

// errCancelled is returned when the user leaves without confirming
var errCancelled = errors.New("cancelled")

type options struct {
	file          string
	selected      string
	configPath    string
	syncNative    bool
	maxRows       int
	searchTimeout int
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errCancelled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "selectgrip [value[:label]...]",
		Short: "Pick one value from a list in the terminal",
		Long: `selectgrip shows a dropdown built from a list of options and prints
the value you confirm. Options come from --file or from value[:label]
arguments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "TOML file describing the options")
	flags.StringVarP(&opts.selected, "selected", "s", "", "value selected initially")
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/selectgrip/config.toml)")
	flags.BoolVar(&opts.syncNative, "sync-native", false, "keep the backing option list in step with the widget")
	flags.IntVar(&opts.maxRows, "max-rows", 0, "rows visible when the list is open")
	flags.IntVar(&opts.searchTimeout, "search-timeout", 0, "type-ahead idle reset in milliseconds")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	var logFile io.Closer
	defer func() { shutdown(bus, logFile) }()

	cfg, err := loadConfig(bus, opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logFile, err = logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}

	sel, err := loadHost(opts, args)
	if err != nil {
		return err
	}

	w, err := widget.New(sel,
		widget.WithNativeSync(cfg.UISettings.SyncNative),
		widget.WithIdleWindow(cfg.IdleWindow()),
	)
	if err != nil {
		return err
	}
	subscribeLogging(bus)

	logrus.WithFields(logrus.Fields{"widget": w.ID(), "options": w.Len()}).Info("starting UI")
	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}
	// Keep stdout clean for the value when it is captured
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		programOpts = append(programOpts, tea.WithOutput(os.Stderr))
	}
	p := tea.NewProgram(ui.NewModel(bus, cfg, w), programOpts...)
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		logrus.Info("interrupted")
		return errCancelled
	}
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	m, ok := final.(*ui.Model)
	if !ok || !m.Submitted() {
		logrus.Info("cancelled")
		return errCancelled
	}
	fmt.Fprintln(cmd.OutOrStdout(), m.Value())
	return nil
}

// shutdown drains the bus before closing the log its handlers write to
func shutdown(bus eventbus.EventBus, logFile io.Closer) {
	bus.Close()
	if logFile != nil {
		logFile.Close()
	}
}

func loadConfig(bus eventbus.EventBus, path string) (*config.Config, error) {
	svc := config.NewConfigServiceWithBus(bus)
	if path == "" {
		return svc.Load()
	}
	return svc.LoadFromPath(path)
}

// applyFlags lets explicitly set flags override the config file
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("sync-native") {
		cfg.UISettings.SyncNative = opts.syncNative
	}
	if flags.Changed("max-rows") {
		cfg.UISettings.MaxVisibleRows = opts.maxRows
	}
	if flags.Changed("search-timeout") {
		cfg.Search.IdleResetMs = opts.searchTimeout
	}
}

func loadHost(opts *options, args []string) (*domain.NativeSelect, error) {
	if opts.file != "" {
		if len(args) > 0 {
			return nil, errors.New("use either --file or option arguments, not both")
		}
		sel, err := host.LoadFile(opts.file)
		if err != nil {
			return nil, err
		}
		if opts.selected != "" {
			if err := host.Select(sel, opts.selected); err != nil {
				return nil, err
			}
		}
		return sel, nil
	}
	return host.ParseArgs(args, opts.selected)
}

func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventOpenStateChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.OpenStateChangedEvent); ok {
			logrus.WithFields(logrus.Fields{"widget": event.WidgetID, "open": event.Open}).Debug("list visibility changed")
		}
	})
	bus.Subscribe(eventbus.EventSearchReset, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchResetEvent); ok {
			logrus.WithFields(logrus.Fields{"widget": event.WidgetID, "buffer": event.Buffer}).Debug("type-ahead expired")
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			logrus.WithError(event.Err).Warn(event.Message)
		}
	})
	bus.Subscribe(eventbus.EventSubmitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SubmittedEvent); ok {
			logrus.WithFields(logrus.Fields{"widget": event.WidgetID, "value": event.Value}).Info("value submitted")
		}
	})
}
