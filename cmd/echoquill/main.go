package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/echoquill"
	"github.com/fwojciec/echoquill/bubbletea"
	"github.com/fwojciec/echoquill/clipboard"
	"github.com/fwojciec/echoquill/config"
	"github.com/fwojciec/echoquill/fs"
	"github.com/fwojciec/echoquill/lipgloss"
	"github.com/fwojciec/echoquill/logs"
	"github.com/fwojciec/echoquill/rest"
)

// App encapsulates the application logic for testing.
type App struct {
	Generator echoquill.StoryGenerator
	Clipboard echoquill.Clipboard
	Exporter  echoquill.Exporter
	Frontend  echoquill.Frontend
	Logger    *slog.Logger
}

// Run shows the story generator until the user quits.
func (a *App) Run(ctx context.Context) error {
	logger := a.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	controller := echoquill.NewController(a.Generator, echoquill.WithLogger(logger))
	presenter := echoquill.NewPresenter(a.Clipboard, a.Exporter, logger)

	err := a.Frontend.Run(ctx, controller, presenter)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, toml or json)")
	theme := flag.String("theme", "", "initial theme idea")
	flag.Parse()

	if err := run(*configPath, *theme); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath, theme string) error {
	cfg, err := config.LoadClient(configPath)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs only go to the file.
	logger, closeLog, err := logs.New(logs.Config{
		Level:  cfg.LogLevel,
		Format: "json",
		File:   cfg.LogFile,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	active, ok := lipgloss.ThemeByName(cfg.Theme)
	if !ok {
		active = lipgloss.DefaultTheme()
	}

	form := echoquill.NewForm()
	form.SetTheme(theme)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &App{
		Generator: rest.NewClient(cfg.Endpoint, rest.WithTimeout(cfg.Timeout)),
		Clipboard: clipboard.FromCommandLine(cfg.ClipboardCommand),
		Exporter:  fs.NewExporter(cfg.ExportDir),
		Frontend: bubbletea.NewUI(bubbletea.WithModelOptions(
			bubbletea.WithThemes(active, lipgloss.Toggle(active)),
			bubbletea.WithForm(form),
		)),
		Logger: logger,
	}

	logger.Info("starting", "endpoint", cfg.Endpoint, "export_dir", cfg.ExportDir)
	return app.Run(ctx)
}
