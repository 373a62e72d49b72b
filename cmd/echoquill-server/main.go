package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/echoquill"
	"github.com/fwojciec/echoquill/config"
	"github.com/fwojciec/echoquill/gemini"
	"github.com/fwojciec/echoquill/logs"
	"github.com/fwojciec/echoquill/server"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// App encapsulates the application logic for testing.
type App struct {
	Addr      string
	Generator echoquill.StoryGenerator
	Config    server.Config
	Registry  *prometheus.Registry
	Logger    *slog.Logger
}

// Run serves the generation API until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	opts := []server.Option{}
	if a.Logger != nil {
		opts = append(opts, server.WithLogger(a.Logger))
	}
	if a.Registry != nil {
		opts = append(opts, server.WithRegistry(a.Registry))
	}
	srv := server.New(a.Generator, a.Config, opts...)
	return srv.ListenAndServe(ctx, a.Addr)
}

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, toml or json)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.LoadServer(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := logs.New(logs.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Console: os.Stderr,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("create gemini client: %w", err)
	}
	defer client.Close()

	var genOpts []gemini.GeneratorOption
	if cfg.Temperature > 0 {
		genOpts = append(genOpts, gemini.WithTemperature(float32(cfg.Temperature)))
	}
	if cfg.TopP > 0 {
		genOpts = append(genOpts, gemini.WithTopP(float32(cfg.TopP)))
	}
	if cfg.TopK > 0 {
		genOpts = append(genOpts, gemini.WithTopK(float32(cfg.TopK)))
	}
	if cfg.MaxOutputTokens > 0 {
		genOpts = append(genOpts, gemini.WithMaxOutputTokens(int32(cfg.MaxOutputTokens)))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := &App{
		Addr:      cfg.Addr,
		Generator: gemini.NewGenerator(client, cfg.GeminiModel, genOpts...),
		Config: server.Config{
			AllowedOrigins:  cfg.AllowedOrigins,
			RateLimit:       cfg.RateLimit,
			RateBurst:       cfg.RateBurst,
			ShutdownTimeout: cfg.ShutdownTimeout,
		},
		Registry: reg,
		Logger:   logger,
	}

	logger.Info("starting", "addr", cfg.Addr, "model", cfg.GeminiModel)
	return app.Run(ctx)
}
