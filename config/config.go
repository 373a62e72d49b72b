// Package config loads echoquill configuration from defaults, an optional file and the environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/echoquill/fs"
	"github.com/fwojciec/echoquill/gemini"
	"github.com/fwojciec/echoquill/rest"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. ECHOQUILL_ENDPOINT.
const EnvPrefix = "ECHOQUILL"

// ErrMissingAPIKey is returned when the server has no Gemini API key.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY not found in environment variables")

// Client configures the terminal client.
type Client struct {
	Endpoint  string        // Generation service URL
	Timeout   time.Duration // Per-call timeout
	ExportDir string        // Where story.txt is written
	LogFile   string        // Log destination; the TUI never logs to the terminal
	LogLevel  string
	Theme     string // "dark" or "light"

	ClipboardCommand string // Program that receives copied text on stdin; empty uses the system clipboard
}

// Server configures the generation service.
type Server struct {
	Addr            string
	GeminiAPIKey    string
	GeminiModel     string
	Temperature     float64 // 0 = model default
	TopP            float64 // 0 = model default
	TopK            float64 // 0 = model default
	MaxOutputTokens int     // 0 = model default
	AllowedOrigins  []string
	RateLimit       float64 // Sustained /generate requests per second; 0 disables limiting
	RateBurst       int
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// LoadClient reads the client configuration. path may be empty.
func LoadClient(path string) (*Client, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	v.SetDefault("endpoint", rest.DefaultEndpoint)
	v.SetDefault("timeout", rest.DefaultTimeout)
	v.SetDefault("export_dir", fs.DefaultExportDir())
	v.SetDefault("log_file", filepath.Join(fs.DefaultStateDir(), "echoquill.log"))
	v.SetDefault("log_level", "info")
	v.SetDefault("theme", "dark")
	v.SetDefault("clipboard_command", "")

	cfg := &Client{
		Endpoint:  v.GetString("endpoint"),
		Timeout:   v.GetDuration("timeout"),
		ExportDir: v.GetString("export_dir"),
		LogFile:   v.GetString("log_file"),
		LogLevel:  v.GetString("log_level"),
		Theme:     strings.ToLower(v.GetString("theme")),

		ClipboardCommand: v.GetString("clipboard_command"),
	}
	if cfg.Theme != "dark" && cfg.Theme != "light" {
		return nil, fmt.Errorf("config: theme must be dark or light, got %q", cfg.Theme)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("config: timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}

// LoadServer reads the server configuration. path may be empty.
func LoadServer(path string) (*Server, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	// Accept the bare variable name the Gemini tooling uses as well as the prefixed one.
	if err := v.BindEnv("gemini_api_key", EnvPrefix+"_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	v.SetDefault("addr", ":8000")
	v.SetDefault("gemini_model", gemini.DefaultModel)
	v.SetDefault("temperature", 0.0)
	v.SetDefault("top_p", 0.0)
	v.SetDefault("top_k", 0.0)
	v.SetDefault("max_output_tokens", 0)
	v.SetDefault("allowed_origins", "*")
	v.SetDefault("rate_limit", 1.0)
	v.SetDefault("rate_burst", 5)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("shutdown_timeout", 30*time.Second)

	cfg := &Server{
		Addr:            v.GetString("addr"),
		GeminiAPIKey:    v.GetString("gemini_api_key"),
		GeminiModel:     v.GetString("gemini_model"),
		Temperature:     v.GetFloat64("temperature"),
		TopP:            v.GetFloat64("top_p"),
		TopK:            v.GetFloat64("top_k"),
		MaxOutputTokens: v.GetInt("max_output_tokens"),
		AllowedOrigins:  stringList(v, "allowed_origins"),
		RateLimit:       v.GetFloat64("rate_limit"),
		RateBurst:       v.GetInt("rate_burst"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}
	if cfg.GeminiAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return v, nil
}

// stringList reads a key given either as a list in a config file or as a
// comma-separated string in the environment.
func stringList(v *viper.Viper, key string) []string {
	if raw, ok := v.Get(key).([]any); ok {
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	var out []string
	for _, s := range strings.Split(v.GetString(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
