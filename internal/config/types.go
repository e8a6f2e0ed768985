// Package config loads the settings shared by the command line tools.
package config

// Color modes accepted by the color key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Defaults applied before any file, environment variable or flag.
const (
	DefaultPrompt = "> "
	DefaultFileID = "REPL input"
	EnvPrefix     = "EXPR_"
)

// Config holds all driver configuration options.
type Config struct {
	Color       string    `koanf:"color"`
	Prompt      string    `koanf:"prompt"`
	HistoryFile string    `koanf:"history_file"`
	ShowTree    bool      `koanf:"show_tree"`
	FileID      string    `koanf:"file_id"`
	Log         LogConfig `koanf:"log"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Color:  ColorAuto,
		Prompt: DefaultPrompt,
		FileID: DefaultFileID,
	}
}

// LogConfig configures commonlog for the binaries.
type LogConfig struct {
	Verbosity int    `koanf:"verbosity"`
	File      string `koanf:"file"`
}
