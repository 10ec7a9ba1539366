// Package logging provides structured logging channels for renderer
// operations.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Channel represents a logical logging channel for different system
// components.
type Channel string

const (
	ChannelSystem  Channel = "system"  // General system operations
	ChannelStartup Channel = "startup" // Application startup and initialization
	ChannelRender  Channel = "render"  // Document rendering
	ChannelFetch   Channel = "fetch"   // Outbound spreadsheet fetches
	ChannelPerf    Channel = "perf"    // Performance measurements
)

// allChannels is the closed set a logger is initialized with.
var allChannels = []Channel{ChannelSystem, ChannelStartup, ChannelRender, ChannelFetch, ChannelPerf}

// LoggerConfig contains configuration options for the channeled logger.
type LoggerConfig struct {
	OutputToFile    bool
	OutputToConsole bool
	LogDirectory    string
	JSONFormat      bool
	Level           slog.Level
}

// DefaultConfig logs text to the console at info level.
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		OutputToConsole: true,
		Level:           slog.LevelInfo,
	}
}

// ChanneledLogger provides structured logging with one slog.Logger per
// channel. Channel loggers are created once and safe for concurrent use.
type ChanneledLogger struct {
	channels map[Channel]*slog.Logger
	config   *LoggerConfig
	mu       sync.RWMutex
}

// NewChanneledLogger creates the channeled logger. A nil config uses
// console defaults. File output failures degrade to console-only.
func NewChanneledLogger(config *LoggerConfig) *ChanneledLogger {
	if config == nil {
		config = DefaultConfig()
	}

	cl := &ChanneledLogger{
		channels: make(map[Channel]*slog.Logger, len(allChannels)),
		config:   config,
	}
	for _, ch := range allChannels {
		cl.channels[ch] = cl.buildChannel(ch)
	}
	return cl
}

func (cl *ChanneledLogger) buildChannel(ch Channel) *slog.Logger {
	var writers []io.Writer
	if cl.config.OutputToConsole {
		writers = append(writers, os.Stdout)
	}
	if cl.config.OutputToFile && cl.config.LogDirectory != "" {
		if err := os.MkdirAll(cl.config.LogDirectory, 0755); err == nil {
			path := filepath.Join(cl.config.LogDirectory, string(ch)+".log")
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
				writers = append(writers, f)
			}
		}
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	out := io.MultiWriter(writers...)
	opts := &slog.HandlerOptions{Level: cl.config.Level}

	var handler slog.Handler
	if cl.config.JSONFormat {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler).With("channel", string(ch))
}

// Channel returns the logger for an arbitrary channel, falling back to
// the system channel for unknown names.
func (cl *ChanneledLogger) Channel(ch Channel) *slog.Logger {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	if logger, ok := cl.channels[ch]; ok {
		return logger
	}
	return cl.channels[ChannelSystem]
}

// System returns the general system channel.
func (cl *ChanneledLogger) System() *slog.Logger { return cl.Channel(ChannelSystem) }

// Startup returns the startup channel.
func (cl *ChanneledLogger) Startup() *slog.Logger { return cl.Channel(ChannelStartup) }

// Render returns the document-rendering channel.
func (cl *ChanneledLogger) Render() *slog.Logger { return cl.Channel(ChannelRender) }

// Fetch returns the outbound-fetch channel.
func (cl *ChanneledLogger) Fetch() *slog.Logger { return cl.Channel(ChannelFetch) }

// Perf returns the performance channel.
func (cl *ChanneledLogger) Perf() *slog.Logger { return cl.Channel(ChannelPerf) }
