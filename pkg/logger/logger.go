package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	TargetConsole = "console"
	TargetFile    = "file"
)

type Config struct {
	Filename   string   `yaml:"filename"`
	LogLevel   string   `yaml:"level"`
	Targets    []string `yaml:"targets"`
	MaxSize    int      `yaml:"max_size_in_mb"`
	MaxBackups int      `yaml:"max_backups"`
	Compress   bool     `yaml:"compress"`
}

var (
	mu     sync.RWMutex
	global = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// InitGlobalLogger replaces the process logger. It is meant to be called once
// at startup, before any goroutine logs.
func InitGlobalLogger(cfg *Config) {
	l := New(cfg)

	mu.Lock()
	global = l
	mu.Unlock()
}

// New builds a logger from cfg without touching the global one.
func New(cfg *Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	writers := make([]io.Writer, 0, 2)
	for _, t := range cfg.Targets {
		switch t {
		case TargetConsole:
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
		case TargetFile:
			if cfg.Filename == "" {
				continue
			}
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				Compress:   cfg.Compress,
			})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return global
}

func Debug(msg string, args ...any) {
	l := get()
	withFields(l.Debug(), args).Msg(msg)
}

func Info(msg string, args ...any) {
	l := get()
	withFields(l.Info(), args).Msg(msg)
}

func Warn(msg string, args ...any) {
	l := get()
	withFields(l.Warn(), args).Msg(msg)
}

func Error(msg string, args ...any) {
	l := get()
	withFields(l.Error(), args).Msg(msg)
}

// withFields attaches key/value pairs. A dangling key is logged under "!BADKEY".
func withFields(e *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}

		if i+1 >= len(args) {
			e = e.Interface("!BADKEY", args[i])

			break
		}

		switch v := args[i+1].(type) {
		case error:
			e = e.AnErr(key, v)
		default:
			e = e.Interface(key, v)
		}
	}

	return e
}
