package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absPath(flagPath)
	}

	// Priority 2: IL2GE_LOG_PATH environment variable
	if envPath := os.Getenv("IL2GE_LOG_PATH"); envPath != "" {
		return absPath(envPath)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

// Init opens diagnostics_log.txt in the log directory.
func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	diagPath := filepath.Join(dir, "diagnostics_log.txt")
	f, err := os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	diagFile = f
	setWriterLocked(f)
	return nil
}

// SetOutput logs to w instead of a file. Passing nil disables logging.
func SetOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	if w == nil {
		logReady = false
		return
	}
	setWriterLocked(w)
}

func setWriterLocked(w io.Writer) {
	pid = os.Getpid()
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()
	logReady = true
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func SessionStart(configPath string, enabled bool, commands int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("config", configPath).
		Bool("enabled", enabled).
		Int("commands", commands).
		Msg("session_start")
}

func SessionEnd(executed int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("executed", executed).
		Msg("session_end")
}

func BindingAdded(category, id, combo string) {
	if !logReady {
		return
	}
	ev := diagLog.Debug().
		Str("category", category).
		Str("id", id)
	if combo != "" {
		ev = ev.Str("combo", combo)
	}
	ev.Msg("binding_added")
}

func CommandExecuted(name string) {
	if !logReady {
		return
	}
	diagLog.Info().Str("command", name).Msg("command_executed")
}

func UnknownCommand(name string) {
	if !logReady {
		return
	}
	diagLog.Warn().Str("command", name).Msg("no such command")
}

func MenuVisibility(visible bool) {
	if !logReady {
		return
	}
	diagLog.Info().Bool("visible", visible).Msg("menu")
}

func FeatureToggled(enabled bool) {
	if !logReady {
		return
	}
	diagLog.Info().Bool("enabled", enabled).Msg("feature_toggled")
}

func FocusChanged(captured bool) {
	if !logReady {
		return
	}
	diagLog.Debug().Bool("captured", captured).Msg("keyboard_focus")
}
