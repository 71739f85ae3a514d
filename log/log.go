package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	diagLog     zerolog.Logger
	diagFile    *os.File
	triggerFile *os.File
	logMu       sync.Mutex
	logReady    bool
	pid         int
	dir         string
)

// ResolveDir picks the log directory: the -logpath flag, then
// KEYHOOK_LOG_PATH, then the OS default. Relative paths are taken from the
// working directory.
func ResolveDir(flagPath string) (string, error) {
	for _, p := range []string{flagPath, os.Getenv("KEYHOOK_LOG_PATH")} {
		if p == "" {
			continue
		}
		if filepath.IsAbs(p) {
			return p, nil
		}
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(wd, p), nil
	}
	return getDefaultDir()
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

func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error

	diagPath := filepath.Join(dir, "diagnostics_log.txt")
	diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	triggerPath := filepath.Join(dir, "triggers_log.txt")
	triggerFile, err = os.OpenFile(triggerPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		diagFile.Close()
		return err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	if triggerFile != nil {
		triggerFile.Close()
		triggerFile = nil
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

func SessionStart(backend, configPath string, keybinds int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("backend", backend).
		Str("config", configPath).
		Int("keybinds", keybinds).
		Msg("session_start")
}

func SessionEnd(triggers int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("triggers", triggers).
		Msg("session_end")
}

func HookStarted(backend string) {
	if !logReady {
		return
	}
	diagLog.Info().Str("backend", backend).Msg("hook_started")
}

func HookFailed(err error) {
	if !logReady {
		return
	}
	diagLog.Error().Err(err).Msg("hook_failed")
}

// KeybindTriggered records a match in the diagnostics log and appends a
// line to triggers_log.txt.
func KeybindTriggered(action, combo string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("action", action).
		Str("keys", combo).
		Msg("keybind_triggered")

	logMu.Lock()
	defer logMu.Unlock()
	if triggerFile == nil {
		return
	}
	line := fmt.Sprintf("%s\t[%d]\t%s\t%s\n", time.Now().Format("2006-01-02 15:04:05"), pid, action, combo)
	triggerFile.WriteString(line)
}

func ShortcutHandled(name string) {
	if !logReady {
		return
	}
	diagLog.Info().Str("name", name).Msg("shortcut_handled")
}

func KeybindsApplied(count int, enabled bool) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("count", count).
		Bool("enabled", enabled).
		Msg("keybinds_applied")
}

func ProfileReloaded(path string, count int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("path", path).
		Int("count", count).
		Msg("profile_reloaded")
}

func NotifyFailed(event string, err error) {
	if !logReady {
		return
	}
	diagLog.Warn().
		Str("event", event).
		Err(err).
		Msg("notify_failed")
}

func EffectChosen(effect, osName, osVersion, osBuild string) {
	if !logReady {
		return
	}
	ev := diagLog.Info().
		Str("os", osName).
		Str("version", osVersion)
	if osBuild != "" {
		ev = ev.Str("build", osBuild)
	}
	if effect == "" {
		effect = "none"
	}
	ev.Str("effect", effect).Msg("window_effect")
}
