package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"

	"github.com/fredcamaral/rizzdeck/internal/domain/entities"
)

// Logger wraps a slog.Logger together with the files it writes to
type Logger struct {
	*slog.Logger
	closers []io.Closer
}

// Close releases any log files
func (l *Logger) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.closers = nil
	return firstErr
}

// New builds a logger writing to w and, when configured, to a log file and
// the systemd journal. The file handler always writes JSON; the journal
// keeps its own default level. An unreachable journal is reported as a
// warning on w and otherwise ignored.
func New(cfg entities.LoggingConfig, w io.Writer) (*Logger, error) {
	opts := &slog.HandlerOptions{Level: Level(cfg.GetLevel())}

	var terminal slog.Handler
	if cfg.JSONFormat {
		terminal = slog.NewJSONHandler(w, opts)
	} else {
		terminal = slog.NewTextHandler(w, opts)
	}
	handlers := []slog.Handler{terminal}

	logger := &Logger{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600) // #nosec G304 - path comes from validated config
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", cfg.File, err)
		}
		logger.closers = append(logger.closers, f)
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}

	if cfg.Journal {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: toJournalKey,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			slog.New(terminal).Warn("systemd journal unavailable", "error", err)
		} else {
			handlers = append(handlers, journal)
		}
	}

	logger.Logger = slog.New(slogmulti.Fanout(handlers...))
	return logger, nil
}

// Level maps a configured level onto slog
func Level(level entities.LogLevel) slog.Level {
	switch level {
	case entities.LogLevelDebug:
		return slog.LevelDebug
	case entities.LogLevelWarn:
		return slog.LevelWarn
	case entities.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// toJournalKey upper-cases key and replaces everything outside [A-Z0-9]
// with an underscore, as journald field names require
func toJournalKey(key string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(key))
}
