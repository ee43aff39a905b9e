package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is the render-time logger. A nil *Logger is valid and discards everything, so
// library code can log without checking whether the caller configured one.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger writing to opts.Writer, or stderr when unset. Page output goes to
// stdout, so diagnostics stay out of it.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		output = console
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a Logger that drops every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With returns a derived logger that adds key=value to every entry.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Interface(key, value).Logger()}
}

// WithFields returns a derived logger that adds every field to every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return &Logger{base: builder.Logger()}
}

// Section returns a derived logger scoped to one page section.
func (l *Logger) Section(sectionType, id string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str("section", sectionType).Str("section_id", id).Logger()}
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level string) bool {
	if l == nil {
		return false
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return false
	}
	return parsed >= l.base.GetLevel()
}

func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Debugf is Debug with formatting. Arguments are not formatted when debug is disabled.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil {
		return
	}
	l.base.Debug().Msgf(format, args...)
}

func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error entry carrying err.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
