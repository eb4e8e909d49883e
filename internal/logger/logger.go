package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Options struct {
	Level  string
	Pretty bool
	Writer io.Writer
}

// New собирает корневой логгер приложения. Неизвестный уровень понижается до info.
func New(opts Options) zerolog.Logger {
	var writer io.Writer = os.Stdout
	if opts.Writer != nil {
		writer = opts.Writer
	}
	if opts.Pretty {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
