package providers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"ard/internal/structures"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeJob
	TypeHTTP
)

func (t TypeEnum) String() string {
	switch t {
	case TypeJob:
		return "job"
	case TypeHTTP:
		return "http"
	default:
		return "app"
	}
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   []*os.File
}

var logTypes = []TypeEnum{TypeApp, TypeJob, TypeHTTP}

// NewLogProvider writes every log type into its own file under conf.Logger.Dir.
// With an empty dir, or in debug mode, records also go to the console.
func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	lp := &LogProvider{loggers: make(map[TypeEnum]zerolog.Logger, len(logTypes))}
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	for _, t := range logTypes {
		var writers []io.Writer
		if conf.Logger.Dir != "" {
			name := filepath.Join(conf.Logger.Dir, t.String()+".log")
			file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, os.FileMode(conf.Logger.Mode))
			if err != nil {
				lp.Close()
				return nil, fmt.Errorf("unable to open log file %s: %w", name, err)
			}
			lp.files = append(lp.files, file)
			writers = append(writers, file)
		}
		if conf.Logger.Dir == "" || conf.Debug {
			writers = append(writers, console)
		}

		lp.loggers[t] = zerolog.New(zerolog.MultiLevelWriter(writers...)).
			Level(level).
			With().
			Timestamp().
			Str("type", t.String()).
			Logger()
	}

	return lp, nil
}

func (lp *LogProvider) logger(t TypeEnum) *zerolog.Logger {
	l, ok := lp.loggers[t]
	if !ok {
		l = lp.loggers[TypeApp]
	}
	return &l
}

func (lp *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lp.logger(t).Error().Msgf(format, args...)
}

func (lp *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lp.logger(t).Warn().Msgf(format, args...)
}

func (lp *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lp.logger(t).Debug().Msgf(format, args...)
}

func (lp *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lp.logger(t).Info().Msgf(format, args...)
}

func (lp *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lp.logger(t).Fatal().Msgf(format, args...)
}

func (lp *LogProvider) Close() {
	for _, f := range lp.files {
		_ = f.Sync()
		_ = f.Close()
	}
	lp.files = nil
}
