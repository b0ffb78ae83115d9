// Package logger expone el logger estructurado del servicio sobre zerolog.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controla formato y nivel de salida.
type Config struct {
	Env   string // development escribe consola legible; cualquier otro, JSON por línea
	Level string // trace|debug|info|warn|error; desconocido cae a info
}

// Logger envuelve zerolog para que las capas superiores no dependan del logger global.
type Logger struct {
	base zerolog.Logger
}

// New construye el logger del servicio. También se instala como logger global
// de zerolog para las librerías que escriben por esa vía.
func New(cfg Config) *Logger {
	out := io.Writer(os.Stdout)
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly}
	}

	base := zerolog.New(out).
		Level(nivelDesde(cfg.Level)).
		With().
		Timestamp().
		Logger()
	log.Logger = base

	return &Logger{base: base}
}

func nivelDesde(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Trace() *zerolog.Event { return l.base.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.base.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.base.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.base.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.base.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.base.Fatal() }

// With abre un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.base.With()
}
