package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	enabled = true // flip to false to nuke logs
	log     = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
)

func EnableLogging(b bool) {
	enabled = b
}

func SetLevel(l zerolog.Level) {
	log = log.Level(l)
}

func Debug(msg string, v ...interface{}) {
	if !enabled {
		return
	}
	log.Debug().Msg(fmt.Sprintf(msg, v...))
}

func Info(msg string, v ...interface{}) {
	if !enabled {
		return
	}
	log.Info().Msg(fmt.Sprintf(msg, v...))
}

func Error(msg string, v ...interface{}) {
	if !enabled {
		return
	}
	log.Error().Msg(fmt.Sprintf(msg, v...))
}

func Fatal(msg string, v ...interface{}) {
	log.Fatal().Msg(fmt.Sprintf(msg, v...))
}
