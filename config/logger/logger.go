package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFormat = "2006-01-02 15:04:05.000"

type CommonLogger struct {
	Info    zerolog.Logger
	Error   zerolog.Logger
	Trace   zerolog.Logger
	Warning zerolog.Logger
	Stream  zerolog.Logger
}

// AppLogger splits usecase logs by concern: Http for request driven work,
// Auth for signup, signin and ownership events.
type AppLogger struct {
	Http CommonLogger
	Auth CommonLogger
}

type Options struct {
	Dir   string
	Level string
}

func NewLogger(opts Options) *AppLogger {
	if opts.Dir == "" {
		opts.Dir = "logs"
	}
	_ = os.MkdirAll(opts.Dir, 0755)

	zerolog.TimeFieldFormat = timeFormat
	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	console := consoleConfWriter()
	file := func(name string) zerolog.Logger {
		return newMultiLogger(console, filepath.Join(opts.Dir, name)).Level(level)
	}

	return &AppLogger{
		Http: CommonLogger{
			Stream:  file("stream.log"),
			Info:    file("info.log"),
			Trace:   file("trace.log"),
			Warning: file("warning.log"),
			Error:   file("error.log"),
		},
		Auth: CommonLogger{
			Stream:  file("auth.stream.log"),
			Info:    file("auth.info.log"),
			Trace:   file("auth.trace.log"),
			Warning: file("auth.warning.log"),
			Error:   file("auth.error.log"),
		},
	}
}

// NewNop discards everything. Used by tests.
func NewNop() *AppLogger {
	nop := zerolog.Nop()
	common := CommonLogger{Info: nop, Error: nop, Trace: nop, Warning: nop, Stream: nop}
	return &AppLogger{Http: common, Auth: common}
}

// NewWriterLogger sends every channel to w without formatting, which lets
// tests inspect emitted events.
func NewWriterLogger(w io.Writer) *AppLogger {
	log := zerolog.New(w).With().Timestamp().Logger()
	common := CommonLogger{Info: log, Error: log, Trace: log, Warning: log, Stream: log}
	return &AppLogger{Http: common, Auth: common}
}

func newMultiLogger(console zerolog.ConsoleWriter, filename string) zerolog.Logger {
	multi := io.MultiWriter(console, fileConsoleWriter(filename))

	return zerolog.New(multi).With().Timestamp().Logger()
}

func consoleConfWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: timeFormat,
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("[%s]", i)
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("[%s]", strings.ToUpper(fmt.Sprint(i)))
		},
	}
}

func fileConsoleWriter(filename string) io.Writer {
	return zerolog.ConsoleWriter{
		Out: &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    5,
			MaxAge:     20,
			MaxBackups: 5,
			Compress:   true,
		},
		NoColor:    true,
		TimeFormat: timeFormat,
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("[%s]", i)
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("[%s]", strings.ToUpper(fmt.Sprint(i)))
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s=", i)
		},
	}
}
