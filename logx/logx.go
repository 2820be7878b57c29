package logx

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
)

const (
	defaultMaxSizeMB  = 100
	defaultMaxAgeDays = 28
)

// Logger is the logging surface handed to components that report progress.
// Implementations must be safe for concurrent use.
type Logger interface {
	Info(category string, content ...interface{})
	Warn(category string, content ...interface{})
	Error(category string, content ...interface{})
	Debug(category string, content ...interface{})
	Errorf(format string, args ...interface{}) error
}

// Options configures a Log. The zero value logs to stderr only.
type Options struct {
	Filename   string    // rotating log file, empty disables the file sink
	MaxSizeMB  int       // megabytes
	MaxAgeDays int       // days
	Console    io.Writer // defaults to os.Stderr, io.Discard silences
	Verbose    bool      // emit Debug lines
}

// Log writes categorized lines to the console and, when configured,
// to a size/age-rotated file.
type Log struct {
	logger  *log.Logger
	verbose bool
}

func New(opts Options) *Log {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	sinks := []io.Writer{console}
	if opts.Filename != "" {
		maxSize := opts.MaxSizeMB
		if maxSize <= 0 {
			maxSize = defaultMaxSizeMB
		}
		maxAge := opts.MaxAgeDays
		if maxAge <= 0 {
			maxAge = defaultMaxAgeDays
		}
		sinks = append(sinks, &lumberjack.Logger{
			Filename: opts.Filename,
			MaxSize:  maxSize,
			MaxAge:   maxAge,
		})
	}
	return &Log{
		logger:  log.New(io.MultiWriter(sinks...), "", log.Ldate|log.Ltime|log.Lmicroseconds),
		verbose: opts.Verbose,
	}
}

// Nop returns a logger that discards everything. Intended for tests.
func Nop() *Log {
	return New(Options{Console: io.Discard})
}

func (l *Log) Info(category string, content ...interface{}) {
	message := fmt.Sprint(content...)
	coloredCategory := fmt.Sprintf("%s[INFO][%s]%s", ColorGreen, category, ColorReset)
	l.logger.Printf("%s: %s", coloredCategory, message)
}

func (l *Log) Error(category string, content ...interface{}) {
	message := fmt.Sprint(content...)
	coloredCategory := fmt.Sprintf("%s[ERROR][%s]%s", ColorRed, category, ColorReset)
	l.logger.Printf("%s: %s", coloredCategory, message)
}

func (l *Log) Warn(category string, content ...interface{}) {
	message := fmt.Sprint(content...)
	coloredCategory := fmt.Sprintf("%s[WARN][%s]%s", ColorYellow, category, ColorReset)
	l.logger.Printf("%s: %s", coloredCategory, message)
}

func (l *Log) Debug(category string, content ...interface{}) {
	if !l.verbose {
		return
	}
	message := fmt.Sprint(content...)
	coloredCategory := fmt.Sprintf("%s[DEBUG][%s]%s", ColorBlue, category, ColorReset)
	l.logger.Printf("%s: %s", coloredCategory, message)
}

// Errorf logs an error message and returns a formatted error
func (l *Log) Errorf(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	l.Error("ERROR", err.Error())
	return err
}

var defaultLogger = New(Options{})

// SetDefault replaces the logger used by the package-level helpers.
func SetDefault(l *Log) {
	if l != nil {
		defaultLogger = l
	}
}

func Default() *Log { return defaultLogger }

func Info(category string, content ...interface{})  { defaultLogger.Info(category, content...) }
func Error(category string, content ...interface{}) { defaultLogger.Error(category, content...) }
func Warn(category string, content ...interface{})  { defaultLogger.Warn(category, content...) }
func Debug(category string, content ...interface{}) { defaultLogger.Debug(category, content...) }

func Errorf(format string, args ...interface{}) error {
	return defaultLogger.Errorf(format, args...)
}

const shortenLength = 16

// Shorten truncates hashes and addresses for log lines.
func Shorten(s string) string {
	indexCut := shortenLength / 2
	if len(s) <= shortenLength {
		return s
	}
	return fmt.Sprintf("%s...%s", s[:indexCut], s[len(s)-indexCut:])
}
