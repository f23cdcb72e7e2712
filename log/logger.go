package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes leveled diagnostics to stderr and, when configured, a
// rotating log file. The two sinks are independent: colors only ever
// apply to the terminal, while the file receives plain entries.
type Logger struct {
	term  io.Writer
	file  io.Writer
	level Level
	color bool
	json  bool
}

// Options configures a Logger. The zero value logs warnings and errors to
// stderr with colors enabled. NoColor affects the terminal sink only;
// the file sink is always written without escape sequences.
type Options struct {
	Level   Level
	File    string // optional rotating log file
	NoColor bool
	JSON    bool
}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

func New(opts Options) *Logger {
	l := &Logger{
		term:  os.Stderr,
		level: opts.Level,
		color: !opts.NoColor,
		json:  opts.JSON,
	}

	if opts.File != "" {
		l.file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    32,
			MaxBackups: 3,
			MaxAge:     7,
		}
	}

	return l
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if level < l.level {
		return
	}

	timestamp := time.Now().Format("15:04:05")
	formatted := fmt.Sprintf(msg, args...)

	if l.json {
		line, _ := json.Marshal(entry{
			Timestamp: timestamp,
			Level:     level.String(),
			Message:   formatted,
		})
		fmt.Fprintf(l.term, "%s\n", line)
		if l.file != nil {
			fmt.Fprintf(l.file, "%s\n", line)
		}
		return
	}

	plain := fmt.Sprintf("[%s] %-5s %s", timestamp, level, formatted)

	if l.color {
		fmt.Fprintf(l.term, "%s%s\033[0m\n", level.color(), plain)
	} else {
		fmt.Fprintln(l.term, plain)
	}
	if l.file != nil {
		fmt.Fprintln(l.file, plain)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}
