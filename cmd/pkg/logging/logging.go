package logging

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// writerHook отправляет записи лога сразу в несколько writer'ов.
type writerHook struct {
	Writer    []io.Writer
	LogLevels []logrus.Level
}

func (hook *writerHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	for _, w := range hook.Writer {
		if _, err := w.Write([]byte(line)); err != nil {
			return err
		}
	}
	return nil
}

func (hook *writerHook) Levels() []logrus.Level {
	return hook.LogLevels
}

var e *logrus.Entry

// Logger — обёртка над logrus.Entry, чтобы не тянуть logrus по всему коду.
type Logger struct {
	*logrus.Entry
}

// GetLogger возвращает общий логгер приложения.
func GetLogger() *Logger {
	return &Logger{e}
}

// WithField возвращает логгер с дополнительным контекстным полем.
func (l *Logger) WithField(k string, v interface{}) *Logger {
	return &Logger{l.Entry.WithField(k, v)}
}

// WithFields возвращает логгер с набором контекстных полей.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{l.Entry.WithFields(fields)}
}

func init() {
	l := logrus.New()
	l.SetReportCaller(true)
	l.Formatter = &logrus.TextFormatter{
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			filename := path.Base(f.File)
			return fmt.Sprintf("%s()", f.Function), fmt.Sprintf("%s:%d", filename, f.Line)
		},
		DisableColors: false,
		FullTimestamp: true,
	}

	l.SetOutput(io.Discard)

	l.AddHook(&writerHook{
		Writer:    []io.Writer{os.Stdout},
		LogLevels: logrus.AllLevels,
	})

	l.SetLevel(logrus.TraceLevel)

	e = logrus.NewEntry(l)
}
