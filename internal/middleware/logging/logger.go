package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Enabled    bool   // Включено ли логирование
	Level      string // DEBUG, INFO, WARN, ERROR
	LogsDir    string // Директория для логов
	SavingDays uint   // Сколько дней хранить логи
}

// Logger - обертка над logrus с key/value полями и префиксами компонентов.
type Logger struct {
	config *Config
	entry  *logrus.Entry
	file   *os.File
	prefix string

	stop     chan struct{}
	stopOnce *sync.Once
}

func NewLogger(cfg *Config, prefix string) *Logger {
	base := logrus.New()
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	base.SetLevel(parseLevel(cfg.Level))

	l := &Logger{
		config:   cfg,
		prefix:   prefix,
		stop:     make(chan struct{}),
		stopOnce: &sync.Once{},
	}

	var output io.Writer = os.Stdout
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.LogsDir != "" {
		if err := os.MkdirAll(cfg.LogsDir, 0755); err == nil {
			logFile := filepath.Join(cfg.LogsDir, time.Now().Format("2006-01-02")+".log")
			if file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
				l.file = file
				output = io.MultiWriter(os.Stdout, file)
			}
		}
	}
	base.SetOutput(output)
	l.entry = logrus.NewEntry(base)
	if prefix != "" {
		l.entry = l.entry.WithField("component", prefix)
	}

	if cfg.Enabled && cfg.SavingDays > 0 && cfg.LogsDir != "" {
		go l.cleanLoop()
	}

	return l
}

// parseLevel принимает уровни в любом регистре. WARN - синоним warning.
func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func (l *Logger) WithPrefix(prefix string) *Logger {
	newPrefix := l.prefix
	if newPrefix != "" {
		newPrefix += " "
	}
	newPrefix += "[" + prefix + "]"

	return &Logger{
		config:   l.config,
		entry:    l.entry.WithField("component", newPrefix),
		file:     l.file,
		prefix:   newPrefix,
		stop:     l.stop,
		stopOnce: l.stopOnce,
	}
}

func (l *Logger) cleanLoop() {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	l.cleanOldLogs(time.Now())
	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			l.cleanOldLogs(now)
		}
	}
}

// cleanOldLogs удаляет файлы логов старше SavingDays.
func (l *Logger) cleanOldLogs(now time.Time) {
	files, err := os.ReadDir(l.config.LogsDir)
	if err != nil {
		l.Error("Failed to read logs directory", "error", err)
		return
	}

	cutoff := now.AddDate(0, 0, -int(l.config.SavingDays))
	for _, file := range files {
		if info, err := file.Info(); err == nil && !file.IsDir() && info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(l.config.LogsDir, file.Name())); err != nil {
				l.Error("Failed to delete old log file", "file", file.Name(), "error", err)
			}
		}
	}
}

func (l *Logger) log(level logrus.Level, msg string, fields ...interface{}) {
	if !l.config.Enabled || !l.entry.Logger.IsLevelEnabled(level) {
		return
	}
	l.entry.WithFields(toFields(fields)).Log(level, msg)
}

// toFields превращает пары key/value в logrus.Fields. Значение без пары выводится как "?".
func toFields(kv []interface{}) logrus.Fields {
	fields := make(logrus.Fields, len(kv)/2+1)
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		var val interface{} = "?"
		if i+1 < len(kv) {
			val = kv[i+1]
		}
		if err, ok := val.(error); ok {
			val = err.Error()
		}
		fields[key] = val
	}
	return fields
}

func (l *Logger) ShouldLog(level string) bool {
	if !l.config.Enabled {
		return false
	}
	return l.entry.Logger.IsLevelEnabled(parseLevel(level))
}

func (l *Logger) Debug(msg string, fields ...interface{}) { l.log(logrus.DebugLevel, msg, fields...) }
func (l *Logger) Info(msg string, fields ...interface{})  { l.log(logrus.InfoLevel, msg, fields...) }
func (l *Logger) Warn(msg string, fields ...interface{})  { l.log(logrus.WarnLevel, msg, fields...) }
func (l *Logger) Error(msg string, fields ...interface{}) { l.log(logrus.ErrorLevel, msg, fields...) }

func (l *Logger) Close() error {
	l.stopOnce.Do(func() { close(l.stop) })
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
