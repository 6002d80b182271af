package utils

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// LogLevel represents different log levels
type LogLevel string

const (
	INFO  LogLevel = "INFO"
	WARN  LogLevel = "WARN"
	ERROR LogLevel = "ERROR"
)

// LogEntry represents a structured log entry
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     LogLevel       `json:"level"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Logger writes structured JSON log lines to stdout.
type Logger struct {
	logger *log.Logger
}

func NewLogger() *Logger {
	return &Logger{
		logger: log.New(os.Stdout, "", 0),
	}
}

// Info logs an info message with optional structured data.
func (l *Logger) Info(message string, data map[string]any) {
	l.output(LogEntry{Timestamp: time.Now(), Level: INFO, Message: message, Data: data})
}

// Warn logs a warning message.
func (l *Logger) Warn(message string, data map[string]any) {
	l.output(LogEntry{Timestamp: time.Now(), Level: WARN, Message: message, Data: data})
}

// Error logs an error message with the error string attached.
func (l *Logger) Error(message string, err error, data map[string]any) {
	entry := LogEntry{Timestamp: time.Now(), Level: ERROR, Message: message, Data: data}
	if err != nil {
		entry.Error = err.Error()
	}
	l.output(entry)
}

func (l *Logger) output(entry LogEntry) {
	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		log.Printf("Error marshaling log entry: %v", err)
		return
	}
	l.logger.Println(string(jsonBytes))
}
