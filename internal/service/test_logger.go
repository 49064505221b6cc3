package service

import "strings"

// Capturing logger used by service package tests.
type MockServiceLogger struct {
	Messages []string
}

func NewMockServiceLogger() *MockServiceLogger {
	return &MockServiceLogger{}
}

func (l *MockServiceLogger) Info(msg string, fields ...interface{}) {
	l.Messages = append(l.Messages, "INFO: "+msg)
}

func (l *MockServiceLogger) Error(msg string, err error, fields ...interface{}) {
	l.Messages = append(l.Messages, "ERROR: "+msg)
}

func (l *MockServiceLogger) Debug(msg string, fields ...interface{}) {
	l.Messages = append(l.Messages, "DEBUG: "+msg)
}

func (l *MockServiceLogger) Warn(msg string, fields ...interface{}) {
	l.Messages = append(l.Messages, "WARN: "+msg)
}

// Contains reports whether any recorded message includes the substring.
func (l *MockServiceLogger) Contains(sub string) bool {
	for _, m := range l.Messages {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}
