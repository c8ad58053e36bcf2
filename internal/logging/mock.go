package logging

import (
	"sync"
)

// MockLogger captures log entries for assertions in tests. Loggers derived with
// WithField/WithFields/WithError record into the same sink as their parent.
type MockLogger struct {
	sink          *mockSink
	pendingError  error
	pendingFields []Field
}

type mockSink struct {
	mu      sync.Mutex
	entries []LogEntry
}

// LogEntry is a single captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// NewMockLogger returns an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{sink: &mockSink{}}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	if m.sink == nil {
		m.sink = &mockSink{}
	}
	all := make([]Field, 0, len(m.pendingFields)+len(fields))
	all = append(all, m.pendingFields...)
	all = append(all, fields...)

	m.sink.mu.Lock()
	defer m.sink.mu.Unlock()
	m.sink.entries = append(m.sink.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  all,
		Error:   m.pendingError,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

func (m *MockLogger) WithError(err error) Logger {
	if m.sink == nil {
		m.sink = &mockSink{}
	}
	return &MockLogger{
		sink:          m.sink,
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

func (m *MockLogger) WithFields(fields ...Field) Logger {
	if m.sink == nil {
		m.sink = &mockSink{}
	}
	all := make([]Field, 0, len(m.pendingFields)+len(fields))
	all = append(all, m.pendingFields...)
	all = append(all, fields...)
	return &MockLogger{
		sink:          m.sink,
		pendingError:  m.pendingError,
		pendingFields: all,
	}
}

// GetEntries returns a copy of all captured entries.
func (m *MockLogger) GetEntries() []LogEntry {
	if m.sink == nil {
		return nil
	}
	m.sink.mu.Lock()
	defer m.sink.mu.Unlock()
	out := make([]LogEntry, len(m.sink.entries))
	copy(out, m.sink.entries)
	return out
}

// GetEntriesByLevel returns captured entries of one level ("DEBUG", "INFO", ...).
func (m *MockLogger) GetEntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range m.GetEntries() {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// HasEntry reports whether an entry with the given level and message was captured.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.GetEntries() {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}

// Clear drops all captured entries.
func (m *MockLogger) Clear() {
	if m.sink == nil {
		return
	}
	m.sink.mu.Lock()
	defer m.sink.mu.Unlock()
	m.sink.entries = nil
}
