package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedAdapter(level logrus.Level) (Logger, *bytes.Buffer) {
	logrusLogger := logrus.New()
	var buf bytes.Buffer
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(level)
	logrusLogger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return NewLogrusAdapterFromLogger(logrusLogger), &buf
}

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{name: "debug level with text format", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info level with json format", level: "info", format: "json", expectLevel: logrus.InfoLevel},
		{name: "uppercase level", level: "WARN", format: "text", expectLevel: logrus.WarnLevel},
		{name: "invalid level defaults to info", level: "loud", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.NotNil(t, adapter.logger)
}

func TestLogrusAdapter_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.InfoLevel)

	logger.Debug("token classified", Field{Key: FieldToken, Value: "lunch"})
	assert.Empty(t, buf.String())

	logger.Info("expense saved", Field{Key: FieldCategory, Value: "food"})
	assert.Contains(t, buf.String(), "expense saved")
	assert.Contains(t, buf.String(), "category=food")
}

func TestLogrusAdapter_ChainedFields(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.InfoLevel)

	logger.
		WithField(FieldBackend, "csv").
		WithFields(Field{Key: FieldLine, Value: 3}).
		WithError(errors.New("bad amount")).
		Error("failed to load expenses")

	output := buf.String()
	assert.Contains(t, output, "failed to load expenses")
	assert.Contains(t, output, "backend=csv")
	assert.Contains(t, output, "line=3")
	assert.Contains(t, output, "bad amount")
}

func TestLogrusAdapter_SetOutput(t *testing.T) {
	adapter := NewLogrusAdapter("info", "json").(*LogrusAdapter)
	var buf bytes.Buffer
	adapter.SetOutput(&buf)

	adapter.Info("budget computed", Field{Key: FieldCount, Value: 6})
	assert.Contains(t, buf.String(), `"msg":"budget computed"`)
	assert.Contains(t, buf.String(), `"count":6`)
}

func TestConvertFields(t *testing.T) {
	logrusFields := convertFields([]Field{
		{Key: FieldCategory, Value: "rent"},
		{Key: FieldCount, Value: 42},
	})

	assert.Len(t, logrusFields, 2)
	assert.Equal(t, "rent", logrusFields[FieldCategory])
	assert.Equal(t, 42, logrusFields[FieldCount])
	assert.Empty(t, convertFields(nil))
}

func TestMockLogger_SharedSink(t *testing.T) {
	mock := NewMockLogger()
	derived := mock.WithField(FieldComponent, "parser").WithError(errors.New("boom"))

	derived.Warn("skipped line", Field{Key: FieldLine, Value: 2})
	mock.Info("done")

	entries := mock.GetEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, []Field{{Key: FieldComponent, Value: "parser"}, {Key: FieldLine, Value: 2}}, entries[0].Fields)
	assert.EqualError(t, entries[0].Error, "boom")
	assert.True(t, mock.HasEntry("INFO", "done"))
	assert.Len(t, mock.GetEntriesByLevel("WARN"), 1)

	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
