package logger

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// EntrySink receives a copy of every entry the DB core lets through.
type EntrySink interface {
	AddLog(entry LogEntry)
}

// DBCore is a zap core that forwards entries to a sink before writing them
// to the wrapped core.
type DBCore struct {
	zapcore.Core
	sink   EntrySink
	fields []zapcore.Field
}

// NewDBCore wraps an existing core (like console logger) and adds DB logging
func NewDBCore(baseCore zapcore.Core, sink EntrySink) zapcore.Core {
	return &DBCore{
		Core: baseCore,
		sink: sink,
	}
}

// With keeps the DB wrapping on child loggers.
func (c *DBCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &DBCore{
		Core:   c.Core.With(fields),
		sink:   c.sink,
		fields: merged,
	}
}

// Write is called for every log entry. String fields are cloned because the
// sink stores entries past the lifetime of the request that produced them.
func (c *DBCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	logEntry := LogEntry{
		Level:   entry.Level,
		Message: strings.Clone(entry.Message),
		Caller:  entry.Caller.Function,
		Time:    entry.Time,
	}

	for _, f := range append(c.fields, fields...) {
		switch f.Key {
		case "ip":
			logEntry.IpAddress = strings.Clone(f.String)
		case "requestId":
			logEntry.RequestID = strings.Clone(f.String)
		case "path":
			logEntry.Path = strings.Clone(f.String)
		case "status":
			logEntry.Status = int(f.Integer)
		case "error":
			if err, ok := f.Interface.(error); ok {
				logEntry.Error = err.Error()
			}
		}
	}

	c.sink.AddLog(logEntry)

	return c.Core.Write(entry, fields)
}

// Check decides if we should log this level
func (c *DBCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}
