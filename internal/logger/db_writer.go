package logger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to our worker
type LogEntry struct {
	Level     zapcore.Level
	Message   string
	IpAddress string
	RequestID string
	Path      string
	Status    int
	Error     string
	Caller    string // Function name
	Time      time.Time
}

// LogRecord is the document stored in the logs collection.
type LogRecord struct {
	ApplicationId string    `bson:"application_id"`
	LogLevelId    int       `bson:"log_level_id"`
	Message       string    `bson:"message"`
	IpAddress     string    `bson:"ip_address,omitempty"`
	RequestID     string    `bson:"request_id,omitempty"`
	Path          string    `bson:"path,omitempty"`
	Status        int       `bson:"status,omitempty"`
	Error         string    `bson:"error,omitempty"`
	Caller        string    `bson:"caller,omitempty"`
	CreatedOnUtc  time.Time `bson:"created_on_utc"`
}

type inserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// DBLogWriter handles the async writing
type DBLogWriter struct {
	coll    inserter
	logChan chan LogEntry
	appId   string
	done    chan struct{}
	once    sync.Once
}

// NewDBLogWriter initializes the worker
func NewDBLogWriter(coll *mongo.Collection, appId string) *DBLogWriter {
	return newDBLogWriter(coll, appId)
}

func newDBLogWriter(coll inserter, appId string) *DBLogWriter {
	writer := &DBLogWriter{
		coll:    coll,
		logChan: make(chan LogEntry, 1000), // Buffer 1000 logs
		appId:   appId,
		done:    make(chan struct{}),
	}

	go writer.processLogs()

	return writer
}

// AddLog is called by the DB core. It never blocks the request path.
func (w *DBLogWriter) AddLog(entry LogEntry) {
	defer func() {
		// Entries logged after Close are dropped.
		_ = recover()
	}()
	select {
	case w.logChan <- entry:
	default:
		fmt.Println("DB Log Channel Full! Dropping log:", entry.Message)
	}
}

// Close drains buffered entries and stops the worker.
func (w *DBLogWriter) Close() {
	w.once.Do(func() {
		close(w.logChan)
		<-w.done
	})
}

func (w *DBLogWriter) processLogs() {
	defer close(w.done)
	for entry := range w.logChan {
		created := entry.Time
		if created.IsZero() {
			created = time.Now()
		}
		record := LogRecord{
			ApplicationId: w.appId,
			LogLevelId:    mapLevelToInt(entry.Level),
			Message:       entry.Message,
			IpAddress:     entry.IpAddress,
			RequestID:     entry.RequestID,
			Path:          entry.Path,
			Status:        entry.Status,
			Error:         entry.Error,
			Caller:        entry.Caller,
			CreatedOnUtc:  created.UTC(),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		// Insert failures are ignored to keep the app running.
		_, _ = w.coll.InsertOne(ctx, record)
		cancel()
	}
}

func mapLevelToInt(l zapcore.Level) int {
	switch l {
	case zapcore.DebugLevel:
		return 10
	case zapcore.InfoLevel:
		return 20
	case zapcore.WarnLevel:
		return 30
	case zapcore.ErrorLevel:
		return 40
	case zapcore.FatalLevel:
		return 50
	default:
		return 20
	}
}
