package audit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stream names an append-only audit category. Each stream is its own
// file of newline-terminated JSON records.
type Stream string

const (
	StreamOrderRequests        Stream = "order_requests"
	StreamOrderResponses       Stream = "order_responses"
	StreamOrderErrors          Stream = "order_errors"
	StreamCallbackPayloads     Stream = "callback_payloads"
	StreamCallbackStatusErrors Stream = "callback_status_errors"
	StreamCallbackDecisions    Stream = "callback_decisions"
)

var streams = []Stream{
	StreamOrderRequests,
	StreamOrderResponses,
	StreamOrderErrors,
	StreamCallbackPayloads,
	StreamCallbackStatusErrors,
	StreamCallbackDecisions,
}

// Recorder is the write-only port the request path depends on.
// Recording is fire-and-forget: implementations never surface write
// failures to the caller.
type Recorder interface {
	Record(stream Stream, fields ...zap.Field)
}

// FileLog appends audit records to one file per stream. Each record is
// a single self-contained line, so concurrent appends from overlapping
// requests interleave at record granularity without corruption.
type FileLog struct {
	loggers map[Stream]*zap.Logger
}

// NewFileLog opens every stream file under dir, creating the directory
// if needed.
func NewFileLog(dir string) (*FileLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audit log directory: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:    "timestamp",
		EncodeTime: zapcore.RFC3339NanoTimeEncoder,
		LineEnding: zapcore.DefaultLineEnding,
	}

	loggers := make(map[Stream]*zap.Logger, len(streams))
	for _, stream := range streams {
		path := filepath.Join(dir, string(stream)+".log")
		file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open audit stream %s: %w", stream, err)
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.Lock(zapcore.AddSync(file)),
			zapcore.InfoLevel,
		)
		loggers[stream] = zap.New(core)
	}

	return &FileLog{loggers: loggers}, nil
}

// Record appends one record to the stream. Unknown streams and write
// failures are silently dropped; the response path never blocks on the
// audit trail.
func (l *FileLog) Record(stream Stream, fields ...zap.Field) {
	logger, ok := l.loggers[stream]
	if !ok {
		return
	}
	record := append([]zap.Field{zap.String("event_id", uuid.NewString())}, fields...)
	logger.Info("", record...)
}

// Close flushes every stream.
func (l *FileLog) Close() {
	for _, logger := range l.loggers {
		_ = logger.Sync()
	}
}
