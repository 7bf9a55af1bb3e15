package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "fzmenu.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	logFile      *os.File
	logger       *zap.Logger
)

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	l := current()
	if l == nil {
		return
	}
	l.Error("error", zap.Error(err))
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled {
		return
	}
	l := current()
	if l == nil {
		return
	}
	if payload == nil {
		l.Info(event)
		return
	}
	l.Info(event, zap.Any("payload", payload))
}

// Logger returns a logr view over the trace log. It discards everything while
// tracing is disabled so ordinary runs never create the log file.
func Logger() logr.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled {
		return logr.Discard()
	}
	l := current()
	if l == nil {
		return logr.Discard()
	}
	return zapr.NewLogger(l)
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Close flushes and releases the log file. Later writes reopen it.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// current lazily opens the log file; callers hold mu.
func current() *zap.Logger {
	if logger != nil {
		return logger
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return nil
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.MessageKey = "event"
	encoderCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(f), zapcore.DebugLevel)
	logFile = f
	logger = zap.New(core)
	return logger
}
