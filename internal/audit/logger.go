package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	radio "github.com/caspianmerlin/aviation-radio"
	"github.com/caspianmerlin/aviation-radio/internal/config"
)

// FileName is the audit log file created inside the configured directory.
const FileName = "freqcheck-audit.jsonl"

// Result codes written to the code field.
const (
	CodeSuccess          = "SUCCESS"
	CodeInvalidFrequency = "INVALID_FREQUENCY"
	CodeNotEnoughParts   = "NOT_ENOUGH_PARTS"
	CodeParseError       = "PARSE_ERROR"
	CodeSpacingMismatch  = "SPACING_MISMATCH"
	CodeReserved         = "RESERVED"
	CodeError            = "ERROR"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp time.Time        `json:"ts"`
	Input     string           `json:"input"`
	Frequency *radio.Frequency `json:"frequency,omitempty"`
	Spacing   string           `json:"spacing,omitempty"`
	Outcome   string           `json:"outcome"`
	Code      string           `json:"code"`
	Reason    string           `json:"reason,omitempty"`
	Source    string           `json:"source,omitempty"`
}

type sourceKey struct{}

// WithSource tags checks made under ctx with a source label, e.g. "args" or "stdin".
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey{}, source)
}

// Logger appends audit entries. A nil or discarding Logger is safe to use.
type Logger struct {
	mu       sync.Mutex
	filePath string
	rotator  *lumberjack.Logger
	out      io.Writer
	now      func() time.Time
}

// NewLogger opens the audit log described by cfg. A disabled config yields
// a Logger that discards every entry.
func NewLogger(cfg config.AuditConfig) (*Logger, error) {
	if !cfg.Enabled {
		return Discard(), nil
	}

	// Ensure log directory exists
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	filePath := filepath.Join(cfg.Dir, FileName)
	rotator := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	return &Logger{
		filePath: filePath,
		rotator:  rotator,
		out:      rotator,
		now:      time.Now,
	}, nil
}

// Discard returns a Logger that writes nothing.
func Discard() *Logger {
	return &Logger{out: io.Discard, now: time.Now}
}

// LogCheck records the outcome of checking input. f is recorded only when
// input decoded to a frequency; err is the check's error, nil on success.
func (l *Logger) LogCheck(ctx context.Context, input string, f radio.Frequency, err error) {
	if l == nil {
		return
	}

	entry := Entry{
		Timestamp: l.now().UTC(),
		Input:     input,
		Outcome:   "accepted",
		Code:      CodeFromError(err),
	}
	if source, ok := ctx.Value(sourceKey{}).(string); ok {
		entry.Source = source
	}
	if !f.IsZero() {
		entry.Frequency = &f
		entry.Spacing = f.Spacing().String()
	}
	if err != nil {
		entry.Outcome = "rejected"
		entry.Reason = err.Error()
	}

	l.writeEntry(entry)
}

// writeEntry writes an audit entry. Failures go to stderr and never fail the check.
func (l *Logger) writeEntry(entry Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	jsonData, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal audit entry: %v\n", err)
		return
	}

	if _, err := l.out.Write(append(jsonData, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write audit entry: %v\n", err)
	}
}

// CodeFromError maps check errors to stable audit codes.
func CodeFromError(err error) string {
	var parseErr *radio.ParseError
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, radio.ErrInvalidFrequency):
		return CodeInvalidFrequency
	case errors.Is(err, radio.ErrNotEnoughParts):
		return CodeNotEnoughParts
	case errors.As(err, &parseErr):
		return CodeParseError
	case errors.Is(err, config.ErrSpacingMismatch):
		return CodeSpacingMismatch
	case errors.Is(err, config.ErrReserved):
		return CodeReserved
	default:
		return CodeError
	}
}

// Rotate starts a new audit file, keeping the old one as a backup.
func (l *Logger) Rotate() error {
	if l == nil || l.rotator == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.rotator.Rotate(); err != nil {
		return fmt.Errorf("failed to rotate audit log: %w", err)
	}
	return nil
}

// Close closes the audit log file.
func (l *Logger) Close() error {
	if l == nil || l.rotator == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rotator.Close()
}

// FilePath returns the path of the audit log file, empty when discarding.
func (l *Logger) FilePath() string {
	if l == nil {
		return ""
	}
	return l.filePath
}
