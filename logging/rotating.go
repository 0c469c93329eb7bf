package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

const defaultMaxFileSize = 100 * 1024 * 1024

// RotatingLogger is an io.Writer that appends to a weekly log file
// (api-2025-W35.log), starting a numbered continuation file once the active
// one reaches maxSize. Files older than the retention window are swept away.
type RotatingLogger struct {
	dir       string
	retention time.Duration
	maxSize   int64

	mu   sync.Mutex
	file *os.File
	week string
	size int64

	ctx         context.Context
	cancel      context.CancelFunc
	sweeping    bool
	sweeperDone chan struct{}
}

// NewRotatingLogger creates a rotating logger with the default size limit.
func NewRotatingLogger(dir string, retentionWeeks int) *RotatingLogger {
	return NewRotatingLoggerWithSizeLimit(dir, retentionWeeks, defaultMaxFileSize)
}

// NewRotatingLoggerWithSizeLimit creates a rotating logger that starts a new
// file once the active one reaches maxSize bytes. A maxSize of 0 disables
// size rotation.
func NewRotatingLoggerWithSizeLimit(dir string, retentionWeeks int, maxSize int64) *RotatingLogger {
	ctx, cancel := context.WithCancel(context.Background())
	return &RotatingLogger{
		dir:         dir,
		retention:   time.Duration(retentionWeeks) * 7 * 24 * time.Hour,
		maxSize:     maxSize,
		ctx:         ctx,
		cancel:      cancel,
		sweeperDone: make(chan struct{}),
	}
}

// weekOf returns the ISO week label used in log file names, e.g. "2025-W35".
func weekOf(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// rotate closes the active file and opens the right one for week. The caller
// must hold mu.
func (rl *RotatingLogger) rotate(week string) error {
	if rl.file != nil {
		if err := rl.file.Close(); err != nil {
			// Stderr, not slog: the default logger may route back into this
			// writer and mu is held.
			fmt.Fprintf(os.Stderr, "failed to close log file during rotation: %v\n", err)
		}
	}

	sizeFull := rl.maxSize > 0 && rl.size >= rl.maxSize
	name, fresh := rl.targetFile(week, sizeFull)

	path := filepath.Join(rl.dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	rl.file = file
	rl.week = week
	if fresh {
		rl.size = 0
	} else if info, err := os.Stat(path); err == nil {
		rl.size = info.Size()
	}
	return nil
}

// targetFile picks the file name for week: the base weekly file while it has
// room, otherwise the latest numbered continuation with room, otherwise a
// fresh continuation. The second return value reports whether the size
// counter starts from zero.
func (rl *RotatingLogger) targetFile(week string, sizeFull bool) (string, bool) {
	base := fmt.Sprintf("api-%s.log", week)

	if !sizeFull {
		info, err := os.Stat(filepath.Join(rl.dir, base))
		if err != nil || rl.maxSize == 0 || info.Size() < rl.maxSize {
			return base, false
		}
	}

	num, path, size := rl.latestPart(week)
	if path != "" && size < rl.maxSize {
		return filepath.Base(path), false
	}
	return fmt.Sprintf("api-%s_%02d.log", week, num+1), true
}

var partPattern = regexp.MustCompile(`api-\d{4}-W\d{2}_(\d+)\.log$`)

// latestPart returns the highest continuation number for week along with
// that file's path and size.
func (rl *RotatingLogger) latestPart(week string) (int, string, int64) {
	matches, _ := filepath.Glob(filepath.Join(rl.dir, fmt.Sprintf("api-%s_*.log", week)))

	var best int
	var bestPath string
	var bestSize int64
	for _, path := range matches {
		m := partPattern.FindStringSubmatch(filepath.Base(path))
		if m == nil {
			continue
		}
		num, _ := strconv.Atoi(m[1])
		if num <= best {
			continue
		}
		best = num
		bestPath = path
		bestSize = 0
		if info, err := os.Stat(path); err == nil {
			bestSize = info.Size()
		}
	}
	return best, bestPath, bestSize
}

// Write appends p to the active log file, rotating first when the week
// changed or the write would push the file past the size limit.
func (rl *RotatingLogger) Write(p []byte) (int, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	week := weekOf(time.Now())
	rotateNow := rl.week != week
	if !rotateNow && rl.maxSize > 0 && rl.size+int64(len(p)) > rl.maxSize {
		rotateNow = true
		rl.size = rl.maxSize // force a numbered continuation file
	}
	if rotateNow {
		if err := rl.rotate(week); err != nil {
			return 0, err
		}
	}
	if rl.file == nil {
		return 0, fmt.Errorf("no log file available")
	}

	n, err := rl.file.Write(p)
	rl.size += int64(n)
	return n, err
}

// sweep removes log files whose modification time is past the retention
// window.
func (rl *RotatingLogger) sweep() error {
	entries, err := os.ReadDir(rl.dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	cutoff := time.Now().Add(-rl.retention)
	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "api-") || !strings.HasSuffix(name, ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(rl.dir, name)); err == nil {
			removed++
		}
	}
	if removed > 0 {
		slog.Info("Removed expired log files", "count", removed)
	}
	return nil
}

// startSweeper runs a retention sweep every interval until Close is called.
func (rl *RotatingLogger) startSweeper(interval time.Duration) {
	rl.sweeping = true
	go func() {
		defer close(rl.sweeperDone)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-rl.ctx.Done():
				return
			case <-ticker.C:
				if err := rl.sweep(); err != nil {
					slog.Warn("Retention sweep failed", "error", err)
				}
			}
		}
	}()
}

// Close stops the retention sweeper and closes the active log file.
func (rl *RotatingLogger) Close() error {
	rl.cancel()
	if rl.sweeping {
		select {
		case <-rl.sweeperDone:
		case <-time.After(5 * time.Second):
			slog.Warn("Retention sweeper did not stop in time")
		}
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.file != nil {
		return rl.file.Close()
	}
	return nil
}

// setupLoggerWithLevels builds the console+file logger: text on stdout, JSON
// in weekly rotating files. The returned rotating logger is nil when the log
// directory is unusable and everything falls back to the console.
func setupLoggerWithLevels(logDir string, consoleLevel, fileLevel slog.Level, retentionWeeks int, maxFileSize int64) (*slog.Logger, *RotatingLogger) {
	console := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: consoleLevel})

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger := slog.New(console)
		logger.Error("Failed to create logs directory", "error", err)
		return logger, nil
	}

	rotating := NewRotatingLoggerWithSizeLimit(logDir, retentionWeeks, maxFileSize)
	rotating.mu.Lock()
	err := rotating.rotate(weekOf(time.Now()))
	rotating.mu.Unlock()
	if err != nil {
		logger := slog.New(console)
		logger.Error("Failed to initialize rotating logger", "error", err)
		return logger, nil
	}

	rotating.startSweeper(24 * time.Hour)

	fileHandler := slog.NewJSONHandler(rotating, &slog.HandlerOptions{Level: fileLevel})
	return slog.New(&teeHandler{handlers: []slog.Handler{console, fileHandler}}), rotating
}

// teeHandler fans a record out to every handler whose level admits it.
type teeHandler struct {
	handlers []slog.Handler
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range t.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		next[i] = h.WithAttrs(attrs)
	}
	return &teeHandler{handlers: next}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		next[i] = h.WithGroup(name)
	}
	return &teeHandler{handlers: next}
}
