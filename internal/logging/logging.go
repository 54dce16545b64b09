// Package logging owns the process-wide slog logger. It starts in bootstrap
// mode (text to stderr) and is upgraded once configuration is available.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures the rotating JSON log file.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// Manager handles logger lifecycle including bootstrap-to-full mode transitions.
// Components should obtain a logger via Logger() and use it for all logging.
type Manager struct {
	handler *swapHandler
	logger  *slog.Logger
	file    *lumberjack.Logger
	level   *slog.LevelVar
	mu      sync.Mutex
}

// NewManager creates a logging manager in bootstrap mode.
// Bootstrap mode writes only to stderr using text format.
func NewManager() *Manager {
	level := new(slog.LevelVar)
	level.Set(DefaultLevel)

	opts := &slog.HandlerOptions{Level: level}
	handler := newSwapHandler(slog.NewTextHandler(os.Stderr, opts))

	return &Manager{
		handler: handler,
		logger:  slog.New(handler),
		level:   level,
	}
}

// Logger returns the current logger instance.
// The returned logger is stable across Upgrade calls.
func (m *Manager) Logger() *slog.Logger {
	return m.logger
}

// Upgrade switches to full mode: stderr text plus a rotating JSON file.
// Returns an error if the log directory cannot be created.
func (m *Manager) Upgrade(opts FileOptions, level slog.Level) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir := filepath.Dir(opts.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %q; %w", dir, err)
	}

	file := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}

	if m.file != nil {
		_ = m.file.Close()
	}
	m.file = file

	m.level.Set(level)
	handlerOpts := &slog.HandlerOptions{Level: m.level}

	m.handler.swap(slogmulti.Fanout(
		slog.NewTextHandler(os.Stderr, handlerOpts),
		slog.NewJSONHandler(file, handlerOpts),
	))

	return nil
}

// Close closes the log file, if any.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.file != nil {
		err := m.file.Close()
		m.file = nil
		return err
	}
	return nil
}

// swapHandler forwards to a handler that can be replaced atomically, so
// loggers handed out before Upgrade pick up the new destination.
type swapHandler struct {
	inner atomic.Pointer[slog.Handler]
}

func newSwapHandler(initial slog.Handler) *swapHandler {
	h := &swapHandler{}
	h.inner.Store(&initial)
	return h
}

func (h *swapHandler) swap(next slog.Handler) {
	h.inner.Store(&next)
}

func (h *swapHandler) current() slog.Handler {
	return *h.inner.Load()
}

func (h *swapHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.current().Enabled(ctx, level)
}

func (h *swapHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.current().Handle(ctx, r)
}

// WithAttrs and WithGroup bind to the handler current at call time.
func (h *swapHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &derivedHandler{parent: h, attrs: attrs}
}

func (h *swapHandler) WithGroup(name string) slog.Handler {
	return &derivedHandler{parent: h, group: name}
}

// derivedHandler replays attrs/group onto whatever handler the parent holds
// when a record is handled, so derived loggers survive an Upgrade.
type derivedHandler struct {
	parent *swapHandler
	attrs  []slog.Attr
	group  string
	prev   *derivedHandler
}

func (d *derivedHandler) resolve() slog.Handler {
	var base slog.Handler
	if d.prev != nil {
		base = d.prev.resolve()
	} else {
		base = d.parent.current()
	}
	if d.group != "" {
		return base.WithGroup(d.group)
	}
	return base.WithAttrs(d.attrs)
}

func (d *derivedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return d.parent.current().Enabled(ctx, level)
}

func (d *derivedHandler) Handle(ctx context.Context, r slog.Record) error {
	return d.resolve().Handle(ctx, r)
}

func (d *derivedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &derivedHandler{parent: d.parent, attrs: attrs, prev: d}
}

func (d *derivedHandler) WithGroup(name string) slog.Handler {
	return &derivedHandler{parent: d.parent, group: name, prev: d}
}
