package rexshim

import (
	"os"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	loggerMu sync.RWMutex
	logger   = level.NewFilter(log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)), level.AllowWarn())
)

// SetLogger replaces the package logger, it is safe to call while a Shim initializes.
func SetLogger(l log.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func currentLogger() log.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

type (
	// Opener produces the Module holding the original exports.
	Opener func() (Module, error)
	// Shim owns a lazily loaded Module and its resolved Table.
	//
	// Loading and resolving each run at most once, concurrent first callers wait for the single run
	// and observe the same result. A failure is permanent, later calls never retry.
	Shim struct {
		module func() (Module, error)
		table  func() (*Table, error)
		abort  func(error)
	}
)

// NewShim create a Shim that loads its Module with open on first use.
func NewShim(open Opener) *Shim {
	s := &Shim{abort: terminate}
	s.module = sync.OnceValues(func() (m Module, err error) {
		level.Debug(currentLogger()).Log("msg", "loading original library")
		if m, err = open(); err != nil {
			return nil, err
		}
		if l, ok := m.(*Library); ok {
			level.Debug(currentLogger()).Log("msg", "loaded original library", "path", l.Path())
		}
		return
	})
	s.table = sync.OnceValues(func() (*Table, error) {
		m, err := s.module()
		if err != nil {
			return nil, err
		}
		t, err := Resolve(m)
		if err != nil {
			return nil, err
		}
		level.Debug(currentLogger()).Log("msg", "resolved original exports", "count", len(t.addrs))
		return t, nil
	})
	return s
}

// Init loads and resolves if not done yet and reports the outcome without terminating.
func (s *Shim) Init() (*Table, error) {
	return s.table()
}

// Table returns the resolved Table, terminating the process when the original library is unusable.
func (s *Shim) Table() *Table {
	t, err := s.table()
	if err != nil {
		s.abort(err)
	}
	return t
}

// Module returns the loaded Module, terminating the process when it can not be loaded.
func (s *Shim) Module() Module {
	m, err := s.module()
	if err != nil {
		s.abort(err)
	}
	return m
}

func terminate(err error) {
	level.Error(currentLogger()).Log("msg", "original library unusable", "err", err)
	os.Exit(2)
}

var std = NewShim(OpenOriginal)

// Functions returns the process-wide Table over the original library located by Locate.
func Functions() *Table {
	return std.Table()
}

// Initialize eagerly loads the process-wide original library and reports failures instead of terminating.
func Initialize() error {
	_, err := std.Init()
	return err
}
