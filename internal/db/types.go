package db

import (
	"errors"
	"time"

	"alignbench/internal/benchmark"
)

// ErrRunNotFound is returned when a named run does not exist.
var ErrRunNotFound = errors.New("run not found")

// RunInfo describes a stored run.
type RunInfo struct {
	Name      string    `json:"name"`
	Rows      int       `json:"rows"`
	HasCrumbs bool      `json:"has_crumbs"`
	CreatedAt time.Time `json:"created_at"`
}

// Store interface defines the methods for persistent storage of normalized
// benchmark runs.
type Store interface {
	Close() error
	// SaveRun stores records under name, replacing any previous run.
	SaveRun(name string, records []benchmark.Record) error
	LoadRun(name string) ([]benchmark.Record, error)
	ListRuns() ([]RunInfo, error)
	DeleteRun(name string) error
}
