package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"alignbench/internal/benchmark"
)

// Schema shared by both backends. DOUBLE PRECISION maps to REAL affinity in
// SQLite and to float8 in Postgres.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		name TEXT PRIMARY KEY,
		row_count INTEGER NOT NULL,
		has_crumbs BOOLEAN NOT NULL,
		created_at TIMESTAMP NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS records (
		run_name TEXT NOT NULL,
		row_index INTEGER NOT NULL,
		readname TEXT NOT NULL,
		algo TEXT NOT NULL,
		algo_code INTEGER NOT NULL,
		pushed DOUBLE PRECISION,
		popped DOUBLE PRECISION,
		explored_states DOUBLE PRECISION,
		len DOUBLE PRECISION,
		t_map DOUBLE PRECISION,
		cost DOUBLE PRECISION,
		crumbs DOUBLE PRECISION,
		pushed_popped DOUBLE PRECISION,
		explored_per_bp DOUBLE PRECISION,
		t_map_per_bp DOUBLE PRECISION,
		crumbs_per_bp DOUBLE PRECISION,
		error_rate DOUBLE PRECISION,
		extra TEXT,
		PRIMARY KEY (run_name, row_index)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_records_readname ON records(run_name, readname);`,
}

// sqlStore implements Store over database/sql. rebind rewrites '?'
// placeholders for drivers that need another style.
type sqlStore struct {
	db     *sql.DB
	rebind func(string) string
}

func (s *sqlStore) migrate() error {
	for _, q := range schema {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (s *sqlStore) Close() error {
	return s.db.Close()
}

func (s *sqlStore) q(query string) string {
	if s.rebind == nil {
		return query
	}
	return s.rebind(query)
}

func (s *sqlStore) SaveRun(name string, records []benchmark.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteRun(tx, s.q, name); err != nil {
		return err
	}

	hasCrumbs := len(records) > 0 && records[0].HasCrumbs
	if _, err := tx.Exec(s.q(`INSERT INTO runs (name, row_count, has_crumbs, created_at) VALUES (?, ?, ?, ?)`),
		name, len(records), hasCrumbs, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert run %s: %w", name, err)
	}

	stmt, err := tx.Prepare(s.q(`INSERT INTO records (
		run_name, row_index, readname, algo, algo_code,
		pushed, popped, explored_states, len, t_map, cost, crumbs,
		pushed_popped, explored_per_bp, t_map_per_bp, crumbs_per_bp, error_rate, extra
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		var extra sql.NullString
		if len(r.Extra) > 0 {
			data, err := json.Marshal(r.Extra)
			if err != nil {
				return fmt.Errorf("failed to marshal extra columns: %w", err)
			}
			extra = sql.NullString{String: string(data), Valid: true}
		}
		crumbs, crumbsPerBP := sql.NullFloat64{}, sql.NullFloat64{}
		if r.HasCrumbs {
			crumbs, crumbsPerBP = nullFloat(r.Crumbs), nullFloat(r.CrumbsPerBP)
		}
		if _, err := stmt.Exec(
			name, i, r.ReadName, r.Algo, r.AlgoCode,
			nullFloat(r.Pushed), nullFloat(r.Popped), nullFloat(r.ExploredStates), nullFloat(r.Len),
			nullFloat(r.TMap), nullFloat(r.Cost), crumbs,
			nullFloat(r.PushedPopped), nullFloat(r.ExploredPerBP), nullFloat(r.TMapPerBP),
			crumbsPerBP, nullFloat(r.ErrorRate), extra,
		); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func (s *sqlStore) LoadRun(name string) ([]benchmark.Record, error) {
	var hasCrumbs bool
	err := s.db.QueryRow(s.q(`SELECT has_crumbs FROM runs WHERE name = ?`), name).Scan(&hasCrumbs)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(s.q(`SELECT readname, algo, algo_code,
		pushed, popped, explored_states, len, t_map, cost, crumbs,
		pushed_popped, explored_per_bp, t_map_per_bp, crumbs_per_bp, error_rate, extra
		FROM records WHERE run_name = ? ORDER BY row_index`), name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []benchmark.Record
	for rows.Next() {
		var r benchmark.Record
		var f [12]sql.NullFloat64
		var extra sql.NullString
		if err := rows.Scan(&r.ReadName, &r.Algo, &r.AlgoCode,
			&f[0], &f[1], &f[2], &f[3], &f[4], &f[5], &f[6],
			&f[7], &f[8], &f[9], &f[10], &f[11], &extra); err != nil {
			return nil, err
		}
		r.Pushed, r.Popped, r.ExploredStates, r.Len = fromNull(f[0]), fromNull(f[1]), fromNull(f[2]), fromNull(f[3])
		r.TMap, r.Cost = fromNull(f[4]), fromNull(f[5])
		r.PushedPopped, r.ExploredPerBP, r.TMapPerBP = fromNull(f[7]), fromNull(f[8]), fromNull(f[9])
		r.ErrorRate = fromNull(f[11])
		r.HasCrumbs = hasCrumbs
		if hasCrumbs {
			r.Crumbs, r.CrumbsPerBP = fromNull(f[6]), fromNull(f[10])
		}
		if extra.Valid {
			if err := json.Unmarshal([]byte(extra.String), &r.Extra); err != nil {
				return nil, fmt.Errorf("failed to unmarshal extra columns: %w", err)
			}
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *sqlStore) ListRuns() ([]RunInfo, error) {
	rows, err := s.db.Query(`SELECT name, row_count, has_crumbs, created_at FROM runs ORDER BY created_at, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var info RunInfo
		if err := rows.Scan(&info.Name, &info.Rows, &info.HasCrumbs, &info.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, info)
	}
	return runs, rows.Err()
}

func (s *sqlStore) DeleteRun(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow(s.q(`SELECT COUNT(*) FROM runs WHERE name = ?`), name).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, name)
	}
	if err := deleteRun(tx, s.q, name); err != nil {
		return err
	}
	return tx.Commit()
}

func deleteRun(tx *sql.Tx, q func(string) string, name string) error {
	if _, err := tx.Exec(q(`DELETE FROM records WHERE run_name = ?`), name); err != nil {
		return fmt.Errorf("failed to delete records of %s: %w", name, err)
	}
	if _, err := tx.Exec(q(`DELETE FROM runs WHERE name = ?`), name); err != nil {
		return fmt.Errorf("failed to delete run %s: %w", name, err)
	}
	return nil
}

// NaN has no portable SQL representation, so it is stored as NULL.
func nullFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: !math.IsNaN(v)}
}

func fromNull(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

// dollarPlaceholders rewrites '?' placeholders to $1, $2, ...
func dollarPlaceholders(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
