package storage

import (
	"database/sql"
	"fmt"
	"net"
	"regexp"
	"time"

	"caselists/internal/config"
	"caselists/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/rotisserie/eris"
)

var validDatabaseName = regexp.MustCompile(`^[A-Za-z0-9_]{1,64}$`)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS caselist_runs (
		run_id VARCHAR(32) NOT NULL PRIMARY KEY,
		build_dir TEXT NOT NULL,
		build_type VARCHAR(64) NOT NULL,
		target VARCHAR(64) NOT NULL,
		dest_dir TEXT NOT NULL,
		total INT NOT NULL,
		succeeded INT NOT NULL,
		failed INT NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		created_at VARCHAR(40) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS caselist_results (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		run_id VARCHAR(32) NOT NULL,
		module VARCHAR(64) NOT NULL,
		api VARCHAR(16) NOT NULL,
		type VARCHAR(8) NOT NULL,
		source_path TEXT NOT NULL,
		dest_path TEXT NOT NULL,
		bytes BIGINT NOT NULL,
		cases INT NOT NULL,
		sha256 CHAR(64) NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		success BOOL NOT NULL,
		error TEXT NOT NULL,
		INDEX idx_caselist_results_run (run_id)
	)`,
}

// MySQLStorage keeps every run manifest in a MySQL database
type MySQLStorage struct {
	cfg *config.Config
}

// NewMySQLStorage creates a new MySQLStorage
func NewMySQLStorage(cfg *config.Config) *MySQLStorage {
	return &MySQLStorage{cfg: cfg}
}

// DSN returns the driver DSN. withDatabase selects the configured database.
func (s *MySQLStorage) DSN(withDatabase bool) string {
	db := s.cfg.Database
	c := mysql.NewConfig()
	c.User = db.User
	c.Passwd = db.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(db.Host, db.Port)
	if withDatabase {
		c.DBName = db.Name
	}
	return c.FormatDSN()
}

// open connects to the server, creates the database and tables when missing
// and returns a handle on the configured database
func (s *MySQLStorage) open() (*sql.DB, error) {
	name := s.cfg.Database.Name
	if !validDatabaseName.MatchString(name) {
		return nil, eris.Errorf("invalid database name: %s", name)
	}

	server, err := sql.Open("mysql", s.DSN(false))
	if err != nil {
		return nil, eris.Wrap(err, "failed to connect to database server")
	}
	defer server.Close()

	if err := server.Ping(); err != nil {
		return nil, eris.Wrap(err, "failed to ping database server")
	}
	if _, err := server.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", name)); err != nil {
		return nil, eris.Wrapf(err, "failed to create database %s", name)
	}

	db, err := sql.Open("mysql", s.DSN(true))
	if err != nil {
		return nil, eris.Wrapf(err, "failed to open database %s", name)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, eris.Wrap(err, "failed to create tables")
		}
	}
	return db, nil
}

// Save inserts the run and its results in one transaction
func (s *MySQLStorage) Save(manifest *domain.RunManifest) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return eris.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	m := manifest.Meta
	_, err = tx.Exec(
		`INSERT INTO caselist_runs (run_id, build_dir, build_type, target, dest_dir, total, succeeded, failed, duration_seconds, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.RunID, m.BuildDir, m.BuildType, m.Target, m.DestDir, m.Total, m.Succeeded, m.Failed, m.DurationSeconds, m.Timestamp,
	)
	if err != nil {
		return eris.Wrapf(err, "failed to insert run %s", m.RunID)
	}

	for _, r := range manifest.Results {
		_, err = tx.Exec(
			`INSERT INTO caselist_results (run_id, module, api, type, source_path, dest_path, bytes, cases, sha256, duration_seconds, success, error)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.RunID, r.Module, r.API, string(r.Type), r.SourcePath, r.DestPath, r.Bytes, r.Cases, r.SHA256, r.DurationSeconds, r.Success, r.Error,
		)
		if err != nil {
			return eris.Wrapf(err, "failed to insert result for %s", r.Module)
		}
	}

	if err := tx.Commit(); err != nil {
		return eris.Wrap(err, "failed to commit run")
	}
	return nil
}

// Load returns the most recent run
func (s *MySQLStorage) Load() (*domain.RunManifest, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var manifest domain.RunManifest
	m := &manifest.Meta
	err = db.QueryRow(
		`SELECT run_id, build_dir, build_type, target, dest_dir, total, succeeded, failed, duration_seconds, created_at
		 FROM caselist_runs ORDER BY run_id DESC LIMIT 1`,
	).Scan(&m.RunID, &m.BuildDir, &m.BuildType, &m.Target, &m.DestDir, &m.Total, &m.Succeeded, &m.Failed, &m.DurationSeconds, &m.Timestamp)
	if err != nil {
		if eris.Is(err, sql.ErrNoRows) {
			return nil, eris.New("no runs recorded")
		}
		return nil, eris.Wrap(err, "failed to load last run")
	}
	m.Duration = time.Duration(m.DurationSeconds * float64(time.Second)).String()

	rows, err := db.Query(
		`SELECT module, api, type, source_path, dest_path, bytes, cases, sha256, duration_seconds, success, error
		 FROM caselist_results WHERE run_id = ? ORDER BY id`, m.RunID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to load results of run %s", m.RunID)
	}
	defer rows.Close()

	for rows.Next() {
		var r domain.GenerationResult
		var caseListType string
		if err := rows.Scan(&r.Module, &r.API, &caseListType, &r.SourcePath, &r.DestPath, &r.Bytes, &r.Cases, &r.SHA256, &r.DurationSeconds, &r.Success, &r.Error); err != nil {
			return nil, eris.Wrap(err, "failed to read result row")
		}
		r.Type = domain.CaseListType(caseListType)
		manifest.Results = append(manifest.Results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "failed to read results")
	}
	return &manifest, nil
}
