package project

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store handles project metadata persistence
type Store struct {
	db *sql.DB
}

// NewStore creates/opens the project metadata database
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS projects (
		name TEXT PRIMARY KEY,
		path TEXT NOT NULL,
		template TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		last_commit_at DATETIME,
		last_backup_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_projects_template ON projects(template);
	CREATE INDEX IF NOT EXISTS idx_projects_created ON projects(created_at);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		project TEXT,
		action TEXT NOT NULL,
		success BOOLEAN
	);

	CREATE INDEX IF NOT EXISTS idx_events_action ON events(action);
	CREATE INDEX IF NOT EXISTS idx_events_time ON events(timestamp);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveProject inserts or replaces a project record
func (s *Store) SaveProject(r Record) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	query := `
	INSERT OR REPLACE INTO projects (name, path, template, created_at, last_commit_at, last_backup_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query, r.Name, r.Path, r.Template, r.CreatedAt, r.LastCommit, r.LastBackup)
	return err
}

// GetProject returns a project record by name
func (s *Store) GetProject(name string) (*Record, error) {
	query := `SELECT name, path, template, created_at, last_commit_at, last_backup_at FROM projects WHERE name = ?`

	var r Record
	var lastCommit, lastBackup sql.NullTime

	err := s.db.QueryRow(query, name).Scan(&r.Name, &r.Path, &r.Template, &r.CreatedAt, &lastCommit, &lastBackup)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if lastCommit.Valid {
		r.LastCommit = &lastCommit.Time
	}
	if lastBackup.Valid {
		r.LastBackup = &lastBackup.Time
	}

	return &r, nil
}

// ListProjects returns all project records, most recent first
func (s *Store) ListProjects() ([]Record, error) {
	query := `SELECT name, path, template, created_at, last_commit_at, last_backup_at FROM projects ORDER BY created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var lastCommit, lastBackup sql.NullTime

		if err := rows.Scan(&r.Name, &r.Path, &r.Template, &r.CreatedAt, &lastCommit, &lastBackup); err != nil {
			return nil, err
		}

		if lastCommit.Valid {
			r.LastCommit = &lastCommit.Time
		}
		if lastBackup.Valid {
			r.LastBackup = &lastBackup.Time
		}

		records = append(records, r)
	}

	return records, rows.Err()
}

// RecordEvent saves one action event
func (s *Store) RecordEvent(project, action string, success bool) error {
	_, err := s.db.Exec(
		`INSERT INTO events (timestamp, project, action, success) VALUES (?, ?, ?, ?)`,
		time.Now(), project, action, success,
	)
	return err
}

// TouchCommit updates a project's last commit time and records the event
func (s *Store) TouchCommit(name string) error {
	if _, err := s.db.Exec(`UPDATE projects SET last_commit_at = ? WHERE name = ?`, time.Now(), name); err != nil {
		return err
	}
	return s.RecordEvent(name, "commit", true)
}

// TouchBackup updates a project's last backup time and records the event
func (s *Store) TouchBackup(name string) error {
	if _, err := s.db.Exec(`UPDATE projects SET last_backup_at = ? WHERE name = ?`, time.Now(), name); err != nil {
		return err
	}
	return s.RecordEvent(name, "backup", true)
}

// GetStats returns activity statistics for the last N days
func (s *Store) GetStats(days int) (Stats, error) {
	since := time.Now().AddDate(0, 0, -days)

	stats := Stats{}

	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM projects WHERE created_at >= ?
	`, since).Scan(&stats.ProjectsCreated)
	if err != nil {
		return stats, err
	}

	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM events WHERE action = 'commit' AND timestamp >= ?
	`, since).Scan(&stats.Commits)
	if err != nil {
		return stats, err
	}

	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM events WHERE action = 'backup' AND timestamp >= ?
	`, since).Scan(&stats.Backups)
	if err != nil {
		return stats, err
	}

	total := 0
	successful := 0
	err = s.db.QueryRow(`
		SELECT COUNT(*), COUNT(CASE WHEN success = 1 THEN 1 END) FROM events WHERE timestamp >= ?
	`, since).Scan(&total, &successful)
	if err != nil {
		return stats, err
	}
	if total > 0 {
		stats.SuccessRate = float64(successful) / float64(total) * 100
	}

	stats.TopTemplates, err = s.getTopTemplates(since)
	if err != nil {
		return stats, err
	}

	return stats, nil
}

func (s *Store) getTopTemplates(since time.Time) ([]TemplateStat, error) {
	query := `
		SELECT template, COUNT(*) as count
		FROM projects WHERE template != '' AND created_at >= ?
		GROUP BY template ORDER BY count DESC LIMIT 5
	`

	rows, err := s.db.Query(query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []TemplateStat
	for rows.Next() {
		var ts TemplateStat
		if err := rows.Scan(&ts.TemplateName, &ts.Count); err != nil {
			return nil, err
		}
		templates = append(templates, ts)
	}

	return templates, rows.Err()
}

// DeleteOldEvents removes events older than the specified duration
func (s *Store) DeleteOldEvents(olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	_, err := s.db.Exec(`DELETE FROM events WHERE timestamp < ?`, cutoff)
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
