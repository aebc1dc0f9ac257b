package project

import "time"

// Record is one tracked project.
type Record struct {
	Name       string
	Path       string
	Template   string
	CreatedAt  time.Time
	LastCommit *time.Time
	LastBackup *time.Time
}

// Event is one recorded action against a project.
type Event struct {
	ID        int64
	Timestamp time.Time
	Project   string
	Action    string
	Success   bool
}

// Stats summarizes tracked activity over a time window.
type Stats struct {
	ProjectsCreated int
	Commits         int
	Backups         int
	SuccessRate     float64
	TopTemplates    []TemplateStat
}

type TemplateStat struct {
	TemplateName string
	Count        int
}
