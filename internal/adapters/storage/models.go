package storage

import "time"

// ComparisonRunModel is the GORM model for the comparison_runs table
type ComparisonRunModel struct {
	Branch      string    `gorm:"not null;index:idx_branch"`
	CreatedAt   time.Time
	ID          string    `gorm:"primaryKey"`
	Kind        string    `gorm:"not null;check:kind IN ('commits','files')"`
	RanAt       time.Time `gorm:"not null;index:idx_ran_at"`
	RepoPath    string    `gorm:"not null;default:''"`
	ResultCount int       `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (ComparisonRunModel) TableName() string { return "comparison_runs" }
