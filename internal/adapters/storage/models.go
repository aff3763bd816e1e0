package storage

import "time"

// SessionModel is the GORM model for sessions table
type SessionModel struct {
	CreatedAt time.Time  `gorm:"not null"`
	EndedAt   *time.Time `gorm:"default:null"`
	ID        string     `gorm:"primaryKey"`
	StartedAt time.Time  `gorm:"not null;index:idx_sessions_started_at"`
	Subject   *string    `gorm:"default:null"`
	Synced    bool       `gorm:"not null;default:false;index:idx_sessions_synced"`
	UserID    *string    `gorm:"default:null"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// ReflectionModel is the GORM model for reflections table
type ReflectionModel struct {
	Completion      string    `gorm:"not null;default:'partial';check:completion IN ('complete','partial','none')"`
	CreatedAt       time.Time `gorm:"not null"`
	Difficulty      int       `gorm:"not null;default:3;check:difficulty BETWEEN 1 AND 5"`
	EfficiencyScore *float64  `gorm:"default:null"`
	ID              string    `gorm:"primaryKey"`
	SessionID       string    `gorm:"not null;index:idx_reflections_session_id"`
	TaskText        *string   `gorm:"default:null"`
	UserID          *string   `gorm:"default:null"`
}

// TableName specifies the table name for GORM
func (ReflectionModel) TableName() string { return "reflections" }
