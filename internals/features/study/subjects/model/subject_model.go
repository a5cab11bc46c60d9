package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Durasi estimasi default (menit) kalau user tidak mengisi.
const DefaultEstimatedDuration = 90

type SubjectModel struct {
	// PK & owner
	SubjectID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`
	SubjectUserID uuid.UUID `gorm:"type:uuid;not null;column:subject_user_id" json:"subject_user_id"`

	// Identitas & atribut
	SubjectName              string  `gorm:"type:varchar(120);not null;column:subject_name" json:"subject_name"`
	SubjectSlug              *string `gorm:"type:varchar(160);column:subject_slug" json:"subject_slug,omitempty"`
	SubjectPriority          int     `gorm:"not null;default:1;column:subject_priority" json:"subject_priority"`
	SubjectEstimatedDuration int     `gorm:"not null;default:90;column:subject_estimated_duration" json:"subject_estimated_duration"`
	SubjectDifficulty        string  `gorm:"type:varchar(10);not null;default:'medium';column:subject_difficulty" json:"subject_difficulty"`
	SubjectColor             string  `gorm:"type:varchar(20);not null;default:'#4F46E5';column:subject_color" json:"subject_color"`

	// Audit
	SubjectCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:subject_updated_at" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
