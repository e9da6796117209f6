package models

import (
	"time"

	"github.com/google/uuid"
)

const ApplicationStatusPending = "pending"

// Application links one job seeker to one job. The composite unique
// index makes duplicate applications a storage-level constraint, not
// just a pre-insert check. Jobs may be deleted after applications
// exist; the Job association then preloads as nil and seeker-facing
// views drop such orphaned rows while admin views keep them.
type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_user" json:"jobId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_user" json:"userId"`
	Status    string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	Job       *Job      `gorm:"foreignKey:JobID" json:"job,omitempty"`
	User      *User     `gorm:"foreignKey:UserID" json:"applicant,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
