package models

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posting owned by an employer account. PostedByID is set once
// at creation and never updated.
type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Company     string    `gorm:"size:255;not null" json:"company"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	JobType     string    `gorm:"size:50;not null" json:"jobType"`
	SalaryRange string    `gorm:"size:100" json:"salaryRange"`
	Description string    `gorm:"type:text;not null" json:"description"`
	PostedByID  uuid.UUID `gorm:"type:uuid;not null;index" json:"postedById"`
	PostedBy    *User     `gorm:"foreignKey:PostedByID" json:"postedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
