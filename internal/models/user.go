package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Role is the closed set of account roles. A role is assigned at
// registration and there is no code path that changes it afterwards.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleEmployer  Role = "employer"
	RoleJobSeeker Role = "jobseeker"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployer, RoleJobSeeker:
		return true
	}
	return false
}

// User is the account record for all three roles. Bio, Skills and
// ResumeURL are only meaningful for job seekers; IsApproved only for
// employers (admins and seekers are approved at creation).
type User struct {
	ID         uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string                      `gorm:"size:255;not null" json:"name"`
	Email      string                      `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password   string                      `gorm:"not null" json:"-"`
	Role       Role                        `gorm:"size:20;not null" json:"role"`
	IsApproved bool                        `gorm:"not null;default:false" json:"isApproved"`
	IsBlocked  bool                        `gorm:"not null;default:false" json:"isBlocked"`
	Bio        string                      `json:"bio"`
	Skills     datatypes.JSONSlice[string] `json:"skills"`
	ResumeURL  string                      `gorm:"size:512" json:"resumeUrl"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}
