// Package store holds the persistence layer: one small interface per
// model with a GORM implementation. Services depend on the
// interfaces so business rules are testable against in-memory fakes.
// Absent rows surface as gorm.ErrRecordNotFound and unique-index
// violations as gorm.ErrDuplicatedKey; the services translate both.
package store

import (
	"github.com/google/uuid"

	"github.com/jobportal/jobportal-backend/internal/dto"
	"github.com/jobportal/jobportal-backend/internal/models"
)

type UserStore interface {
	Create(u *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	Save(u *models.User) error
	Delete(id uuid.UUID) error
	ListPendingEmployers() ([]models.User, error)
	ListAll() ([]models.User, error)
}

type JobStore interface {
	Create(j *models.Job) error
	// FindByID preloads the poster for public display.
	FindByID(id uuid.UUID) (*models.Job, error)
	// FindOwned looks a job up by id AND owner in one compound filter; a
	// job belonging to another employer is indistinguishable from an
	// absent one.
	FindOwned(id, employerID uuid.UUID) (*models.Job, error)
	Save(j *models.Job) error
	// DeleteOwned reports whether a row matched the compound filter.
	DeleteOwned(id, employerID uuid.UUID) (bool, error)
	ListByEmployer(employerID uuid.UUID) ([]models.Job, error)
	List(f dto.JobFilter) ([]models.Job, error)
}

type ApplicationStore interface {
	Create(a *models.Application) error
	Exists(jobID, userID uuid.UUID) (bool, error)
	// ListByUser preloads each application's job and its poster.
	ListByUser(userID uuid.UUID) ([]models.Application, error)
	// ListByJob preloads the applicant.
	ListByJob(jobID uuid.UUID) ([]models.Application, error)
	ListAll() ([]models.Application, error)
}
