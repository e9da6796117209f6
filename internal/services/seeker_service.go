package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jobportal/jobportal-backend/internal/dto"
	"github.com/jobportal/jobportal-backend/internal/models"
	"github.com/jobportal/jobportal-backend/internal/store"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrAlreadyApplied = errors.New("already applied to this job")
)

// SeekerService covers the job-seeker profile, job browsing (shared
// with the public listing) and applying.
type SeekerService struct {
	users store.UserStore
	jobs  store.JobStore
	apps  store.ApplicationStore
}

func NewSeekerService(users store.UserStore, jobs store.JobStore, apps store.ApplicationStore) *SeekerService {
	return &SeekerService{users: users, jobs: jobs, apps: apps}
}

// UpdateProfile mutates only the profile fields. Role, approval and
// blocked state are untouchable from here.
func (s *SeekerService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Bio = req.Bio
	user.Skills = datatypes.NewJSONSlice(req.Skills)
	user.ResumeURL = req.ResumeURL

	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

func (s *SeekerService) ListJobs(f dto.JobFilter) ([]models.Job, error) {
	return s.jobs.List(f)
}

func (s *SeekerService) GetJob(jobID uuid.UUID) (*models.Job, error) {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// Apply creates the single application allowed per (job, seeker) pair.
// The precedent read gives the friendly error; the unique index closes
// the race between two concurrent applies.
func (s *SeekerService) Apply(userID, jobID uuid.UUID) (*models.Application, error) {
	if _, err := s.jobs.FindByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	applied, err := s.apps.Exists(jobID, userID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, ErrAlreadyApplied
	}

	app := models.Application{
		JobID:  jobID,
		UserID: userID,
		Status: models.ApplicationStatusPending,
	}
	if err := s.apps.Create(&app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &app, nil
}

// AppliedJobs returns the caller's application history. Applications
// whose job has since been deleted are dropped here; the admin view
// keeps them.
func (s *SeekerService) AppliedJobs(userID uuid.UUID) ([]models.Application, error) {
	apps, err := s.apps.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	valid := make([]models.Application, 0, len(apps))
	for _, a := range apps {
		if a.Job != nil {
			valid = append(valid, a)
		}
	}
	return valid, nil
}
