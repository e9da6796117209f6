package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobportal/jobportal-backend/internal/dto"
	"github.com/jobportal/jobportal-backend/internal/models"
	"github.com/jobportal/jobportal-backend/internal/store"
)

var ErrJobNotFound = errors.New("job not found")

// EmployerService covers job CRUD for the owning employer. Every lookup
// combines the job id with the caller's id; a job owned by someone else
// reads as not found.
type EmployerService struct {
	jobs store.JobStore
	apps store.ApplicationStore
}

func NewEmployerService(jobs store.JobStore, apps store.ApplicationStore) *EmployerService {
	return &EmployerService{jobs: jobs, apps: apps}
}

func (s *EmployerService) CreateJob(employerID uuid.UUID, req *dto.JobRequest) (*models.Job, error) {
	if req.Title == "" || req.Company == "" || req.Location == "" || req.JobType == "" || req.Description == "" {
		return nil, ErrMissingFields
	}

	job := models.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		JobType:     req.JobType,
		SalaryRange: req.SalaryRange,
		Description: req.Description,
		PostedByID:  employerID,
	}

	if err := s.jobs.Create(&job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &job, nil
}

func (s *EmployerService) ListJobs(employerID uuid.UUID) ([]models.Job, error) {
	return s.jobs.ListByEmployer(employerID)
}

func (s *EmployerService) GetJob(employerID, jobID uuid.UUID) (*models.Job, error) {
	job, err := s.jobs.FindOwned(jobID, employerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// UpdateJob overwrites only the fields present in the request; an
// omitted field keeps its stored value, so a partial body can never
// blank out a job that creation would have rejected.
func (s *EmployerService) UpdateJob(employerID, jobID uuid.UUID, req *dto.JobRequest) (*models.Job, error) {
	job, err := s.GetJob(employerID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		job.Title = req.Title
	}
	if req.Company != "" {
		job.Company = req.Company
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.JobType != "" {
		job.JobType = req.JobType
	}
	if req.SalaryRange != "" {
		job.SalaryRange = req.SalaryRange
	}
	if req.Description != "" {
		job.Description = req.Description
	}

	if err := s.jobs.Save(job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

func (s *EmployerService) DeleteJob(employerID, jobID uuid.UUID) error {
	deleted, err := s.jobs.DeleteOwned(jobID, employerID)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if !deleted {
		return ErrJobNotFound
	}
	return nil
}

// Applicants lists the applications for one of the employer's own jobs,
// joined with applicant display fields.
func (s *EmployerService) Applicants(employerID, jobID uuid.UUID) ([]models.Application, error) {
	if _, err := s.GetJob(employerID, jobID); err != nil {
		return nil, err
	}
	return s.apps.ListByJob(jobID)
}
