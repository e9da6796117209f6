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

var (
	ErrEmployerNotFound = errors.New("employer not found")
	ErrNotEmployer      = errors.New("account is not an employer")
	ErrSelfBlock        = errors.New("cannot block yourself")
)

// AdminService is the oversight surface: employer approval lifecycle,
// user blocking and unrestricted read access to all records.
type AdminService struct {
	users store.UserStore
	jobs  store.JobStore
	apps  store.ApplicationStore
}

func NewAdminService(users store.UserStore, jobs store.JobStore, apps store.ApplicationStore) *AdminService {
	return &AdminService{users: users, jobs: jobs, apps: apps}
}

func (s *AdminService) PendingEmployers() ([]models.User, error) {
	return s.users.ListPendingEmployers()
}

// ApproveEmployer flips isApproved on; there is no operation turning it
// back off. Targets with any other role are rejected.
func (s *AdminService) ApproveEmployer(id uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerNotFound
		}
		return nil, err
	}
	if user.Role != models.RoleEmployer {
		return nil, ErrNotEmployer
	}

	user.IsApproved = true
	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("failed to approve employer: %w", err)
	}
	return user, nil
}

// RejectEmployer deletes the account outright; rejection is terminal.
func (s *AdminService) RejectEmployer(id uuid.UUID) error {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployerNotFound
		}
		return err
	}
	if user.Role != models.RoleEmployer {
		return ErrNotEmployer
	}

	if err := s.users.Delete(user.ID); err != nil {
		return fmt.Errorf("failed to reject employer: %w", err)
	}
	return nil
}

func (s *AdminService) AllJobs() ([]models.Job, error) {
	return s.jobs.List(dto.JobFilter{})
}

func (s *AdminService) AllApplications() ([]models.Application, error) {
	return s.apps.ListAll()
}

func (s *AdminService) AllUsers() ([]models.User, error) {
	return s.users.ListAll()
}

// ToggleBlock flips isBlocked on any account except the admin's own;
// self-blocking would lock the caller out.
func (s *AdminService) ToggleBlock(adminID, targetID uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.ID == adminID {
		return nil, ErrSelfBlock
	}

	user.IsBlocked = !user.IsBlocked
	if err := s.users.Save(user); err != nil {
		return nil, fmt.Errorf("failed to toggle block: %w", err)
	}
	return user, nil
}
