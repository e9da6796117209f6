package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobportal/jobportal-backend/internal/models"
)

type GormApplicationStore struct {
	db *gorm.DB
}

func NewGormApplicationStore(db *gorm.DB) *GormApplicationStore {
	return &GormApplicationStore{db: db}
}

// Create relies on the (job_id, user_id) unique index: a concurrent
// duplicate apply comes back as gorm.ErrDuplicatedKey.
func (s *GormApplicationStore) Create(a *models.Application) error {
	return s.db.Create(a).Error
}

func (s *GormApplicationStore) Exists(jobID, userID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormApplicationStore) ListByUser(userID uuid.UUID) ([]models.Application, error) {
	apps := []models.Application{}
	err := s.db.
		Preload("Job").
		Preload("Job.PostedBy", posterDisplayFields).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (s *GormApplicationStore) ListByJob(jobID uuid.UUID) ([]models.Application, error) {
	apps := []models.Application{}
	err := s.db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "skills", "resume_url")
		}).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (s *GormApplicationStore) ListAll() ([]models.Application, error) {
	apps := []models.Application{}
	err := s.db.
		Preload("Job", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "company")
		}).
		Preload("User", posterDisplayFields).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}
