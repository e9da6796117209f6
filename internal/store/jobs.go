package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobportal/jobportal-backend/internal/dto"
	"github.com/jobportal/jobportal-backend/internal/models"
)

type GormJobStore struct {
	db *gorm.DB
}

func NewGormJobStore(db *gorm.DB) *GormJobStore {
	return &GormJobStore{db: db}
}

func (s *GormJobStore) Create(j *models.Job) error {
	return s.db.Create(j).Error
}

func (s *GormJobStore) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := s.db.
		Preload("PostedBy", posterDisplayFields).
		First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *GormJobStore) FindOwned(id, employerID uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := s.db.
		Where("id = ? AND posted_by_id = ?", id, employerID).
		First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *GormJobStore) Save(j *models.Job) error {
	return s.db.Save(j).Error
}

func (s *GormJobStore) DeleteOwned(id, employerID uuid.UUID) (bool, error) {
	res := s.db.
		Where("id = ? AND posted_by_id = ?", id, employerID).
		Delete(&models.Job{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormJobStore) ListByEmployer(employerID uuid.UUID) ([]models.Job, error) {
	jobs := []models.Job{}
	err := s.db.
		Where("posted_by_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (s *GormJobStore) List(f dto.JobFilter) ([]models.Job, error) {
	q := s.db.Preload("PostedBy", posterDisplayFields)
	if f.Location != "" {
		q = q.Where("location ILIKE ?", "%"+f.Location+"%")
	}
	if f.JobType != "" {
		q = q.Where("job_type = ?", f.JobType)
	}

	// initialized so empty results serialize as [] rather than null
	jobs := []models.Job{}
	err := q.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// posterDisplayFields limits the joined poster record to public display
// columns.
func posterDisplayFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}
