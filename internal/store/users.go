package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jobportal/jobportal-backend/internal/models"
)

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) Create(u *models.User) error {
	return s.db.Create(u).Error
}

func (s *GormUserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) Save(u *models.User) error {
	return s.db.Save(u).Error
}

func (s *GormUserStore) Delete(id uuid.UUID) error {
	return s.db.Delete(&models.User{}, "id = ?", id).Error
}

func (s *GormUserStore) ListPendingEmployers() ([]models.User, error) {
	users := []models.User{}
	err := s.db.
		Where("role = ? AND is_approved = false", models.RoleEmployer).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (s *GormUserStore) ListAll() ([]models.User, error) {
	users := []models.User{}
	err := s.db.Order("created_at DESC").Find(&users).Error
	return users, err
}
