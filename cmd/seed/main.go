// Command seed creates the initial admin account if none exists yet.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jobportal/jobportal-backend/internal/config"
	"github.com/jobportal/jobportal-backend/internal/database"
	"github.com/jobportal/jobportal-backend/internal/logging"
	"github.com/jobportal/jobportal-backend/internal/models"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()

	if cfg.SeedAdminPassword == "" {
		slog.Error("SEED_ADMIN_PASSWORD environment variable is required")
		os.Exit(1)
	}

	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	var existing models.User
	err := database.DB.Where("role = ?", models.RoleAdmin).First(&existing).Error
	if err == nil {
		slog.Info("admin user already exists", "email", existing.Email)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Error("admin lookup failed", "error", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("password hash failed", "error", err)
		os.Exit(1)
	}

	admin := models.User{
		Name:       cfg.SeedAdminName,
		Email:      cfg.SeedAdminEmail,
		Password:   string(hash),
		Role:       models.RoleAdmin,
		IsApproved: true,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		slog.Error("admin creation failed", "error", err)
		os.Exit(1)
	}

	slog.Info("admin user created", "email", admin.Email)
}
