package database

import (
	"fmt"
	"log"
	"os"

	"github.com/sahilchouksey/studystack-api/model"
	"github.com/sahilchouksey/studystack-api/utils/auth"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions. Registration only produces student
// accounts, so the privileged roles have to come from here.
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	if err := s.seedRoleUser(model.RoleAdmin, "ADMIN_EMAIL", "ADMIN_PASSWORD", "Admin"); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.seedRoleUser(model.RoleTeacher, "TEACHER_EMAIL", "TEACHER_PASSWORD", "Teacher"); err != nil {
		return fmt.Errorf("failed to seed teacher user: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// seedRoleUser creates a default account for the given role from env vars
func (s *Seeder) seedRoleUser(role model.Role, emailVar, passwordVar, name string) error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("role = ?", role).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Printf("⏭️  %s user already exists, skipping...", role)
		return nil
	}

	email := os.Getenv(emailVar)
	password := os.Getenv(passwordVar)

	if email == "" || password == "" {
		log.Printf("⚠️  %s and %s environment variables not set, skipping %s user creation", emailVar, passwordVar, role)
		return nil
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return err
	}

	log.Printf("✅ Created default %s user: %s", role, email)
	return nil
}
