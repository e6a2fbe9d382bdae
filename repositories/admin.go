package repositories

import (
	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/models"
)

// AdminRepository handles database operations for the separate admin store
type AdminRepository struct{}

// NewAdminRepository creates a new admin repository instance
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

// FindByEmail retrieves an admin by email
func (r *AdminRepository) FindByEmail(email string) (models.Admin, error) {
	var admin models.Admin
	result := database.DB.Where("email = ?", email).First(&admin)
	return admin, result.Error
}

// FindByID retrieves an admin by its AdminID
func (r *AdminRepository) FindByID(id string) (models.Admin, error) {
	var admin models.Admin
	result := database.DB.First(&admin, "admin_id = ?", id)
	return admin, result.Error
}

// Count returns the number of admin accounts
func (r *AdminRepository) Count() (int64, error) {
	var count int64
	err := database.DB.Model(&models.Admin{}).Count(&count).Error
	return count, err
}
