package repositories

import (
	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its UserID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "user_id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}

// FindByIDs retrieves all users whose UserID is in the given set
func (r *UserRepository) FindByIDs(ids []string) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	result := database.DB.Where("user_id IN ?", ids).Find(&users)
	return users, result.Error
}

// FindByType retrieves all users with the given role tag
func (r *UserRepository) FindByType(userType models.UserType) ([]models.User, error) {
	var users []models.User
	result := database.DB.Where("user_type = ?", userType).Find(&users)
	return users, result.Error
}

// FindAll retrieves all users
func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	result := database.DB.Find(&users)
	return users, result.Error
}

// ExistsByEmail checks whether any user already uses the email
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Update persists changes to an existing user
func (r *UserRepository) Update(user models.User) error {
	return database.DB.Save(&user).Error
}
