package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/teamtrack-simple/config"
	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/models"
	"github.com/teamtrack-simple/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register creates a new plain user account
func Register(req dto.RegisterRequest) (*models.User, error) {
	// Check if email already exists in either account store
	var existingUser models.User
	result := database.DB.Where("email = ?", req.Email).First(&existingUser)
	if result.RowsAffected > 0 {
		return nil, fmt.Errorf("email %w", ErrConflict)
	}
	var existingAdmin models.Admin
	result = database.DB.Where("email = ?", req.Email).First(&existingAdmin)
	if result.RowsAffected > 0 {
		return nil, fmt.Errorf("email %w", ErrConflict)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		UserType: models.UserTypeUser,
	}

	// Mint the id and save inside one transaction
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := repositories.NextID(tx, "User")
		if err != nil {
			return err
		}
		user.UserID = id
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUser retrieves an account by ID, falling back to the admin store for
// admin ids so /auth/me works for every token.
func GetUser(id string) (*models.User, error) {
	var user models.User
	result := database.DB.Where("user_id = ?", id).First(&user)
	if result.Error == nil {
		return &user, nil
	}

	var admin models.Admin
	if err := database.DB.Where("admin_id = ?", id).First(&admin).Error; err != nil {
		return nil, result.Error
	}
	return &models.User{
		UserID:   admin.AdminID,
		Name:     admin.Name,
		Email:    admin.Email,
		UserType: models.UserTypeAdmin,
	}, nil
}

// Login authenticates a user or admin and returns a token. The admin store
// is checked when the email matches no user account.
func Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	result := database.DB.Where("email = ?", req.Email).First(&user)
	if result.Error != nil {
		// Fall back to the admin store
		var admin models.Admin
		if err := database.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
			return nil, errors.New("invalid email or password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
			return nil, errors.New("invalid email or password")
		}

		token, expiresAt, err := GenerateToken(admin.AdminID, admin.Email, string(models.UserTypeAdmin))
		if err != nil {
			return nil, err
		}
		return &dto.AuthResponse{
			Token: token,
			User: models.User{
				UserID:   admin.AdminID,
				Name:     admin.Name,
				Email:    admin.Email,
				UserType: models.UserTypeAdmin,
			},
			ExpiresAt: expiresAt,
		}, nil
	}

	// Check password
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password))
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	// Generate token
	token, expiresAt, err := GenerateToken(user.UserID, user.Email, string(user.UserType))
	if err != nil {
		return nil, err
	}

	// Clear password from response
	responseUser := user
	responseUser.Password = ""

	return &dto.AuthResponse{
		Token:     token,
		User:      responseUser,
		ExpiresAt: expiresAt,
	}, nil
}

// GenerateToken generates a new JWT token for an account
func GenerateToken(userID, email, userType string) (string, time.Time, error) {
	// Get secret key from environment
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	// Token expires in 24 hours
	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		UserID:   userID,
		Email:    email,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// EnsureBootstrapAdmin seeds the admin store from ADMIN_EMAIL/ADMIN_PASSWORD
// when no admin account exists yet.
func EnsureBootstrapAdmin() error {
	email := config.GetEnv("ADMIN_EMAIL", "")
	password := config.GetEnv("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	count, err := repositories.NewAdminRepository().Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Name:              "Administrator",
		Email:             email,
		Password:          string(hashedPassword),
		VerificationToken: uuid.NewString(),
		ResetToken:        uuid.NewString(),
		Verified:          true,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := repositories.NextID(tx, "Admin")
		if err != nil {
			return err
		}
		admin.AdminID = id
		return tx.Create(&admin).Error
	})
	if err != nil {
		return err
	}

	log.Printf("✅ Seeded bootstrap admin %s", admin.AdminID)
	return nil
}
