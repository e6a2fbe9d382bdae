package services

import (
	"fmt"
	"log"

	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/models"
	"github.com/teamtrack-simple/repositories"
	"github.com/teamtrack-simple/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminService handles account administration, including the bulk
// project-manager cascade deletion.
type AdminService struct {
	userRepo *repositories.UserRepository
}

// NewAdminService creates a new admin service instance
func NewAdminService() *AdminService {
	return &AdminService{
		userRepo: repositories.NewUserRepository(),
	}
}

// CreateProjectManager promotes an existing account to project manager, or
// creates a fresh one when the email is unknown.
func (s *AdminService) CreateProjectManager(req dto.CreateProjectManagerRequest) (models.User, error) {
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err == nil {
		if existing.UserType == models.UserTypeProjectManager {
			return models.User{}, fmt.Errorf("%s is already a project manager: %w", req.Email, ErrConflict)
		}
		existing.UserType = models.UserTypeProjectManager
		if err := s.userRepo.Update(existing); err != nil {
			return models.User{}, err
		}
		return existing, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		UserType: models.UserTypeProjectManager,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := repositories.NextID(tx, "User")
		if err != nil {
			return err
		}
		user.UserID = id
		return tx.Create(&user).Error
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListUsers returns accounts, optionally filtered by role tag
func (s *AdminService) ListUsers(userType string) ([]models.User, error) {
	if userType == "" {
		return s.userRepo.FindAll()
	}
	return s.userRepo.FindByType(models.UserType(userType))
}

// DeleteProjectManagers classifies each candidate email, then deletes every
// valid project manager together with everything they own: subtasks under
// tasks referenced by their assignment logs, those tasks, the logs they
// authored, the teams and projects they created, and finally the accounts.
// Deletion runs leaves-first inside a single transaction. Classification
// happens before any write, so a skipped entry never aborts the rest.
func (s *AdminService) DeleteProjectManagers(adminEmail string, emails []string) (dto.DeleteProjectManagersResult, error) {
	var result dto.DeleteProjectManagersResult
	result.InvalidOrSkippedEmails = []dto.SkippedEmail{}
	result.DeletedEmails = []string{}

	var pmIDs []string
	for _, email := range emails {
		switch {
		case !utils.IsValidEmail(email):
			result.InvalidOrSkippedEmails = append(result.InvalidOrSkippedEmails, dto.SkippedEmail{
				Email: email, Reason: "Invalid email format",
			})
		case utils.SameEmail(email, adminEmail):
			result.InvalidOrSkippedEmails = append(result.InvalidOrSkippedEmails, dto.SkippedEmail{
				Email: email, Reason: "Admin cannot delete self",
			})
		default:
			user, err := s.userRepo.FindByEmail(email)
			if err != nil || user.UserType != models.UserTypeProjectManager {
				result.InvalidOrSkippedEmails = append(result.InvalidOrSkippedEmails, dto.SkippedEmail{
					Email: email, Reason: "Not a project manager",
				})
				continue
			}
			pmIDs = append(pmIDs, user.UserID)
			result.DeletedEmails = append(result.DeletedEmails, user.Email)
		}
	}

	if len(pmIDs) == 0 {
		return result, nil
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Resolve the downstream closure before any write
		var logs []models.AssignedProjectLog
		if err := tx.Where("assigned_by IN ?", pmIDs).Find(&logs).Error; err != nil {
			return err
		}
		var taskIDs []string
		for _, l := range logs {
			taskIDs = append(taskIDs, l.TasksIDs...)
		}
		taskIDs = utils.Dedupe(taskIDs)

		// Delete leaves-first: subtasks, tasks, logs, teams, projects, users
		if len(taskIDs) > 0 {
			res := tx.Where("parent_task_id IN ?", taskIDs).Delete(&models.Subtask{})
			if res.Error != nil {
				return res.Error
			}
			result.Deleted.Subtasks = res.RowsAffected

			res = tx.Where("task_id IN ?", taskIDs).Delete(&models.Task{})
			if res.Error != nil {
				return res.Error
			}
			result.Deleted.Tasks = res.RowsAffected
		}

		res := tx.Where("assigned_by IN ?", pmIDs).Delete(&models.AssignedProjectLog{})
		if res.Error != nil {
			return res.Error
		}
		result.Deleted.Logs = res.RowsAffected

		res = tx.Where("created_by IN ?", pmIDs).Delete(&models.Team{})
		if res.Error != nil {
			return res.Error
		}
		result.Deleted.Teams = res.RowsAffected

		res = tx.Where("created_by IN ?", pmIDs).Delete(&models.Project{})
		if res.Error != nil {
			return res.Error
		}
		result.Deleted.Projects = res.RowsAffected

		res = tx.Where("user_id IN ?", pmIDs).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		result.Deleted.Users = res.RowsAffected

		return nil
	})
	if err != nil {
		return dto.DeleteProjectManagersResult{}, err
	}

	log.Printf("Deleted %d project manager(s): %d tasks, %d subtasks, %d logs, %d teams, %d projects",
		result.Deleted.Users, result.Deleted.Tasks, result.Deleted.Subtasks,
		result.Deleted.Logs, result.Deleted.Teams, result.Deleted.Projects)

	return result, nil
}
