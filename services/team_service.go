package services

import (
	"fmt"

	"github.com/teamtrack-simple/database"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/models"
	"github.com/teamtrack-simple/repositories"
	"github.com/teamtrack-simple/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	teamRepo *repositories.TeamRepository
	userRepo *repositories.UserRepository
}

// NewTeamService creates a new team service instance
func NewTeamService() *TeamService {
	return &TeamService{
		teamRepo: repositories.NewTeamRepository(),
		userRepo: repositories.NewUserRepository(),
	}
}

// validateRoster checks that the leader is part of the member list and that
// every member id resolves to an existing non-admin account.
func (s *TeamService) validateRoster(leader string, members []string) ([]string, error) {
	members = utils.Dedupe(members)

	inMembers := false
	for _, m := range members {
		if m == leader {
			inMembers = true
			break
		}
	}
	if !inMembers {
		return nil, fmt.Errorf("teamLeader must be listed in members: %w", ErrInvalid)
	}

	users, err := s.userRepo.FindByIDs(members)
	if err != nil {
		return nil, err
	}
	found := make(map[string]bool, len(users))
	for _, u := range users {
		found[u.UserID] = true
	}
	for _, m := range members {
		if !found[m] {
			return nil, fmt.Errorf("member %s: %w", m, ErrNotFound)
		}
	}

	return members, nil
}

// CreateTeam creates a team owned by the given project manager
func (s *TeamService) CreateTeam(creatorID string, req dto.CreateTeamRequest) (models.Team, error) {
	members, err := s.validateRoster(req.TeamLeader, req.Members)
	if err != nil {
		return models.Team{}, err
	}

	team := models.Team{
		TeamName:   req.TeamName,
		TeamLeader: req.TeamLeader,
		Members:    datatypes.NewJSONSlice(members),
		CreatedBy:  creatorID,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		id, err := repositories.NextID(tx, "Team")
		if err != nil {
			return err
		}
		team.TeamID = id
		return tx.Create(&team).Error
	})
	if err != nil {
		return models.Team{}, err
	}

	return team, nil
}

// ListTeams scopes visibility by role: admin sees all, a project manager the
// teams they created, everyone else the teams they lead or belong to.
func (s *TeamService) ListTeams(userID string, userType models.UserType) ([]models.Team, error) {
	switch userType {
	case models.UserTypeAdmin:
		return s.teamRepo.FindAll()
	case models.UserTypeProjectManager:
		return s.teamRepo.FindByCreator(userID)
	default:
		return s.teamRepo.FindByMember(userID)
	}
}

// GetTeamDetail returns a team with member profiles joined manually by id.
// Visible to the creator, the leader, members and the admin.
func (s *TeamService) GetTeamDetail(teamID, userID string, isAdmin bool) (dto.TeamDetailResponse, error) {
	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		return dto.TeamDetailResponse{}, fmt.Errorf("team %s: %w", teamID, ErrNotFound)
	}

	allowed := isAdmin || team.CreatedBy == userID || team.TeamLeader == userID || team.HasMember(userID)
	if !allowed {
		return dto.TeamDetailResponse{}, fmt.Errorf("no access to team %s: %w", teamID, ErrForbidden)
	}

	users, err := s.userRepo.FindByIDs(team.Members)
	if err != nil {
		return dto.TeamDetailResponse{}, err
	}

	members := make([]dto.TeamMemberItem, 0, len(users))
	for _, u := range users {
		members = append(members, dto.TeamMemberItem{
			UserID:   u.UserID,
			Name:     u.Name,
			Email:    u.Email,
			UserType: string(u.UserType),
			IsLeader: u.UserID == team.TeamLeader,
		})
	}

	return dto.TeamDetailResponse{Team: team, Members: members}, nil
}

// UpdateTeam renames the team or replaces leader/members. Creator only.
func (s *TeamService) UpdateTeam(teamID, userID string, req dto.UpdateTeamRequest) (models.Team, error) {
	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		return models.Team{}, fmt.Errorf("team %s: %w", teamID, ErrNotFound)
	}

	if team.CreatedBy != userID {
		return models.Team{}, fmt.Errorf("only the creating project manager can update a team: %w", ErrForbidden)
	}

	members, err := s.validateRoster(req.TeamLeader, req.Members)
	if err != nil {
		return models.Team{}, err
	}

	team.TeamName = req.TeamName
	team.TeamLeader = req.TeamLeader
	team.Members = datatypes.NewJSONSlice(members)
	if err := s.teamRepo.Update(team); err != nil {
		return models.Team{}, err
	}
	return team, nil
}

// DeleteTeam removes a team and everything under its assignments: the logs
// for the team, the tasks those logs reference and their subtasks. Deletion
// order is strictly subtasks -> tasks -> logs -> team, in one transaction.
// Each stage tolerates an empty id set and reports 0 deleted.
func (s *TeamService) DeleteTeam(teamID, userID string, isAdmin bool) (dto.CascadeDeleteResult, error) {
	var counts dto.CascadeDeleteResult

	team, err := s.teamRepo.FindByID(teamID)
	if err != nil {
		return counts, fmt.Errorf("team %s: %w", teamID, ErrNotFound)
	}

	if !isAdmin && team.CreatedBy != userID {
		return counts, fmt.Errorf("only the creating project manager can delete a team: %w", ErrForbidden)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var logs []models.AssignedProjectLog
		if err := tx.Where("team_id = ?", teamID).Find(&logs).Error; err != nil {
			return err
		}
		var taskIDs []string
		for _, l := range logs {
			taskIDs = append(taskIDs, l.TasksIDs...)
		}
		taskIDs = utils.Dedupe(taskIDs)

		if len(taskIDs) > 0 {
			res := tx.Where("parent_task_id IN ?", taskIDs).Delete(&models.Subtask{})
			if res.Error != nil {
				return res.Error
			}
			counts.Subtasks = res.RowsAffected

			res = tx.Where("task_id IN ?", taskIDs).Delete(&models.Task{})
			if res.Error != nil {
				return res.Error
			}
			counts.Tasks = res.RowsAffected
		}

		res := tx.Where("team_id = ?", teamID).Delete(&models.AssignedProjectLog{})
		if res.Error != nil {
			return res.Error
		}
		counts.Logs = res.RowsAffected

		res = tx.Where("team_id = ?", teamID).Delete(&models.Team{})
		if res.Error != nil {
			return res.Error
		}
		counts.Teams = res.RowsAffected

		return nil
	})
	if err != nil {
		return dto.CascadeDeleteResult{}, err
	}

	return counts, nil
}
