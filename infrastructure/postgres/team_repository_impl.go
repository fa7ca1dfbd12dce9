package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type TeamRepositoryImpl struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) repositories.TeamRepository {
	return &TeamRepositoryImpl{db: db}
}

func (r *TeamRepositoryImpl) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *TeamRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrTeamNotFound
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepositoryImpl) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

// Delete blocks while the team still has projects or members.
func (r *TeamRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrTeamNotFound
			}
			return err
		}

		var projects int64
		if err := tx.Model(&models.Project{}).Where("team_id = ?", id).Count(&projects).Error; err != nil {
			return err
		}
		var members int64
		if err := tx.Model(&models.TeamMember{}).Where("team_id = ?", id).Count(&members).Error; err != nil {
			return err
		}
		if projects > 0 || members > 0 {
			return models.ErrHasChildren
		}

		return tx.Delete(&team).Error
	})
}

func (r *TeamRepositoryImpl) List(ctx context.Context, query repositories.TeamQuery) ([]*models.Team, error) {
	page := query.Normalize()
	var teams []*models.Team
	err := r.db.WithContext(ctx).
		Order(query.OrderClause()).
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&teams).Error
	return teams, err
}

func (r *TeamRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Team{}).Count(&count).Error
	return count, err
}

// AddMember verifies both sides exist and inserts the association in
// one transaction. The composite primary key on team_members turns a
// concurrent duplicate insert into gorm.ErrDuplicatedKey, so the
// check-then-act sequence cannot produce two rows.
func (r *TeamRepositoryImpl) AddMember(ctx context.Context, teamID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Team{}, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrTeamNotFound
			}
			return err
		}
		if err := tx.First(&models.User{}, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrUserNotFound
			}
			return err
		}

		err := tx.Create(&models.TeamMember{TeamID: teamID, UserID: userID}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.ErrAlreadyMember
		}
		return err
	})
}

func (r *TeamRepositoryImpl) RemoveMember(ctx context.Context, teamID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Team{}, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrTeamNotFound
			}
			return err
		}
		if err := tx.First(&models.User{}, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrUserNotFound
			}
			return err
		}

		res := tx.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&models.TeamMember{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrNotMember
		}
		return nil
	})
}

func (r *TeamRepositoryImpl) ListMemberIDs(ctx context.Context, teamID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.TeamMember{}).
		Where("team_id = ?", teamID).
		Order("user_id ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *TeamRepositoryImpl) ListMembers(ctx context.Context, teamID uint) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN team_members ON team_members.user_id = users.id").
		Where("team_members.team_id = ?", teamID).
		Order("users.id ASC").
		Find(&users).Error
	return users, err
}
