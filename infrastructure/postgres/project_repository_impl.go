package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) repositories.ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

// Create checks the parent team inside the same transaction as the
// insert so a concurrent team delete cannot leave an orphaned project.
func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Team{}, project.TeamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrTeamNotFound
			}
			return err
		}
		return tx.Create(project).Error
	})
}

func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Team{}, project.TeamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrTeamNotFound
			}
			return err
		}
		return tx.Save(project).Error
	})
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrProjectNotFound
			}
			return err
		}

		var tasks int64
		if err := tx.Model(&models.Task{}).Where("project_id = ?", id).Count(&tasks).Error; err != nil {
			return err
		}
		if tasks > 0 {
			return models.ErrHasChildren
		}

		return tx.Delete(&project).Error
	})
}

func (r *ProjectRepositoryImpl) List(ctx context.Context, query repositories.ProjectQuery) ([]*models.Project, error) {
	page := query.Normalize()
	var projects []*models.Project
	err := r.applyFilters(r.db.WithContext(ctx), query).
		Order(query.OrderClause()).
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) Count(ctx context.Context, query repositories.ProjectQuery) (int64, error) {
	var count int64
	err := r.applyFilters(r.db.WithContext(ctx).Model(&models.Project{}), query).Count(&count).Error
	return count, err
}

func (r *ProjectRepositoryImpl) applyFilters(db *gorm.DB, query repositories.ProjectQuery) *gorm.DB {
	if query.TeamID != nil {
		db = db.Where("team_id = ?", *query.TeamID)
	}
	return db
}
