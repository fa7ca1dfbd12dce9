package repositories

import (
	"context"

	"taskhub/domain/models"
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uint) (*models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query TeamQuery) ([]*models.Team, error)
	Count(ctx context.Context) (int64, error)

	// Membership. AddMember and RemoveMember run their existence
	// checks and the join-table write in a single transaction; the
	// composite unique key on team_members closes the check-then-act
	// race between concurrent adds.
	AddMember(ctx context.Context, teamID, userID uint) error
	RemoveMember(ctx context.Context, teamID, userID uint) error
	ListMemberIDs(ctx context.Context, teamID uint) ([]uint, error)
	ListMembers(ctx context.Context, teamID uint) ([]*models.User, error)
}
