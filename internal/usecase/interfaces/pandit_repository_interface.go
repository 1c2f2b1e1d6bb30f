package interfaces

import (
	"context"
	"pandit_booking/internal/domain/entities"
)

// IPanditRepository abstracts persistence for Pandit profiles.
//
// Create fails with ErrConditionFailed when the user already owns a profile.
// SetApproval updates the approval flag and, when promoteUserID is not empty,
// promotes that user from role "user" to "pandit" in the same atomic write.

type IPanditRepository interface {
	Create(ctx context.Context, p entities.Pandit) (entities.Pandit, error)
	GetByID(ctx context.Context, id string) (entities.Pandit, error)
	GetByUserID(ctx context.Context, userID string) (entities.Pandit, error)
	List(ctx context.Context, approvedOnly bool) ([]entities.Pandit, error)
	SetApproval(ctx context.Context, id string, approved bool, promoteUserID string) (entities.Pandit, error)
}
