package interfaces

import (
	"context"
	"pandit_booking/internal/domain/entities"
)

type IPujaTypeRepository interface {
	Create(ctx context.Context, p entities.PujaType) (entities.PujaType, error)
	GetByID(ctx context.Context, id string) (entities.PujaType, error)
	List(ctx context.Context) ([]entities.PujaType, error)
	Update(ctx context.Context, p entities.PujaType) (entities.PujaType, error)
}
