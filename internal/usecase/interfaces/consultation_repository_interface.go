package interfaces

import (
	"context"
	"pandit_booking/internal/domain/entities"
)

type IConsultationRepository interface {
	Create(ctx context.Context, c entities.Consultation) (entities.Consultation, error)
	ListByPanditID(ctx context.Context, panditID string) ([]entities.Consultation, error)
}

type IVirtualSessionRepository interface {
	Create(ctx context.Context, s entities.VirtualSession) (entities.VirtualSession, error)
	ListActive(ctx context.Context) ([]entities.VirtualSession, error)
}
