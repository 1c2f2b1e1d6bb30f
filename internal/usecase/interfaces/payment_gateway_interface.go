package interfaces

import (
	"context"
	"pandit_booking/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Razorpay).
//
// CreateOrder must honour ctx cancellation; the caller bounds it with a timeout.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, req entities.ProviderOrderRequest) (entities.ProviderOrder, error)
}
