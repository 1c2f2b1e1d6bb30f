package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentProvider    = newError("invalid provider", ErrValidation)
	ErrInvalidVerifyPayload      = newError("order_id, payment_id and signature are required", ErrValidation)
	ErrSignatureMismatch         = newError("signature verification failed", ErrValidation)
	ErrInvalidWebhookPayload     = newError("invalid webhook payload", ErrValidation)
	ErrPaymentNotFound           = newError("payment not found", ErrNotFound)
	ErrPaymentAlreadyCompleted   = newError("payment already completed for this booking", ErrConflict)
	ErrPaymentStateChanged       = newError("payment changed concurrently, retry", ErrConflict)
	ErrBookingCancelled          = newError("booking is cancelled", ErrConflict)
	ErrPaymentNotPending         = newError("payment is not pending", ErrInvalidState)
	ErrPaymentGatewayUnavailable = newError("payment gateway not configured", ErrUnavailable)
	ErrSignatureSecretMissing    = newError("payment signature secret not configured", ErrUnavailable)
	ErrProviderOrderFailed       = newError("provider order creation failed", ErrUpstream)
)

// WebhookEventPaymentCaptured is the only provider event that settles a payment.
const WebhookEventPaymentCaptured = "payment.captured"

const (
	WebhookStatusSuccess = "success"
	WebhookStatusIgnored = "ignored"
)

// IPaymentUseCase reconciles local payments with the external provider.
//
// Flow:
//   - CreateProviderOrder reuses (or creates) the booking's single payment and binds it
//     to a provider order; the order id is the reconciliation key.
//   - the client proves payment with VerifyClientSignature, and/or the provider
//     notifies HandleProviderWebhook.
//   - both paths settle the same way: payment -> success and booking -> confirmed in
//     one atomic write. Re-settling an already settled pair is a no-op.

type IPaymentUseCase interface {
	CreatePaymentRecord(ctx context.Context, bookingID string, requester Principal, provider string) (entities.Payment, error)
	CreateProviderOrder(ctx context.Context, bookingID string, requester Principal) (ProviderOrderResult, error)
	VerifyClientSignature(ctx context.Context, in VerifySignatureInput, requester Principal) (VerificationResult, error)
	HandleProviderWebhook(ctx context.Context, body []byte) (WebhookResult, error)
	GetByBooking(ctx context.Context, bookingID string, requester Principal) (entities.Payment, error)
}

// PaymentSettings is the provider configuration the use case needs at request time.
type PaymentSettings struct {
	KeyID          string
	KeySecret      string
	Currency       string
	GatewayTimeout time.Duration
}

type ProviderOrderResult struct {
	KeyID   string
	Order   entities.ProviderOrder
	Payment entities.Payment
	Booking entities.Booking
	User    entities.User
	Reused  bool
}

type VerifySignatureInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

type VerificationResult struct {
	Payment entities.Payment
	Booking entities.Booking
}

type WebhookResult struct {
	Status    string
	Event     string
	PaymentID string
	Reason    string
}

type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

type PaymentUseCase struct {
	repo        interfaces.IPaymentRepository
	bookingRepo interfaces.IBookingRepository
	userRepo    interfaces.IUserRepository
	gateway     interfaces.IPaymentGateway
	settings    PaymentSettings
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase accepts a nil gateway; order creation then reports Unavailable.
func NewPaymentUseCase(repo interfaces.IPaymentRepository, bookingRepo interfaces.IBookingRepository, userRepo interfaces.IUserRepository, gateway interfaces.IPaymentGateway, settings PaymentSettings) *PaymentUseCase {
	if settings.Currency == "" {
		settings.Currency = "INR"
	}
	if settings.GatewayTimeout <= 0 {
		settings.GatewayTimeout = 10 * time.Second
	}
	return &PaymentUseCase{repo: repo, bookingRepo: bookingRepo, userRepo: userRepo, gateway: gateway, settings: settings}
}

func (u *PaymentUseCase) CreatePaymentRecord(ctx context.Context, bookingID string, requester Principal, provider string) (entities.Payment, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		return entities.Payment{}, ErrInvalidPaymentProvider
	}
	b, err := u.loadOwnedBooking(ctx, bookingID, requester)
	if err != nil {
		return entities.Payment{}, err
	}
	p, err := u.ensurePayment(ctx, b, provider)
	if err != nil {
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment record ready booking_id=%s payment_id=%s amount=%.2f status=%s", b.ID, p.ID, p.Amount, p.Status)
	return p, nil
}

func (u *PaymentUseCase) CreateProviderOrder(ctx context.Context, bookingID string, requester Principal) (ProviderOrderResult, error) {
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured booking_id=%s", bookingID)
		return ProviderOrderResult{}, ErrPaymentGatewayUnavailable
	}
	b, err := u.loadOwnedBooking(ctx, bookingID, requester)
	if err != nil {
		return ProviderOrderResult{}, err
	}
	p, err := u.ensurePayment(ctx, b, entities.PaymentProviderRazorpay)
	if err != nil {
		return ProviderOrderResult{}, err
	}
	if p.Status != entities.PaymentStatusPending {
		log.Printf("[payment][usecase] order rejected booking_id=%s payment_id=%s status=%s", b.ID, p.ID, p.Status)
		return ProviderOrderResult{}, ErrPaymentNotPending
	}

	result := ProviderOrderResult{KeyID: u.settings.KeyID, Booking: b, User: u.lookupUser(ctx, b.UserID)}

	if p.ProviderPaymentID != "" {
		log.Printf("[payment][usecase] reusing provider order booking_id=%s payment_id=%s order_id=%s", b.ID, p.ID, p.ProviderPaymentID)
		result.Payment = p
		result.Order = u.existingOrder(p)
		result.Reused = true
		return result, nil
	}

	order, err := u.callGateway(ctx, p)
	if err != nil {
		return ProviderOrderResult{}, err
	}

	attached, err := u.repo.AttachProviderOrder(ctx, p.ID, order.ID)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		// Another request bound an order first; its order wins and ours is left unused.
		current, rErr := u.repo.GetByID(ctx, p.ID)
		if rErr != nil {
			return ProviderOrderResult{}, rErr
		}
		if current.ProviderPaymentID == "" || current.Status != entities.PaymentStatusPending {
			log.Printf("[payment][usecase] attach order lost race booking_id=%s payment_id=%s status=%s", b.ID, p.ID, current.Status)
			return ProviderOrderResult{}, ErrPaymentStateChanged
		}
		log.Printf("[payment][usecase] attach order lost race, reusing winner payment_id=%s order_id=%s discarded_order_id=%s", p.ID, current.ProviderPaymentID, order.ID)
		result.Payment = current
		result.Order = u.existingOrder(current)
		result.Reused = true
		return result, nil
	}
	if err != nil {
		log.Printf("[payment][usecase] attach order failed payment_id=%s order_id=%s err=%v", p.ID, order.ID, err)
		return ProviderOrderResult{}, err
	}

	log.Printf("[payment][usecase] provider order created booking_id=%s payment_id=%s order_id=%s amount_minor=%d", b.ID, attached.ID, order.ID, order.AmountMinor)
	result.Payment = attached
	result.Order = order
	return result, nil
}

func (u *PaymentUseCase) VerifyClientSignature(ctx context.Context, in VerifySignatureInput, requester Principal) (VerificationResult, error) {
	if u.settings.KeySecret == "" {
		return VerificationResult{}, ErrSignatureSecretMissing
	}
	orderID := strings.TrimSpace(in.OrderID)
	paymentID := strings.TrimSpace(in.PaymentID)
	if orderID == "" || paymentID == "" || strings.TrimSpace(in.Signature) == "" {
		return VerificationResult{}, ErrInvalidVerifyPayload
	}
	// The signature is compared byte for byte as submitted.
	if !VerifySignature(u.settings.KeySecret, orderID, paymentID, in.Signature) {
		log.Printf("[payment][usecase] signature mismatch order_id=%s provider_payment=%s", orderID, paymentID)
		return VerificationResult{}, ErrSignatureMismatch
	}

	p, err := u.repo.GetByProviderPaymentID(ctx, orderID)
	if err != nil {
		return VerificationResult{}, err
	}
	if p.ID == "" {
		return VerificationResult{}, ErrPaymentNotFound
	}
	b, err := u.bookingRepo.GetByID(ctx, p.BookingID)
	if err != nil {
		return VerificationResult{}, err
	}
	if b.ID == "" {
		return VerificationResult{}, ErrBookingNotFound
	}
	if err := requireOwnerOrAdmin(requester, b.UserID, ErrBookingNotOwned); err != nil {
		return VerificationResult{}, err
	}

	settledPayment, settledBooking, err := u.settle(ctx, p, &b)
	if err != nil {
		return VerificationResult{}, err
	}
	if settledBooking != nil {
		b = *settledBooking
	}
	log.Printf("[payment][usecase] verified payment_id=%s booking_id=%s order_id=%s", settledPayment.ID, b.ID, orderID)
	return VerificationResult{Payment: settledPayment, Booking: b}, nil
}

// HandleProviderWebhook trusts its caller to have authenticated the body.
// Events it does not act on are acknowledged as ignored so the provider stops retrying.
func (u *PaymentUseCase) HandleProviderWebhook(ctx context.Context, body []byte) (WebhookResult, error) {
	var env webhookEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		log.Printf("[payment][webhook] invalid body len=%d err=%v", len(body), err)
		return WebhookResult{}, ErrInvalidWebhookPayload
	}
	ignored := func(reason string) (WebhookResult, error) {
		log.Printf("[payment][webhook] ignored event=%q reason=%q", env.Event, reason)
		return WebhookResult{Status: WebhookStatusIgnored, Event: env.Event, Reason: reason}, nil
	}

	if env.Event != WebhookEventPaymentCaptured {
		return ignored("unhandled event")
	}
	orderID := strings.TrimSpace(env.Payload.Payment.Entity.OrderID)
	if orderID == "" {
		return ignored("missing order_id")
	}

	p, err := u.repo.GetByProviderPaymentID(ctx, orderID)
	if err != nil {
		return WebhookResult{}, err
	}
	if p.ID == "" {
		return ignored("unknown order " + orderID)
	}

	var booking *entities.Booking
	b, err := u.bookingRepo.GetByID(ctx, p.BookingID)
	if err != nil {
		return WebhookResult{}, err
	}
	if b.ID != "" {
		booking = &b
	}

	settled, _, err := u.settle(ctx, p, booking)
	if errors.Is(err, ErrBookingCancelled) || errors.Is(err, ErrPaymentNotPending) {
		return ignored(err.Error())
	}
	if err != nil {
		return WebhookResult{}, err
	}
	log.Printf("[payment][webhook] settled payment_id=%s order_id=%s provider_payment=%s", settled.ID, orderID, env.Payload.Payment.Entity.ID)
	return WebhookResult{Status: WebhookStatusSuccess, Event: env.Event, PaymentID: settled.ID}, nil
}

func (u *PaymentUseCase) GetByBooking(ctx context.Context, bookingID string, requester Principal) (entities.Payment, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Payment{}, ErrInvalidBookingID
	}
	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Payment{}, err
	}
	if b.ID == "" {
		return entities.Payment{}, ErrBookingNotFound
	}
	if err := requireOwnerOrAdmin(requester, b.UserID, ErrBookingNotOwned); err != nil {
		return entities.Payment{}, err
	}
	p, err := u.repo.GetByBookingID(ctx, b.ID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

// SignaturePayload is the message the provider signs for client-side verification.
func SignaturePayload(orderID, paymentID string) string {
	return orderID + "|" + paymentID
}

// ComputeSignature returns the lowercase hex HMAC-SHA256 of orderID|paymentID.
func ComputeSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(SignaturePayload(orderID, paymentID)))
	return hex.EncodeToString(mac.Sum(nil))
}

func VerifySignature(secret, orderID, paymentID, signature string) bool {
	expected := ComputeSignature(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (u *PaymentUseCase) loadOwnedBooking(ctx context.Context, bookingID string, requester Principal) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading booking booking_id=%s err=%v", bookingID, err)
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if !requester.Owns(b.UserID) {
		return entities.Booking{}, ErrBookingNotOwned
	}
	return b, nil
}

// ensurePayment returns the booking's payment, creating it when there is none.
// The amount source of truth is the stored booking price.
func (u *PaymentUseCase) ensurePayment(ctx context.Context, b entities.Booking, provider string) (entities.Payment, error) {
	existing, err := u.repo.GetByBookingID(ctx, b.ID)
	if err != nil {
		return entities.Payment{}, err
	}
	if existing.ID != "" {
		return checkReusable(existing)
	}

	now := time.Now().UTC()
	created, err := u.repo.CreateForBooking(ctx, entities.Payment{
		ID:        uuid.NewString(),
		BookingID: b.ID,
		Amount:    b.Price,
		Provider:  provider,
		Status:    entities.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if errors.Is(err, interfaces.ErrConditionFailed) {
		// A concurrent request created the payment first, or the booking vanished.
		winner, rErr := u.repo.GetByBookingID(ctx, b.ID)
		if rErr != nil {
			return entities.Payment{}, rErr
		}
		if winner.ID == "" {
			return entities.Payment{}, ErrBookingNotFound
		}
		log.Printf("[payment][usecase] payment created concurrently booking_id=%s payment_id=%s", b.ID, winner.ID)
		return checkReusable(winner)
	}
	if err != nil {
		log.Printf("[payment][usecase] payment create failed booking_id=%s err=%v", b.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment created booking_id=%s payment_id=%s amount=%.2f", b.ID, created.ID, created.Amount)
	return created, nil
}

func checkReusable(p entities.Payment) (entities.Payment, error) {
	if p.Status == entities.PaymentStatusSuccess {
		return entities.Payment{}, ErrPaymentAlreadyCompleted
	}
	return p, nil
}

func (u *PaymentUseCase) callGateway(ctx context.Context, p entities.Payment) (entities.ProviderOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, u.settings.GatewayTimeout)
	defer cancel()

	req := entities.ProviderOrderRequest{
		AmountMinor: p.AmountMinorUnits(),
		Currency:    u.settings.Currency,
		Receipt:     p.ID,
		Notes:       map[string]string{"booking_id": p.BookingID},
	}
	log.Printf("[payment][usecase] calling payment gateway payment_id=%s amount_minor=%d currency=%s", p.ID, req.AmountMinor, req.Currency)
	order, err := u.gateway.CreateOrder(ctx, req)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed payment_id=%s err=%v", p.ID, err)
		return entities.ProviderOrder{}, fmt.Errorf("%w: %w", ErrProviderOrderFailed, err)
	}
	if strings.TrimSpace(order.ID) == "" {
		log.Printf("[payment][usecase] payment gateway returned no order id payment_id=%s", p.ID)
		return entities.ProviderOrder{}, fmt.Errorf("%w: empty order id", ErrProviderOrderFailed)
	}
	if order.AmountMinor == 0 {
		order.AmountMinor = req.AmountMinor
	}
	if order.Currency == "" {
		order.Currency = req.Currency
	}
	return order, nil
}

func (u *PaymentUseCase) existingOrder(p entities.Payment) entities.ProviderOrder {
	return entities.ProviderOrder{
		ID:          p.ProviderPaymentID,
		AmountMinor: p.AmountMinorUnits(),
		Currency:    u.settings.Currency,
		Receipt:     p.ID,
	}
}

func (u *PaymentUseCase) lookupUser(ctx context.Context, userID string) entities.User {
	if u.userRepo == nil {
		return entities.User{ID: userID}
	}
	usr, err := u.userRepo.GetByID(ctx, userID)
	if err != nil || usr.ID == "" {
		if err != nil {
			log.Printf("[payment][usecase] user lookup failed user_id=%s err=%v", userID, err)
		}
		return entities.User{ID: userID}
	}
	return usr
}

// settle moves the payment to success and its booking (when given) to confirmed
// in one atomic write. A completed booking is already past confirmation and is
// left untouched. When the write loses a race, the pair is re-read once: if the
// other writer already settled it, the call is a no-op.
func (u *PaymentUseCase) settle(ctx context.Context, p entities.Payment, b *entities.Booking) (entities.Payment, *entities.Booking, error) {
	if settled(p, b) {
		log.Printf("[payment][usecase] already settled payment_id=%s", p.ID)
		return p, b, nil
	}
	if p.Status == entities.PaymentStatusFailed || p.Status == entities.PaymentStatusRefunded {
		return entities.Payment{}, nil, ErrPaymentNotPending
	}
	bookingID := ""
	if b != nil {
		switch b.Status {
		case entities.BookingStatusCancelled:
			log.Printf("[payment][usecase] settle rejected, booking cancelled payment_id=%s booking_id=%s", p.ID, b.ID)
			return entities.Payment{}, nil, ErrBookingCancelled
		case entities.BookingStatusPending, entities.BookingStatusConfirmed:
			bookingID = b.ID
		}
	}

	err := u.repo.MarkSucceeded(ctx, p.ID, bookingID)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return u.resettle(ctx, p, b)
	}
	if err != nil {
		log.Printf("[payment][usecase] settle failed payment_id=%s booking_id=%s err=%v", p.ID, bookingID, err)
		return entities.Payment{}, nil, err
	}

	p.Status = entities.PaymentStatusSuccess
	if bookingID != "" {
		confirmed := *b
		confirmed.Status = entities.BookingStatusConfirmed
		b = &confirmed
	}
	return p, b, nil
}

func (u *PaymentUseCase) resettle(ctx context.Context, p entities.Payment, b *entities.Booking) (entities.Payment, *entities.Booking, error) {
	current, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Payment{}, nil, err
	}
	var booking *entities.Booking
	if b != nil {
		cb, err := u.bookingRepo.GetByID(ctx, b.ID)
		if err != nil {
			return entities.Payment{}, nil, err
		}
		if cb.ID != "" {
			booking = &cb
		}
	}
	if settled(current, booking) {
		log.Printf("[payment][usecase] settled concurrently payment_id=%s", current.ID)
		return current, booking, nil
	}
	if booking != nil && booking.Status == entities.BookingStatusCancelled {
		return entities.Payment{}, nil, ErrBookingCancelled
	}
	if current.Status == entities.PaymentStatusFailed || current.Status == entities.PaymentStatusRefunded {
		return entities.Payment{}, nil, ErrPaymentNotPending
	}
	log.Printf("[payment][usecase] settle lost race payment_id=%s status=%s", current.ID, current.Status)
	return entities.Payment{}, nil, ErrPaymentStateChanged
}

func settled(p entities.Payment, b *entities.Booking) bool {
	if p.Status != entities.PaymentStatusSuccess {
		return false
	}
	return b == nil || b.Status == entities.BookingStatusConfirmed || b.Status == entities.BookingStatusCompleted
}
