package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pandit_booking/internal/adapter/persistence/memory"
	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase/interfaces"
	mock_interfaces "pandit_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	owner = Principal{UserID: "u1", Role: entities.UserRoleUser}
	other = Principal{UserID: "u2", Role: entities.UserRoleUser}
	admin = Principal{UserID: "a1", Role: entities.UserRoleAdmin}
)

const testSecret = "s3cr3t"

type fakeGateway struct {
	calls atomic.Int32
	delay time.Duration
}

func (g *fakeGateway) CreateOrder(ctx context.Context, req entities.ProviderOrderRequest) (entities.ProviderOrder, error) {
	n := g.calls.Add(1)
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return entities.ProviderOrder{}, ctx.Err()
		}
	}
	return entities.ProviderOrder{ID: fmt.Sprintf("order_%d", n), AmountMinor: req.AmountMinor, Currency: req.Currency, Receipt: req.Receipt, Status: "created"}, nil
}

type paymentFixture struct {
	store   *memory.Store
	gateway *fakeGateway
	uc      *PaymentUseCase
}

func newPaymentFixture(t *testing.T, price float64) paymentFixture {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	if _, err := store.Users().Create(ctx, entities.User{ID: "u1", Name: "Devotee", Phone: "99999", Role: entities.UserRoleUser}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := store.Bookings().Create(ctx, entities.Booking{ID: "b1", UserID: "u1", PujaTypeID: "pt1", Price: price, Status: entities.BookingStatusPending, CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	gw := &fakeGateway{}
	uc := NewPaymentUseCase(store.Payments(), store.Bookings(), store.Users(), gw, PaymentSettings{KeyID: "rzp_test_key", KeySecret: testSecret, Currency: "INR", GatewayTimeout: time.Second})
	return paymentFixture{store: store, gateway: gw, uc: uc}
}

func (f paymentFixture) booking(t *testing.T) entities.Booking {
	t.Helper()
	b, _ := f.store.Bookings().GetByID(context.Background(), "b1")
	return b
}

func (f paymentFixture) payment(t *testing.T) entities.Payment {
	t.Helper()
	p, _ := f.store.Payments().GetByBookingID(context.Background(), "b1")
	return p
}

func sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func capturedEvent(orderID string) []byte {
	return []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_123","order_id":"` + orderID + `"}}}}`)
}

func TestComputeSignature(t *testing.T) {
	got := ComputeSignature("s3cr3t", "order_abc", "pay_123")
	if got != "070ea2f5813be979e4d4dd50f9840717bb01adf600c92662f401086c6cabbf9a" || got != sign("order_abc", "pay_123") {
		t.Fatalf("unexpected signature %s", got)
	}
	if !VerifySignature("s3cr3t", "order_abc", "pay_123", got) {
		t.Fatalf("expected signature to verify")
	}
	mutations := []struct{ order, payment, sig string }{
		{"pay_123", "order_abc", got},
		{"order_abd", "pay_123", got},
		{"order_abc", "pay_124", got},
		{"order_abc", "pay_123", got[:len(got)-1] + "b"},
		{"order_abc", "pay_123", "070EA2F5813BE979E4D4DD50F9840717BB01ADF600C92662F401086C6CABBF9A"},
		{"order_abc", "pay_123", ""},
	}
	for _, m := range mutations {
		if VerifySignature("s3cr3t", m.order, m.payment, m.sig) {
			t.Fatalf("mutation accepted: %+v", m)
		}
	}
}

func TestPaymentUseCase_CreatePaymentRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("empty provider", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentSettings{})
		_, err := uc.CreatePaymentRecord(ctx, "b1", owner, " ")
		if !errors.Is(err, ErrInvalidPaymentProvider) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrInvalidPaymentProvider, got %v", err)
		}
	})

	t.Run("booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentRepository(ctrl), bookings, nil, nil, PaymentSettings{})

		bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{}, nil)

		_, err := uc.CreatePaymentRecord(ctx, "b1", owner, "razorpay")
		if !errors.Is(err, ErrBookingNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewPaymentUseCase(mock_interfaces.NewMockIPaymentRepository(ctrl), bookings, nil, nil, PaymentSettings{})

		bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1"}, nil).Times(2)

		_, err := uc.CreatePaymentRecord(ctx, "b1", other, "razorpay")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if _, err := uc.CreatePaymentRecord(ctx, "b1", admin, "razorpay"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("admins do not pay for other users' bookings, got %v", err)
		}
	})

	t.Run("existing successful payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, bookings, nil, nil, PaymentSettings{})

		bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1", Price: 100}, nil)
		payments.EXPECT().GetByBookingID(gomock.Any(), "b1").Return(entities.Payment{ID: "p1", BookingID: "b1", Status: entities.PaymentStatusSuccess}, nil)

		_, err := uc.CreatePaymentRecord(ctx, "b1", owner, "razorpay")
		if !errors.Is(err, ErrPaymentAlreadyCompleted) || !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrPaymentAlreadyCompleted, got %v", err)
		}
	})

	t.Run("existing pending payment is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, bookings, nil, nil, PaymentSettings{})

		bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1", Price: 100}, nil)
		payments.EXPECT().GetByBookingID(gomock.Any(), "b1").Return(entities.Payment{ID: "p1", BookingID: "b1", Status: entities.PaymentStatusPending}, nil)

		p, err := uc.CreatePaymentRecord(ctx, "b1", owner, "razorpay")
		if err != nil || p.ID != "p1" {
			t.Fatalf("expected existing payment, got %+v err=%v", p, err)
		}
	})

	t.Run("lost create race returns the winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, bookings, nil, nil, PaymentSettings{})

		bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1", Price: 100}, nil)
		gomock.InOrder(
			payments.EXPECT().GetByBookingID(gomock.Any(), "b1").Return(entities.Payment{}, nil),
			payments.EXPECT().CreateForBooking(gomock.Any(), gomock.Any()).Return(entities.Payment{}, interfaces.ErrConditionFailed),
			payments.EXPECT().GetByBookingID(gomock.Any(), "b1").Return(entities.Payment{ID: "winner", BookingID: "b1", Status: entities.PaymentStatusPending}, nil),
		)

		p, err := uc.CreatePaymentRecord(ctx, "b1", owner, "razorpay")
		if err != nil || p.ID != "winner" {
			t.Fatalf("expected winner payment, got %+v err=%v", p, err)
		}
	})

	t.Run("amount comes from the booking", func(t *testing.T) {
		f := newPaymentFixture(t, 5100)
		p, err := f.uc.CreatePaymentRecord(ctx, "b1", owner, "razorpay")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Amount != 5100 || p.Status != entities.PaymentStatusPending || p.BookingID != "b1" {
			t.Fatalf("unexpected payment: %+v", p)
		}
		again, err := f.uc.CreatePaymentRecord(ctx, "b1", owner, "razorpay")
		if err != nil || again.ID != p.ID {
			t.Fatalf("expected the same payment row, got %+v err=%v", again, err)
		}
	})
}

func TestPaymentUseCase_CreateProviderOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentSettings{})
		_, err := uc.CreateProviderOrder(ctx, "b1", owner)
		if !errors.Is(err, ErrPaymentGatewayUnavailable) || !errors.Is(err, ErrUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("gateway failure leaves no provider id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(payments, bookings, users, gateway, PaymentSettings{KeyID: "k"})

		bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1", Price: 1100}, nil)
		payments.EXPECT().GetByBookingID(gomock.Any(), "b1").Return(entities.Payment{ID: "p1", BookingID: "b1", Amount: 1100, Status: entities.PaymentStatusPending}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1"}, nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.ProviderOrder{}, errors.New("502 bad gateway"))
		payments.EXPECT().AttachProviderOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.CreateProviderOrder(ctx, "b1", owner)
		if !errors.Is(err, ErrProviderOrderFailed) || !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrProviderOrderFailed, got %v", err)
		}
	})

	t.Run("order request is sized in minor units", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(payments, bookings, users, gateway, PaymentSettings{KeyID: "k", Currency: "INR"})

		bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1", Price: 1100.5}, nil)
		payments.EXPECT().GetByBookingID(gomock.Any(), "b1").Return(entities.Payment{ID: "p1", BookingID: "b1", Amount: 1100.5, Status: entities.PaymentStatusPending}, nil)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Name: "Asha", Phone: "123"}, nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), entities.ProviderOrderRequest{
			AmountMinor: 110050,
			Currency:    "INR",
			Receipt:     "p1",
			Notes:       map[string]string{"booking_id": "b1"},
		}).Return(entities.ProviderOrder{ID: "order_1", AmountMinor: 110050, Currency: "INR"}, nil)
		payments.EXPECT().AttachProviderOrder(gomock.Any(), "p1", "order_1").Return(entities.Payment{ID: "p1", BookingID: "b1", ProviderPaymentID: "order_1", Status: entities.PaymentStatusPending}, nil)

		res, err := uc.CreateProviderOrder(ctx, "b1", owner)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.ID != "order_1" || res.Payment.ProviderPaymentID != "order_1" || res.KeyID != "k" || res.User.Name != "Asha" || res.Reused {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("second call reuses payment and order", func(t *testing.T) {
		f := newPaymentFixture(t, 5100)
		first, err := f.uc.CreateProviderOrder(ctx, "b1", owner)
		if err != nil {
			t.Fatalf("first order: %v", err)
		}
		second, err := f.uc.CreateProviderOrder(ctx, "b1", owner)
		if err != nil {
			t.Fatalf("second order: %v", err)
		}
		if first.Payment.ID != second.Payment.ID || first.Order.ID != second.Order.ID || !second.Reused {
			t.Fatalf("expected reuse, got first=%+v second=%+v", first, second)
		}
		if f.gateway.calls.Load() != 1 {
			t.Fatalf("expected one remote call, got %d", f.gateway.calls.Load())
		}
		if first.Order.AmountMinor != 510000 {
			t.Fatalf("unexpected amount %d", first.Order.AmountMinor)
		}
	})

	t.Run("timeout leaves no partial state", func(t *testing.T) {
		f := newPaymentFixture(t, 5100)
		f.gateway.delay = time.Second
		f.uc.settings.GatewayTimeout = 20 * time.Millisecond

		_, err := f.uc.CreateProviderOrder(ctx, "b1", owner)
		if !errors.Is(err, ErrUpstream) || !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected upstream timeout, got %v", err)
		}
		if p := f.payment(t); p.ProviderPaymentID != "" {
			t.Fatalf("provider id must not be set, got %q", p.ProviderPaymentID)
		}
	})

	t.Run("paid booking is rejected", func(t *testing.T) {
		f := newPaymentFixture(t, 5100)
		res, err := f.uc.CreateProviderOrder(ctx, "b1", owner)
		if err != nil {
			t.Fatalf("order: %v", err)
		}
		if _, err := f.uc.HandleProviderWebhook(ctx, capturedEvent(res.Order.ID)); err != nil {
			t.Fatalf("webhook: %v", err)
		}
		_, err = f.uc.CreateProviderOrder(ctx, "b1", owner)
		if !errors.Is(err, ErrPaymentAlreadyCompleted) {
			t.Fatalf("expected ErrPaymentAlreadyCompleted, got %v", err)
		}
	})

	t.Run("concurrent requests create one payment", func(t *testing.T) {
		f := newPaymentFixture(t, 5100)
		f.gateway.delay = 5 * time.Millisecond

		var wg sync.WaitGroup
		results := make([]ProviderOrderResult, 16)
		errs := make([]error, 16)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = f.uc.CreateProviderOrder(ctx, "b1", owner)
			}(i)
		}
		wg.Wait()

		paymentID, orderID := "", ""
		for i, err := range errs {
			if err != nil {
				t.Fatalf("request %d failed: %v", i, err)
			}
			if paymentID == "" {
				paymentID, orderID = results[i].Payment.ID, results[i].Order.ID
			}
			if results[i].Payment.ID != paymentID || results[i].Order.ID != orderID {
				t.Fatalf("request %d got a different payment/order: %+v", i, results[i])
			}
		}
		stored := f.payment(t)
		if stored.ID != paymentID || stored.ProviderPaymentID != orderID {
			t.Fatalf("stored payment mismatch: %+v", stored)
		}
		all, _ := f.store.Payments().ListByStatus(ctx, entities.PaymentStatusPending)
		if len(all) != 1 {
			t.Fatalf("expected exactly one payment row, got %d", len(all))
		}
	})
}

func TestPaymentUseCase_VerifyClientSignature(t *testing.T) {
	ctx := context.Background()

	t.Run("secret not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentSettings{})
		_, err := uc.VerifyClientSignature(ctx, VerifySignatureInput{OrderID: "o", PaymentID: "p", Signature: "s"}, owner)
		if !errors.Is(err, ErrSignatureSecretMissing) || !errors.Is(err, ErrUnavailable) {
			t.Fatalf("expected ErrSignatureSecretMissing, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentSettings{KeySecret: testSecret})
		for _, in := range []VerifySignatureInput{
			{PaymentID: "p", Signature: "s"},
			{OrderID: "o", Signature: "s"},
			{OrderID: "o", PaymentID: "p", Signature: " "},
		} {
			if _, err := uc.VerifyClientSignature(ctx, in, owner); !errors.Is(err, ErrInvalidVerifyPayload) {
				t.Fatalf("expected ErrInvalidVerifyPayload for %+v, got %v", in, err)
			}
		}
	})

	t.Run("signature mismatch", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentSettings{KeySecret: testSecret})
		good := sign("order_abc", "pay_123")
		for _, in := range []VerifySignatureInput{
			{OrderID: "order_abc", PaymentID: "pay_123", Signature: "deadbeef"},
			{OrderID: "pay_123", PaymentID: "order_abc", Signature: good},
		} {
			_, err := uc.VerifyClientSignature(ctx, in, owner)
			if !errors.Is(err, ErrSignatureMismatch) || err.Error() != "signature verification failed" {
				t.Fatalf("expected signature failure for %+v, got %v", in, err)
			}
		}
	})

	t.Run("padded signature is not normalized", func(t *testing.T) {
		f := newPaymentFixture(t, 5100)
		res, err := f.uc.CreateProviderOrder(ctx, "b1", owner)
		if err != nil {
			t.Fatalf("order: %v", err)
		}
		good := sign(res.Order.ID, "pay_1")
		for _, sig := range []string{" " + good, good + "\n", "  " + good + "  "} {
			in := VerifySignatureInput{OrderID: res.Order.ID, PaymentID: "pay_1", Signature: sig}
			if _, err := f.uc.VerifyClientSignature(ctx, in, owner); !errors.Is(err, ErrSignatureMismatch) {
				t.Fatalf("expected ErrSignatureMismatch for %q, got %v", sig, err)
			}
		}
		if f.payment(t).Status != entities.PaymentStatusPending || f.booking(t).Status != entities.BookingStatusPending {
			t.Fatalf("state changed: payment=%+v booking=%+v", f.payment(t), f.booking(t))
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, nil, nil, nil, PaymentSettings{KeySecret: testSecret})

		payments.EXPECT().GetByProviderPaymentID(gomock.Any(), "order_abc").Return(entities.Payment{}, nil)

		_, err := uc.VerifyClientSignature(ctx, VerifySignatureInput{OrderID: "order_abc", PaymentID: "pay_123", Signature: sign("order_abc", "pay_123")}, owner)
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		f := newPaymentFixture(t, 5100)
		res, err := f.uc.CreateProviderOrder(ctx, "b1", owner)
		if err != nil {
			t.Fatalf("order: %v", err)
		}
		in := VerifySignatureInput{OrderID: res.Order.ID, PaymentID: "pay_1", Signature: sign(res.Order.ID, "pay_1")}
		if _, err := f.uc.VerifyClientSignature(ctx, in, other); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if f.payment(t).Status != entities.PaymentStatusPending {
			t.Fatalf("payment must stay pending")
		}
	})

	t.Run("settles payment and booking together, idempotently", func(t *testing.T) {
		f := newPaymentFixture(t, 5100)
		res, err := f.uc.CreateProviderOrder(ctx, "b1", owner)
		if err != nil {
			t.Fatalf("order: %v", err)
		}
		in := VerifySignatureInput{OrderID: res.Order.ID, PaymentID: "pay_1", Signature: sign(res.Order.ID, "pay_1")}

		for i := 0; i < 2; i++ {
			out, err := f.uc.VerifyClientSignature(ctx, in, owner)
			if err != nil {
				t.Fatalf("verify #%d: %v", i, err)
			}
			if out.Payment.Status != entities.PaymentStatusSuccess || out.Booking.Status != entities.BookingStatusConfirmed {
				t.Fatalf("verify #%d unexpected result: %+v", i, out)
			}
		}
		if f.payment(t).Status != entities.PaymentStatusSuccess || f.booking(t).Status != entities.BookingStatusConfirmed {
			t.Fatalf("store not settled: payment=%+v booking=%+v", f.payment(t), f.booking(t))
		}
	})

	t.Run("admin may verify", func(t *testing.T) {
		f := newPaymentFixture(t, 5100)
		res, _ := f.uc.CreateProviderOrder(ctx, "b1", owner)
		in := VerifySignatureInput{OrderID: res.Order.ID, PaymentID: "pay_1", Signature: sign(res.Order.ID, "pay_1")}
		if _, err := f.uc.VerifyClientSignature(ctx, in, admin); err != nil {
			t.Fatalf("admin verify: %v", err)
		}
	})

	t.Run("cancelled booking is not resurrected", func(t *testing.T) {
		f := newPaymentFixture(t, 5100)
		res, _ := f.uc.CreateProviderOrder(ctx, "b1", owner)
		if _, err := f.store.Bookings().UpdateStatus(ctx, "b1", entities.BookingStatusCancelled, []entities.BookingStatus{entities.BookingStatusPending}); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		in := VerifySignatureInput{OrderID: res.Order.ID, PaymentID: "pay_1", Signature: sign(res.Order.ID, "pay_1")}
		if _, err := f.uc.VerifyClientSignature(ctx, in, owner); !errors.Is(err, ErrBookingCancelled) || !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrBookingCancelled, got %v", err)
		}
		if f.payment(t).Status != entities.PaymentStatusPending || f.booking(t).Status != entities.BookingStatusCancelled {
			t.Fatalf("state changed: payment=%+v booking=%+v", f.payment(t), f.booking(t))
		}
	})

	t.Run("lost settle race re-reads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewPaymentUseCase(payments, bookings, nil, nil, PaymentSettings{KeySecret: testSecret})

		pending := entities.Payment{ID: "p1", BookingID: "b1", ProviderPaymentID: "order_1", Status: entities.PaymentStatusPending}
		payments.EXPECT().GetByProviderPaymentID(gomock.Any(), "order_1").Return(pending, nil)
		gomock.InOrder(
			bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1", Status: entities.BookingStatusPending}, nil),
			bookings.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1", Status: entities.BookingStatusConfirmed}, nil),
		)
		payments.EXPECT().MarkSucceeded(gomock.Any(), "p1", "b1").Return(interfaces.ErrConditionFailed)
		settled := pending
		settled.Status = entities.PaymentStatusSuccess
		payments.EXPECT().GetByID(gomock.Any(), "p1").Return(settled, nil)

		out, err := uc.VerifyClientSignature(ctx, VerifySignatureInput{OrderID: "order_1", PaymentID: "pay_1", Signature: sign("order_1", "pay_1")}, owner)
		if err != nil {
			t.Fatalf("expected no-op success, got %v", err)
		}
		if out.Booking.Status != entities.BookingStatusConfirmed || out.Payment.Status != entities.PaymentStatusSuccess {
			t.Fatalf("unexpected result: %+v", out)
		}
	})
}

func TestPaymentUseCase_HandleProviderWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid json", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, PaymentSettings{})
		if _, err := uc.HandleProviderWebhook(ctx, []byte("{")); !errors.Is(err, ErrInvalidWebhookPayload) {
			t.Fatalf("expected ErrInvalidWebhookPayload, got %v", err)
		}
	})

	t.Run("ignored events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, nil, nil, nil, PaymentSettings{})

		payments.EXPECT().GetByProviderPaymentID(gomock.Any(), "order_unknown").Return(entities.Payment{}, nil)

		bodies := [][]byte{
			[]byte(`{"event":"payment.failed","payload":{"payment":{"entity":{"order_id":"order_1"}}}}`),
			[]byte(`{"event":"payment.captured","payload":{}}`),
			capturedEvent("order_unknown"),
		}
		for _, body := range bodies {
			res, err := uc.HandleProviderWebhook(ctx, body)
			if err != nil || res.Status != WebhookStatusIgnored {
				t.Fatalf("expected ignored for %s, got %+v err=%v", body, res, err)
			}
		}
	})

	t.Run("captured event settles and replays safely", func(t *testing.T) {
		f := newPaymentFixture(t, 5100)
		res, err := f.uc.CreateProviderOrder(ctx, "b1", owner)
		if err != nil {
			t.Fatalf("order: %v", err)
		}
		for i := 0; i < 2; i++ {
			out, err := f.uc.HandleProviderWebhook(ctx, capturedEvent(res.Order.ID))
			if err != nil || out.Status != WebhookStatusSuccess || out.PaymentID != res.Payment.ID {
				t.Fatalf("delivery #%d: %+v err=%v", i, out, err)
			}
		}
		if f.payment(t).Status != entities.PaymentStatusSuccess || f.booking(t).Status != entities.BookingStatusConfirmed {
			t.Fatalf("store not settled")
		}
	})

	t.Run("cancelled booking is acknowledged and left alone", func(t *testing.T) {
		f := newPaymentFixture(t, 5100)
		res, _ := f.uc.CreateProviderOrder(ctx, "b1", owner)
		if _, err := f.store.Bookings().UpdateStatus(ctx, "b1", entities.BookingStatusCancelled, []entities.BookingStatus{entities.BookingStatusPending}); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		out, err := f.uc.HandleProviderWebhook(ctx, capturedEvent(res.Order.ID))
		if err != nil || out.Status != WebhookStatusIgnored {
			t.Fatalf("expected ignored, got %+v err=%v", out, err)
		}
		if f.payment(t).Status != entities.PaymentStatusPending {
			t.Fatalf("payment must stay pending")
		}
	})

	t.Run("store errors surface for provider retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, nil, nil, nil, PaymentSettings{})

		payments.EXPECT().GetByProviderPaymentID(gomock.Any(), "order_1").Return(entities.Payment{}, errors.New("dynamodb throttled"))

		if _, err := uc.HandleProviderWebhook(ctx, capturedEvent("order_1")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("verify and webhook racing keep the pair consistent", func(t *testing.T) {
		f := newPaymentFixture(t, 5100)
		res, _ := f.uc.CreateProviderOrder(ctx, "b1", owner)
		in := VerifySignatureInput{OrderID: res.Order.ID, PaymentID: "pay_1", Signature: sign(res.Order.ID, "pay_1")}

		var wg sync.WaitGroup
		errs := make(chan error, 20)
		for i := 0; i < 10; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err := f.uc.VerifyClientSignature(ctx, in, owner)
				errs <- err
			}()
			go func() {
				defer wg.Done()
				_, err := f.uc.HandleProviderWebhook(ctx, capturedEvent(res.Order.ID))
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		paid := f.payment(t).Status == entities.PaymentStatusSuccess
		confirmed := f.booking(t).Status == entities.BookingStatusConfirmed
		if !paid || !confirmed {
			t.Fatalf("inconsistent pair: paid=%v confirmed=%v", paid, confirmed)
		}
	})
}

func TestPaymentUseCase_GetByBooking(t *testing.T) {
	ctx := context.Background()
	f := newPaymentFixture(t, 5100)

	if _, err := f.uc.GetByBooking(ctx, "b1", owner); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
	created, err := f.uc.CreatePaymentRecord(ctx, "b1", owner, "razorpay")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.uc.GetByBooking(ctx, "b1", other); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	got, err := f.uc.GetByBooking(ctx, "b1", admin)
	if err != nil || got.ID != created.ID {
		t.Fatalf("admin read: %+v err=%v", got, err)
	}
}
