package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase/interfaces"

	"github.com/razorpay/razorpay-go"
)

var (
	ErrMissingRazorpayCredentials   = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
	ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")
	ErrRazorpayInvalidOrder         = errors.New("razorpay returned an order without id")
)

// orderCreator is the part of the Razorpay SDK order resource the gateway calls.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type RazorpayGateway struct {
	orders   orderCreator
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*RazorpayGateway)(nil)

// NewRazorpayGateway builds the gateway. In mock mode no credentials are needed and
// orders are fabricated locally.
func NewRazorpayGateway(keyID, keySecret string, mockMode bool) (*RazorpayGateway, error) {
	if mockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &RazorpayGateway{mockMode: true}, nil
	}
	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing razorpay credentials")
		return nil, ErrMissingRazorpayCredentials
	}
	client := razorpay.NewClient(keyID, keySecret)
	log.Printf("[payment][gateway] Razorpay client initialized key_id=%s", keyID)
	return &RazorpayGateway{orders: client.Order}, nil
}

type createResult struct {
	body map[string]interface{}
	err  error
}

// CreateOrder creates a provider order. The SDK call is not context aware, so it runs
// in its own goroutine and the caller is released as soon as ctx is done.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, req entities.ProviderOrderRequest) (entities.ProviderOrder, error) {
	if g != nil && g.mockMode {
		return mockOrder(req)
	}
	if g == nil || g.orders == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.ProviderOrder{}, ErrRazorpayGatewayNotConfigured
	}

	// payment_capture=1 makes Razorpay capture on authorization.
	data := map[string]interface{}{
		"amount":          req.AmountMinor,
		"currency":        req.Currency,
		"receipt":         req.Receipt,
		"payment_capture": 1,
	}
	if len(req.Notes) > 0 {
		notes := make(map[string]interface{}, len(req.Notes))
		for k, v := range req.Notes {
			notes[k] = v
		}
		data["notes"] = notes
	}
	log.Printf("[payment][gateway] create order start receipt=%s amount_minor=%d currency=%s", req.Receipt, req.AmountMinor, req.Currency)

	done := make(chan createResult, 1)
	go func() {
		body, err := g.orders.Create(data, nil)
		done <- createResult{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		log.Printf("[payment][gateway] create order abandoned receipt=%s err=%v", req.Receipt, ctx.Err())
		return entities.ProviderOrder{}, ctx.Err()
	case res := <-done:
		if res.err != nil {
			log.Printf("[payment][gateway] sdk create failed receipt=%s err=%v", req.Receipt, res.err)
			return entities.ProviderOrder{}, res.err
		}
		order, err := parseOrder(res.body)
		if err != nil {
			log.Printf("[payment][gateway] response parse failed receipt=%s err=%v", req.Receipt, err)
			return entities.ProviderOrder{}, err
		}
		log.Printf("[payment][gateway] create order success order_id=%s status=%s", order.ID, order.Status)
		return order, nil
	}
}

func parseOrder(body map[string]interface{}) (entities.ProviderOrder, error) {
	id, _ := body["id"].(string)
	if id == "" {
		return entities.ProviderOrder{}, ErrRazorpayInvalidOrder
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return entities.ProviderOrder{}, err
	}
	order := entities.ProviderOrder{ID: id, Raw: raw}
	order.Currency, _ = body["currency"].(string)
	order.Receipt, _ = body["receipt"].(string)
	order.Status, _ = body["status"].(string)
	order.AmountMinor = toInt64(body["amount"])
	return order, nil
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(math.Round(n))
	case int64:
		return n
	case int:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	}
	return 0
}

func mockOrder(req entities.ProviderOrderRequest) (entities.ProviderOrder, error) {
	now := time.Now().UTC()
	id := fmt.Sprintf("order_mock_%d", now.UnixNano())
	body := map[string]interface{}{
		"id":         id,
		"entity":     "order",
		"amount":     req.AmountMinor,
		"amount_due": req.AmountMinor,
		"currency":   req.Currency,
		"receipt":    req.Receipt,
		"status":     "created",
		"notes":      req.Notes,
		"created_at": now.Unix(),
	}
	raw, err := json.Marshal(body)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return entities.ProviderOrder{}, err
	}
	log.Printf("[payment][gateway] mock create order success order_id=%s", id)
	return entities.ProviderOrder{
		ID:          id,
		AmountMinor: req.AmountMinor,
		Currency:    req.Currency,
		Receipt:     req.Receipt,
		Status:      "created",
		Raw:         raw,
	}, nil
}
