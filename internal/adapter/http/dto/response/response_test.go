package response

import (
	"encoding/json"
	"strings"
	"testing"

	"pandit_booking/internal/domain/entities"
	"pandit_booking/internal/usecase"
)

func TestCatalogResponses_FieldNames(t *testing.T) {
	cases := map[string]struct {
		value any
		keys  []string
	}{
		"pandit": {
			FromPandit(entities.Pandit{ID: "pd1", City: "Varanasi", State: "UP", PhotoURL: "https://img.example/p.png", Bio: "Vedic"}),
			[]string{`"city":"Varanasi"`, `"state":"UP"`, `"photo_url":`, `"bio":"Vedic"`},
		},
		"puja type": {
			FromPujaType(entities.PujaType{ID: "pt1", NameLocal: "पूजा", NameEN: "Puja", Benefits: "Peace", ImageURL: "https://img", DetailedDescription: "Long", IsVirtual: true}),
			[]string{`"name_local":"पूजा"`, `"name_en":"Puja"`, `"benefits":"Peace"`, `"image_url":`, `"detailed_description":"Long"`, `"is_virtual":true`},
		},
		"consultation": {
			FromConsultation(entities.Consultation{ID: "c1", Notes: "muhurat", Status: entities.BookingStatusPending}),
			[]string{`"consultation_date":`, `"notes":"muhurat"`, `"status":"pending"`},
		},
		"virtual session": {
			FromVirtualSessions([]entities.VirtualSession{{ID: "vs1", PujaTypeID: "pt1", IsActive: true}}),
			[]string{`"scheduled_at":`, `"puja_type_id":"pt1"`, `"is_active":true`},
		},
		"user": {
			FromUsers([]entities.User{{ID: "u1", City: "Pune", State: "MH"}}),
			[]string{`"city":"Pune"`, `"state":"MH"`},
		},
	}
	for name, tc := range cases {
		raw, err := json.Marshal(tc.value)
		if err != nil {
			t.Fatalf("%s: marshal: %v", name, err)
		}
		for _, k := range tc.keys {
			if !strings.Contains(string(raw), k) {
				t.Fatalf("%s: expected %s in %s", name, k, raw)
			}
		}
	}
}

func TestFromProviderOrder(t *testing.T) {
	res := FromProviderOrder(usecase.ProviderOrderResult{
		KeyID:   "rzp_test",
		Order:   entities.ProviderOrder{ID: "order_1", AmountMinor: 50100, Currency: "INR", Raw: json.RawMessage(`{"id":"order_1"}`)},
		Payment: entities.Payment{ID: "p1", Amount: 501},
		Booking: entities.Booking{ID: "b1"},
		User:    entities.User{Name: "Asha", Phone: "+91 90000 00000"},
		Reused:  true,
	})
	if res.OrderID != "order_1" || res.AmountMin != 50100 || res.Amount != 501 || res.BookingID != "b1" || !res.Reused {
		t.Fatalf("unexpected response %+v", res)
	}
	if res.User.Name != "Asha" || res.User.Email != "" {
		t.Fatalf("unexpected checkout user %+v", res.User)
	}
}

func TestFromVerification(t *testing.T) {
	res := FromVerification(usecase.VerificationResult{
		Payment: entities.Payment{ID: "p1"},
		Booking: entities.Booking{ID: "b1", Status: entities.BookingStatusConfirmed},
	})
	if res.Status != usecase.WebhookStatusSuccess || res.BookingStatus != "confirmed" {
		t.Fatalf("unexpected response %+v", res)
	}
}

func TestFromBookings_NilIsEmpty(t *testing.T) {
	if got := FromBookings(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
