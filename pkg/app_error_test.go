package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		e := NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
		if e.Error() != "Booking not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "BOOKING_NOT_FOUND" || body.Status != http.StatusNotFound {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wrapped error is not exposed", func(t *testing.T) {
		cause := errors.New("dynamodb timeout")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if body := e.ToHTTPError(); body.Message != "An internal error occurred" {
			t.Fatalf("cause leaked into body: %+v", body)
		}
	})

	t.Run("zero status defaults to 500", func(t *testing.T) {
		e := &AppError{Code: "X", Message: "x"}
		if e.ToHTTPError().Status != http.StatusInternalServerError {
			t.Fatalf("expected 500")
		}
	})
}
