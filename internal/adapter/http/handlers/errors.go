package handlers

import (
	"errors"
	"log"
	"net/http"

	"pandit_booking/internal/adapter/http/middleware"
	"pandit_booking/internal/usecase"
	"pandit_booking/pkg"

	"github.com/gin-gonic/gin"
)

var errorCodes = map[error]string{
	usecase.ErrUnauthenticated:           "UNAUTHORIZED",
	usecase.ErrAdminRequired:             "ADMIN_REQUIRED",
	usecase.ErrRoleNotPermitted:          "ROLE_NOT_PERMITTED",
	usecase.ErrInvalidBookingID:          "INVALID_BOOKING_ID",
	usecase.ErrInvalidPujaTypeID:         "INVALID_PUJA_TYPE_ID",
	usecase.ErrInvalidScheduledAt:        "INVALID_SCHEDULED_AT",
	usecase.ErrInvalidBookingStatus:      "INVALID_BOOKING_STATUS",
	usecase.ErrEmptyBookingUpdate:        "EMPTY_UPDATE",
	usecase.ErrEmptyPujaUpdate:           "EMPTY_UPDATE",
	usecase.ErrInvalidConsultationDate:   "INVALID_CONSULTATION_DATE",
	usecase.ErrBookingNotFound:           "BOOKING_NOT_FOUND",
	usecase.ErrPujaTypeNotFound:          "PUJA_TYPE_NOT_FOUND",
	usecase.ErrPanditNotFound:            "PANDIT_NOT_FOUND",
	usecase.ErrPanditNotApproved:         "PANDIT_NOT_APPROVED",
	usecase.ErrBookingNotOwned:           "BOOKING_NOT_OWNED",
	usecase.ErrBookingUpdateForbidden:    "BOOKING_UPDATE_FORBIDDEN",
	usecase.ErrBookingNotCancellable:     "BOOKING_NOT_CANCELLABLE",
	usecase.ErrBookingInvalidTransition:  "INVALID_STATUS_TRANSITION",
	usecase.ErrBookingStateChanged:       "BOOKING_STATE_CHANGED",
	usecase.ErrInvalidPaymentProvider:    "INVALID_PAYMENT_PROVIDER",
	usecase.ErrInvalidVerifyPayload:      "INVALID_VERIFICATION_PAYLOAD",
	usecase.ErrSignatureMismatch:         "SIGNATURE_VERIFICATION_FAILED",
	usecase.ErrInvalidWebhookPayload:     "INVALID_WEBHOOK_PAYLOAD",
	usecase.ErrPaymentNotFound:           "PAYMENT_NOT_FOUND",
	usecase.ErrPaymentAlreadyCompleted:   "PAYMENT_ALREADY_COMPLETED",
	usecase.ErrPaymentStateChanged:       "PAYMENT_STATE_CHANGED",
	usecase.ErrBookingCancelled:          "BOOKING_CANCELLED",
	usecase.ErrPaymentNotPending:         "PAYMENT_NOT_PENDING",
	usecase.ErrPaymentGatewayUnavailable: "PAYMENT_GATEWAY_UNAVAILABLE",
	usecase.ErrSignatureSecretMissing:    "PAYMENT_GATEWAY_UNAVAILABLE",
	usecase.ErrProviderOrderFailed:       "PROVIDER_ORDER_FAILED",
	usecase.ErrInvalidPanditID:           "INVALID_PANDIT_ID",
	usecase.ErrInvalidPanditLocation:     "INVALID_PANDIT_LOCATION",
	usecase.ErrPanditProfileExists:       "PANDIT_PROFILE_EXISTS",
	usecase.ErrPanditProfileNotOwned:     "PANDIT_PROFILE_NOT_OWNED",
	usecase.ErrUserNotFound:              "USER_NOT_FOUND",
	usecase.ErrPanditApprovalConflict:    "PANDIT_APPROVAL_CONFLICT",
	usecase.ErrInvalidPujaName:           "INVALID_PUJA_NAME",
	usecase.ErrInvalidPujaPrice:          "INVALID_PUJA_PRICE",
	usecase.ErrInvalidDuration:           "INVALID_DURATION",
	usecase.ErrInvalidConsultationPrice:  "INVALID_CONSULTATION_PRICE",
	usecase.ErrPanditUnavailable:         "PANDIT_UNAVAILABLE",
	usecase.ErrInvalidSessionTitle:       "INVALID_SESSION_TITLE",
	usecase.ErrInvalidSessionStream:      "INVALID_SESSION_STREAM",
}

type category struct {
	kind   error
	code   string
	status int
}

// Order matters: an error unwraps to a single category, but ErrUnauthenticated
// sits inside ErrForbidden and must win.
var categories = []category{
	{usecase.ErrUnauthenticated, "UNAUTHORIZED", http.StatusUnauthorized},
	{usecase.ErrValidation, "INVALID_REQUEST", http.StatusBadRequest},
	{usecase.ErrNotFound, "NOT_FOUND", http.StatusNotFound},
	{usecase.ErrForbidden, "FORBIDDEN", http.StatusForbidden},
	{usecase.ErrConflict, "CONFLICT", http.StatusConflict},
	{usecase.ErrInvalidState, "INVALID_STATE", http.StatusBadRequest},
	{usecase.ErrUnavailable, "SERVICE_UNAVAILABLE", http.StatusServiceUnavailable},
	{usecase.ErrUpstream, "UPSTREAM_ERROR", http.StatusBadGateway},
}

func mapError(err error) *pkg.AppError {
	for _, cat := range categories {
		if !errors.Is(err, cat.kind) {
			continue
		}
		code, msg := cat.code, cat.kind.Error()
		if target, c, ok := lookupCode(err); ok {
			code, msg = c, target.Error()
		}
		return pkg.NewDomainError(code, msg, err, cat.status)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// lookupCode finds the use case error inside err. Its message is safe to show;
// wrapped infrastructure errors are not.
func lookupCode(err error) (error, string, bool) {
	for target, code := range errorCodes {
		if errors.Is(err, target) {
			return target, code, true
		}
	}
	return nil, "", false
}

func respondError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[%s][handler] request failed path=%s user_id=%s err=%v", area, c.FullPath(), middleware.CurrentPrincipal(c).UserID, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest(c *gin.Context, area string, err error) {
	log.Printf("[%s][handler] invalid request path=%s err=%v", area, c.FullPath(), err)
	appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
