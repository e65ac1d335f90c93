package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/checkout"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/payment"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/repository"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondServiceError maps domain sentinels to HTTP status codes.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrItemNotFound),
		errors.Is(err, repository.ErrWishlistNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())

	case errors.Is(err, service.ErrNotAuthorized),
		errors.Is(err, checkout.ErrNotAuthorized):
		respondError(w, http.StatusForbidden, "not_authorized", err.Error())

	case errors.Is(err, service.ErrAlreadyInWishlist),
		errors.Is(err, repository.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidTransition):
		respondError(w, http.StatusConflict, "conflict", err.Error())

	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, checkout.ErrInvalidQuantity),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrUnknownPaymentMethod),
		errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())

	case errors.Is(err, checkout.ErrPaymentVerificationFailed):
		respondError(w, http.StatusBadRequest, "payment_verification_failed", err.Error())

	case errors.Is(err, checkout.ErrCheckoutExpired):
		respondError(w, http.StatusGone, "checkout_expired", err.Error())

	case errors.Is(err, payment.ErrGatewayUnavailable):
		respondError(w, http.StatusBadGateway, "gateway_unavailable", err.Error())

	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
