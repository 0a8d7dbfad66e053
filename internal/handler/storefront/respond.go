package storefront

import (
	"encoding/json"
	"net/http"

	"github.com/dukerupert/ezonekart/internal/domain"
	"github.com/dukerupert/ezonekart/internal/middleware"
)

// errorResponse is the JSON error envelope for all storefront routes
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps a domain error to an HTTP status and writes the
// JSON error envelope. Internal errors are logged with full detail but
// the response carries only a generic message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	status := statusFromCode(code)

	if status >= http.StatusInternalServerError {
		middleware.GetLogger(r.Context()).Error("request failed",
			"error", err,
			"op", domain.ErrorOp(err),
		)
	}

	respondJSON(w, status, errorResponse{
		Error: errorBody{
			Code:    code,
			Message: domain.ErrorMessage(err),
		},
	})
}

func statusFromCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EPAYMENT:
		return http.StatusPaymentRequired
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
