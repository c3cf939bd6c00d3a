package http

import (
	"context"
	"errors"
	"net/http"

	"contabilidad/internal/core"
	applog "contabilidad/internal/log"
	"contabilidad/internal/source"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrUnknownCategory), errors.Is(err, core.ErrInvalidID):
		return http.StatusBadRequest, applog.ErrorTypeValidation
	case errors.Is(err, source.ErrNotFound):
		return http.StatusNotFound, applog.ErrorTypeNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, applog.ErrorTypeUpstream
	default:
		return http.StatusInternalServerError, applog.ErrorTypeInternal
	}
}

// writeError logs err and sends its JSON error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, errType := statusFor(err)
	logger := applog.FromContext(r.Context())
	msg := "Request failed"
	if status >= 500 {
		logger.ErrorContext(r.Context(), msg, applog.FieldError, err, applog.FieldErrorType, errType, applog.FieldPath, r.URL.Path)
	} else {
		logger.DebugContext(r.Context(), msg, applog.FieldError, err, applog.FieldErrorType, errType, applog.FieldPath, r.URL.Path)
	}
	ErrorResponse(status, publicMessage(status, err)).Write(w)
}

// publicMessage hides internal error details behind the status text.
func publicMessage(status int, err error) string {
	if status >= 500 {
		return http.StatusText(status)
	}
	return err.Error()
}

// upstream marks a source failure as a bad gateway unless it is already classified.
func upstream(w http.ResponseWriter, r *http.Request, err error) {
	if status, _ := statusFor(err); status != http.StatusInternalServerError {
		writeError(w, r, err)
		return
	}
	applog.FromContext(r.Context()).ErrorContext(r.Context(), "Movement source failed",
		applog.FieldError, err,
		applog.FieldErrorType, applog.ErrorTypeUpstream)
	ErrorResponse(http.StatusBadGateway, "movement source unavailable").Write(w)
}
