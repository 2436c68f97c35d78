package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ErrorResponse is the error envelope the admin UI and the public site
// both consume. Message carries extra human-readable context when the
// underlying failure has one.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse is the envelope for update/delete acknowledgements.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RespondError writes the standard error envelope. The optional devErr
// is always logged; its message reaches the client only on 500-class
// responses, where the admin UI surfaces the store error verbatim.
func RespondError(w http.ResponseWriter, status int, publicError string, devErrs ...error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errBody := ErrorResponse{Error: publicError}
	if len(devErrs) > 0 && devErrs[0] != nil && status >= http.StatusInternalServerError {
		errBody.Message = devErrs[0].Error()
	}
	_ = json.NewEncoder(w).Encode(errBody)

	if len(devErrs) > 0 && devErrs[0] != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErrs[0].Error(),
		}).Error(publicError)
	} else if status >= http.StatusInternalServerError {
		Logger.WithFields(logrus.Fields{
			"status": status,
		}).Error(publicError)
	}
}

// RespondWithJSON for successful cases
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
