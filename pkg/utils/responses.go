package utils

import (
	"encoding/json"
	"net/http"
)

// ResponseJSON writes an arbitrary payload with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ResponseData wraps the payload in {"data": ...}.
func ResponseData(w http.ResponseWriter, code int, data any) {
	ResponseJSON(w, code, map[string]any{"data": data})
}

// ResponseMessageData writes {"message": ..., "data": ...}.
func ResponseMessageData(w http.ResponseWriter, code int, message string, data any) {
	ResponseJSON(w, code, map[string]any{"message": message, "data": data})
}

// ResponseError writes {"error": ...}.
func ResponseError(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, map[string]any{"error": message})
}

// ResponseUnauthorized writes the 401 envelope with a reason.
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, map[string]any{
		"error":   "Unauthorized",
		"message": message,
	})
}

// ResponseValidation writes the 422 envelope with per-field message lists.
func ResponseValidation(w http.ResponseWriter, messages map[string][]string) {
	ResponseJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":    "Validation failed",
		"messages": messages,
	})
}

// ResponseNoContent writes an empty 204.
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ResponseInternalError writes the generic 500 body.
func ResponseInternalError(w http.ResponseWriter) {
	ResponseError(w, http.StatusInternalServerError, "Internal server error")
}
