package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Pagination mirrors the list-response metadata block.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type Envelope struct {
	Message    string            `json:"message"`
	Data       any               `json:"data,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	RequestID  string            `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, message string, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Message: message, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, message string, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Message: message, Data: data, RequestID: requestID})
}

func List(w http.ResponseWriter, message string, data any, pagination Pagination, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Message: message, Data: data, Pagination: &pagination, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, message, requestID string) {
	WriteJSON(w, status, Envelope{Message: message, RequestID: requestID})
}

// FailWithDetails carries per-field validation issues alongside the message.
func FailWithDetails(w http.ResponseWriter, status int, message string, details map[string]string, requestID string) {
	WriteJSON(w, status, Envelope{Message: message, Details: details, RequestID: requestID})
}
