package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// apiError is the error body of a failed response
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// envelope wraps every API response
type envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *apiError `json:"error,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("Failed to write response", zap.Error(err))
	}
}

func (s *Server) success(w http.ResponseWriter, r *http.Request, data any) {
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, RequestID: requestID(r.Context())})
}

func (s *Server) created(w http.ResponseWriter, r *http.Request, data any) {
	s.writeJSON(w, http.StatusCreated, envelope{Success: true, Data: data, RequestID: requestID(r.Context())})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	s.writeJSON(w, status, envelope{
		Success:   false,
		Error:     &apiError{Code: code, Message: message},
		RequestID: requestID(r.Context()),
	})
}
