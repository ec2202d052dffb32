package server

import (
	"errors"
	"net/http"

	"github.com/username/vacation-planner/internal/balance"
	"github.com/username/vacation-planner/internal/directory"
	"github.com/username/vacation-planner/internal/planner"
	"github.com/username/vacation-planner/internal/session"
	"github.com/username/vacation-planner/internal/vacation"
	"go.uber.org/zap"
)

// errorStatus maps domain errors to an HTTP status and error code
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, vacation.ErrInvalidRange),
		errors.Is(err, vacation.ErrInvalidType),
		errors.Is(err, vacation.ErrInvalidSingleDayType):
		return http.StatusBadRequest, "invalid_vacation"
	case errors.Is(err, planner.ErrSelfFavorite):
		return http.StatusBadRequest, "self_favorite"
	case errors.Is(err, session.ErrNotLoggedIn):
		return http.StatusUnauthorized, "not_logged_in"
	case errors.Is(err, planner.ErrNotOwner):
		return http.StatusForbidden, "not_owner"
	case errors.Is(err, vacation.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, directory.ErrUnknownEmployee):
		return http.StatusNotFound, "unknown_employee"
	case errors.Is(err, balance.ErrNoAllotment):
		return http.StatusNotFound, "no_allotment"
	case errors.Is(err, vacation.ErrOverlap):
		return http.StatusConflict, "overlap"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (s *Server) failErr(w http.ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestID(r.Context())),
			zap.Error(err))
		s.fail(w, r, status, code, "internal error")
		return
	}
	s.fail(w, r, status, code, err.Error())
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	s.fail(w, r, http.StatusBadRequest, "bad_request", err.Error())
}
