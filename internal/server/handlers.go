package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/username/vacation-planner/internal/directory"
	"github.com/username/vacation-planner/internal/session"
	"github.com/username/vacation-planner/internal/vacation"
	"github.com/username/vacation-planner/pkg/dateutil"
)

// maxRangeDays bounds the ranges accepted on the wire
const maxRangeDays = 2 * 366

var errRangeTooLong = fmt.Errorf("range longer than %d days", maxRangeDays)

type loginRequest struct {
	EmployeeID string `json:"employeeId"`
}

type rangeRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type vacationRequest struct {
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	VacationType string `json:"vacationType"`
	Notes        string `json:"notes"`
}

type sessionResponse struct {
	User          directory.Employee `json:"user"`
	Favorites     []string           `json:"favorites"`
	FavoritesView bool               `json:"favoritesView"`
	StartedAt     time.Time          `json:"startedAt"`
}

type favoriteToggleResponse struct {
	ID    string `json:"id"`
	Added bool   `json:"added"`
}

type viewToggleResponse struct {
	On bool `json:"on"`
}

func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func parseDates(start, end string) (time.Time, time.Time, error) {
	s, err := dateutil.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("startDate: %w", err)
	}
	e, err := dateutil.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate: %w", err)
	}
	if dateutil.DaysInRange(s, e) > maxRangeDays {
		return time.Time{}, time.Time{}, errRangeTooLong
	}
	return s, e, nil
}

// parse returns the range as given; validation is left to the planner
func (req rangeRequest) parse() (vacation.Range, error) {
	s, e, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return vacation.Range{}, err
	}
	return vacation.Range{Start: s, End: e}, nil
}

func (req vacationRequest) parse() (time.Time, time.Time, vacation.Type, error) {
	s, e, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	t, err := vacation.ParseType(req.VacationType)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	return s, e, t, nil
}

func monthParam(r *http.Request) (time.Time, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year %q", chi.URLParam(r, "year"))
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month %q", chi.URLParam(r, "month"))
	}
	return dateutil.Date(year, time.Month(month), 1), nil
}

func toSessionResponse(s *session.Session) sessionResponse {
	favs := s.Favorites().IDs()
	if favs == nil {
		favs = []string{}
	}
	return sessionResponse{
		User:          s.User(),
		Favorites:     favs,
		FavoritesView: s.FavoritesView(),
		StartedAt:     s.StartedAt(),
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	sess, err := s.planner.Sessions().Login(req.EmployeeID)
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, toSessionResponse(sess))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.planner.Sessions().Logout()
	s.success(w, r, nil)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.planner.Sessions().Current()
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, toSessionResponse(sess))
}

func (s *Server) handleEmployees(w http.ResponseWriter, r *http.Request) {
	employees := s.planner.Directory().List()
	if sess, err := s.planner.Sessions().Current(); err == nil {
		directory.SortForViewer(employees, sess.User().ID)
	}
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		filtered := employees[:0]
		for _, e := range employees {
			if e.MatchesName(q) {
				filtered = append(filtered, e)
			}
		}
		employees = filtered
	}
	s.success(w, r, employees)
}

func (s *Server) handleListVacations(w http.ResponseWriter, r *http.Request) {
	records, err := s.planner.Records(r.URL.Query().Get("employeeId"))
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, records)
}

func (s *Server) handleGetVacation(w http.ResponseWriter, r *http.Request) {
	rec, err := s.planner.Record(chi.URLParam(r, "id"))
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, rec)
}

func (s *Server) handleAddVacation(w http.ResponseWriter, r *http.Request) {
	var req vacationRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	start, end, t, err := req.parse()
	if err != nil {
		s.failParse(w, r, err)
		return
	}
	rec, err := s.planner.AddSingle(start, end, t, req.Notes)
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.created(w, r, rec)
}

func (s *Server) handleEditVacation(w http.ResponseWriter, r *http.Request) {
	var req vacationRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	start, end, t, err := req.parse()
	if err != nil {
		s.failParse(w, r, err)
		return
	}
	rec, err := s.planner.EditSingle(chi.URLParam(r, "id"), start, end, t, req.Notes)
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, rec)
}

func (s *Server) handleDeleteVacation(w http.ResponseWriter, r *http.Request) {
	records, err := s.planner.DeleteSingle(chi.URLParam(r, "id"))
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, records)
}

func (s *Server) handleSubmitRange(w http.ResponseWriter, r *http.Request) {
	var req vacationRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}
	start, end, t, err := req.parse()
	if err != nil {
		s.failParse(w, r, err)
		return
	}
	records, err := s.planner.SubmitRange(vacation.Range{Start: start, End: end}, t, req.Notes)
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, records)
}

func (s *Server) handleDeleteRange(w http.ResponseWriter, r *http.Request) {
	rng, ok := s.decodeRange(w, r)
	if !ok {
		return
	}
	records, err := s.planner.DeleteRange(rng)
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, records)
}

func (s *Server) handleRangeSummary(w http.ResponseWriter, r *http.Request) {
	rng, ok := s.decodeRange(w, r)
	if !ok {
		return
	}
	summary, err := s.planner.RangeTypeSummary(rng)
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, summary)
}

func (s *Server) handleRangeSelect(w http.ResponseWriter, r *http.Request) {
	rng, ok := s.decodeRange(w, r)
	if !ok {
		return
	}
	intent, err := s.planner.RangeSelect(rng)
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, intent)
}

func (s *Server) handleDayClick(w http.ResponseWriter, r *http.Request) {
	date, err := dateutil.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	intent, err := s.planner.DayClick(date)
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, intent)
}

func (s *Server) handleNewRequest(w http.ResponseWriter, r *http.Request) {
	s.success(w, r, s.planner.NewRequest())
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	mv, err := s.planner.Month(month)
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, mv)
}

func (s *Server) handleMatrix(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	mv, err := s.planner.Matrix(month, r.URL.Query().Get("q"))
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, mv)
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	b, err := s.planner.Balance()
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, b)
}

func (s *Server) handleHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		s.badRequest(w, r, fmt.Errorf("invalid year %q", chi.URLParam(r, "year")))
		return
	}
	s.success(w, r, s.planner.Holidays(year))
}

func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := s.planner.Favorites()
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	if favs == nil {
		favs = []directory.Employee{}
	}
	s.success(w, r, favs)
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	added, err := s.planner.ToggleFavorite(id)
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, favoriteToggleResponse{ID: id, Added: added})
}

func (s *Server) handleToggleFavoritesView(w http.ResponseWriter, r *http.Request) {
	on, err := s.planner.ToggleFavoritesView()
	if err != nil {
		s.failErr(w, r, err)
		return
	}
	s.success(w, r, viewToggleResponse{On: on})
}

func (s *Server) decodeRange(w http.ResponseWriter, r *http.Request) (vacation.Range, bool) {
	var req rangeRequest
	if err := decode(r, &req); err != nil {
		s.badRequest(w, r, err)
		return vacation.Range{}, false
	}
	rng, err := req.parse()
	if err != nil {
		s.failParse(w, r, err)
		return vacation.Range{}, false
	}
	return rng, true
}

// failParse maps request parse errors: over-long ranges and unknown types get
// their own codes, anything else is bad_request
func (s *Server) failParse(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errRangeTooLong) {
		s.fail(w, r, http.StatusBadRequest, "range_too_long", err.Error())
		return
	}
	if errors.Is(err, vacation.ErrInvalidType) {
		s.failErr(w, r, err)
		return
	}
	s.badRequest(w, r, err)
}
