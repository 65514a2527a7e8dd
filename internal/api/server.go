// Package api provides the HTTP server for dectime. It exposes the decimal
// time conversion and Decimal Solar Calendar mappings as a small read-only
// JSON API, with an optional Prometheus /metrics endpoint.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/astrocycle/dectime/internal/app/calendar"
	"github.com/astrocycle/dectime/internal/app/convert"
	"github.com/astrocycle/dectime/internal/domain"
)

// Version is the reported API version.
const Version = "0.1.0"

// Server serves decimal time for one profile.
type Server struct {
	converter      *convert.Converter
	cal            *calendar.Calendar
	metricsEnabled bool
	now            func() time.Time // test seam
}

// NewServer creates an API server bound to a profile. The calendar shares
// the profile's leap rule.
func NewServer(profile domain.PlanetProfile) (*Server, error) {
	cal, err := calendar.ForProfile(profile)
	if err != nil {
		return nil, err
	}
	return &Server{
		converter: convert.New(profile),
		cal:       cal,
		now:       time.Now,
	}, nil
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})
	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": Version,
			"profile": s.converter.Profile().Name,
		})
	})

	r.Get("/api/now", s.handleNow)
	r.Get("/api/convert", s.handleConvert)
	r.Route("/api/calendar", func(r chi.Router) {
		r.Get("/to-dsc", s.handleToDSC)
		r.Get("/from-dsc", s.handleFromDSC)
		r.Get("/months", s.handleMonths)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// handleNow converts the current wall clock.
// GET /api/now?places=4
func (s *Server) handleNow(w http.ResponseWriter, r *http.Request) {
	// UnixNano scaled by 10^-9 is already exact decimal; no float is ever
	// involved on this path.
	ts := decimal.New(s.now().UnixNano(), -9)
	s.convertAndWrite(w, ts, parsePlaces(r))
}

// handleConvert converts a caller-supplied Unix timestamp. The query value
// is decimal text, so it enters the decimal domain without a binary hop.
// GET /api/convert?ts=12345.6789&places=4
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("ts")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing ts parameter")
		return
	}
	ts, err := decimal.NewFromString(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ts is not a decimal number")
		return
	}
	s.convertAndWrite(w, ts, parsePlaces(r))
}

func (s *Server) convertAndWrite(w http.ResponseWriter, ts decimal.Decimal, places int) {
	res, err := s.converter.DisplayFor(ts, places)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	conversionsTotal.Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile":   s.converter.Profile().Name,
		"timestamp": ts,
		"day_index": res.DayIndex,
		"fraction":  res.Display.FractionStr,
		"percent":   res.Display.PercentStr,
		"composite": map[string]int{
			"mc": res.Display.Hundredths,
			"kc": res.Display.ThousandthsDigit,
			"c":  res.Display.UnitsDigit,
		},
	})
}

// handleToDSC maps a civil date onto the decimal calendar.
// GET /api/calendar/to-dsc?date=2026-03-01
func (s *Server) handleToDSC(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	civil, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	dsc, err := s.cal.FromGregorian(civil)
	if err != nil {
		writeCalendarError(w, err)
		return
	}
	calendarRequests.WithLabelValues("to_dsc").Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"gregorian": raw,
		"dsc":       dsc,
		"formatted": dsc.String(),
	})
}

// handleFromDSC maps a decimal calendar date back to the civil calendar.
// GET /api/calendar/from-dsc?year=2026&month=5&day=20
func (s *Server) handleFromDSC(w http.ResponseWriter, r *http.Request) {
	year, err1 := strconv.Atoi(r.URL.Query().Get("year"))
	month, err2 := strconv.Atoi(r.URL.Query().Get("month"))
	day, err3 := strconv.Atoi(r.URL.Query().Get("day"))
	if err1 != nil || err2 != nil || err3 != nil {
		writeError(w, http.StatusBadRequest, "year, month and day must be integers")
		return
	}
	dsc := calendar.Date{Year: year, Month: month, Day: day}
	civil, err := s.cal.ToGregorian(dsc)
	if err != nil {
		writeCalendarError(w, err)
		return
	}
	calendarRequests.WithLabelValues("from_dsc").Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dsc":       dsc,
		"formatted": dsc.String(),
		"gregorian": civil.Format("2006-01-02"),
	})
}

// handleMonths returns the 10 month lengths for a year.
// GET /api/calendar/months?year=2024
func (s *Server) handleMonths(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year must be an integer")
		return
	}
	lengths := s.cal.MonthLengths(year)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"year":   year,
		"leap":   s.cal.IsLeap(year),
		"months": lengths[:],
	})
}

// writeCalendarError maps domain errors onto HTTP statuses: bad calendar
// components are the caller's fault, an unplaceable day of year is ours.
func writeCalendarError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidMonth), errors.Is(err, domain.ErrInvalidDay):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func parsePlaces(r *http.Request) int {
	places, err := strconv.Atoi(r.URL.Query().Get("places"))
	if err != nil || places <= 0 {
		return convert.DefaultPlaces
	}
	return places
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
