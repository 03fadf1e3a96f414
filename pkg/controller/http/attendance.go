package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/utils/errutil"
)

func attendanceID(r *http.Request) model.AttendanceID {
	return model.AttendanceID(chi.URLParam(r, "attendanceID"))
}

func (s *Server) listAttendance(w http.ResponseWriter, r *http.Request) {
	recs, err := s.uc.Attendance.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, recs)
}

func (s *Server) createAttendance(w http.ResponseWriter, r *http.Request) {
	var input model.AttendanceRecord
	if err := decodeJSON(r, &input); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Attendance.Create(r.Context(), &input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) getAttendance(w http.ResponseWriter, r *http.Request) {
	rec, err := s.uc.Attendance.Get(r.Context(), attendanceID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, rec)
}

func (s *Server) updateAttendance(w http.ResponseWriter, r *http.Request) {
	var input model.AttendanceRecord
	if err := decodeJSON(r, &input); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	input.ID = attendanceID(r)

	updated, err := s.uc.Attendance.Update(r.Context(), &input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteAttendance(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Attendance.Delete(r.Context(), attendanceID(r)); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.uc.Stats.Dashboard(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, stats)
}
