package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atrium-hq/atrium/pkg/usecase"
)

func (s *Server) startMeeting(w http.ResponseWriter, r *http.Request) {
	run, err := s.uc.Lifecycle.Start(r.Context(), meetingID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, run)
}

func (s *Server) endMeeting(w http.ResponseWriter, r *http.Request) {
	ended, err := s.uc.Lifecycle.End(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if ended == nil {
		respondError(w, r, goerr.Wrap(usecase.ErrNoActiveMeeting, "no meeting to end"))
		return
	}
	respondJSON(w, r, http.StatusOK, ended)
}

func (s *Server) getActiveMeeting(w http.ResponseWriter, r *http.Request) {
	run := s.uc.Lifecycle.ActiveRun()
	if run == nil {
		respondError(w, r, goerr.Wrap(usecase.ErrNoActiveMeeting, "no active meeting"))
		return
	}
	respondJSON(w, r, http.StatusOK, run)
}

func (s *Server) refreshSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.uc.Lifecycle.RefreshSummary(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if summary == nil {
		// the run ended while the request was in flight
		respondError(w, r, goerr.Wrap(usecase.ErrNoActiveMeeting, "meeting ended during refresh"))
		return
	}
	respondJSON(w, r, http.StatusOK, summary)
}

func (s *Server) getInsights(w http.ResponseWriter, r *http.Request) {
	insights := s.uc.Lifecycle.Insights(r.Context())
	if insights == nil {
		respondError(w, r, goerr.Wrap(usecase.ErrNoActiveMeeting, "no insights available"))
		return
	}
	respondJSON(w, r, http.StatusOK, insights)
}
