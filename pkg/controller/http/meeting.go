package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atrium-hq/atrium/pkg/domain/interfaces"
	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/atrium-hq/atrium/pkg/utils/errutil"
)

func meetingID(r *http.Request) model.MeetingID {
	return model.MeetingID(chi.URLParam(r, "meetingID"))
}

func (s *Server) listMeetings(w http.ResponseWriter, r *http.Request) {
	var opts []interfaces.ListMeetingOption
	if status := r.URL.Query().Get("status"); status != "" {
		parsed, err := types.ParseMeetingStatus(status)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}
		opts = append(opts, interfaces.WithMeetingStatus(parsed))
	}

	meetings, err := s.uc.Meeting.List(r.Context(), opts...)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, meetings)
}

func (s *Server) createMeeting(w http.ResponseWriter, r *http.Request) {
	var input model.Meeting
	if err := decodeJSON(r, &input); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Meeting.Create(r.Context(), &input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) getMeeting(w http.ResponseWriter, r *http.Request) {
	meeting, err := s.uc.Meeting.Get(r.Context(), meetingID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, meeting)
}

func (s *Server) updateMeeting(w http.ResponseWriter, r *http.Request) {
	var input model.Meeting
	if err := decodeJSON(r, &input); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}
	input.ID = meetingID(r)

	updated, err := s.uc.Meeting.Update(r.Context(), &input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteMeeting(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Meeting.Delete(r.Context(), meetingID(r)); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) cancelMeeting(w http.ResponseWriter, r *http.Request) {
	cancelled, err := s.uc.Meeting.Cancel(r.Context(), meetingID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, cancelled)
}

type scheduledReminder struct {
	FireInSeconds int    `json:"fireInSeconds"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Message       string `json:"message"`
}

func (s *Server) scheduleReminders(w http.ResponseWriter, r *http.Request) {
	plan, err := s.uc.Meeting.ScheduleReminders(r.Context(), meetingID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	reminders := make([]scheduledReminder, len(plan))
	for i, planned := range plan {
		reminders[i] = scheduledReminder{
			FireInSeconds: int(planned.FireIn.Seconds()),
			Type:          planned.Notification.Type.String(),
			Title:         planned.Notification.Title,
			Message:       planned.Notification.Message,
		}
	}
	respondJSON(w, r, http.StatusOK, reminders)
}

func (s *Server) listMeetingTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.uc.Task.ListByMeeting(r.Context(), meetingID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, tasks)
}
