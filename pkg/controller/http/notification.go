package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/atrium-hq/atrium/pkg/utils/errutil"
)

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.uc.Notifier().List())
}

func (s *Server) createNotification(w http.ResponseWriter, r *http.Request) {
	var input model.Notification
	if err := decodeJSON(r, &input); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	if input.Type == "" {
		input.Type = types.NotificationInfo
	}
	if !input.Type.IsValid() {
		errutil.HandleHTTP(r.Context(), w,
			goerr.New("invalid notification type", goerr.V("type", input.Type)),
			http.StatusBadRequest)
		return
	}

	added := s.uc.Notifier().Add(r.Context(), input)
	respondJSON(w, r, http.StatusCreated, added)
}

func (s *Server) dismissNotification(w http.ResponseWriter, r *http.Request) {
	id := model.NotificationID(chi.URLParam(r, "notificationID"))
	s.uc.Notifier().Dismiss(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearNotifications(w http.ResponseWriter, r *http.Request) {
	s.uc.Notifier().Clear()
	w.WriteHeader(http.StatusNoContent)
}
