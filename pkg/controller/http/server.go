package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/atrium-hq/atrium/pkg/usecase"
	"github.com/atrium-hq/atrium/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/meetings", func(r chi.Router) {
			r.Get("/", s.listMeetings)
			r.Post("/", s.createMeeting)
			r.Get("/active", s.getActiveMeeting)
			r.Post("/active/summary", s.refreshSummary)
			r.Get("/active/insights", s.getInsights)
			r.Post("/active/end", s.endMeeting)

			r.Route("/{meetingID}", func(r chi.Router) {
				r.Get("/", s.getMeeting)
				r.Put("/", s.updateMeeting)
				r.Delete("/", s.deleteMeeting)
				r.Post("/start", s.startMeeting)
				r.Post("/cancel", s.cancelMeeting)
				r.Post("/reminders", s.scheduleReminders)
				r.Get("/tasks", s.listMeetingTasks)
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", s.listNotifications)
			r.Post("/", s.createNotification)
			r.Delete("/", s.clearNotifications)
			r.Delete("/{notificationID}", s.dismissNotification)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.listUsers)
			r.Post("/", s.createUser)
			r.Route("/{userID}", func(r chi.Router) {
				r.Get("/", s.getUser)
				r.Put("/", s.updateUser)
				r.Delete("/", s.deleteUser)
				r.Get("/attendance", s.listUserAttendance)
			})
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.listTasks)
			r.Post("/", s.createTask)
			r.Route("/{taskID}", func(r chi.Router) {
				r.Get("/", s.getTask)
				r.Put("/", s.updateTask)
				r.Delete("/", s.deleteTask)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", s.listAttendance)
			r.Post("/", s.createAttendance)
			r.Route("/{attendanceID}", func(r chi.Router) {
				r.Get("/", s.getAttendance)
				r.Put("/", s.updateAttendance)
				r.Delete("/", s.deleteAttendance)
			})
		})

		r.Get("/stats", s.getStats)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
