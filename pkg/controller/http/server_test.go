package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/atrium-hq/atrium/pkg/controller/http"
	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/domain/types"
	"github.com/atrium-hq/atrium/pkg/repository/memory"
	"github.com/atrium-hq/atrium/pkg/service/ai"
	"github.com/atrium-hq/atrium/pkg/usecase"
)

// setupServer creates a test HTTP server backed by the in-memory
// repository and the zero-latency mock AI
func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := memory.New()
	uc := usecase.New(repo,
		usecase.WithAIService(ai.NewMock(ai.WithLatency(0), ai.WithSeed(1))),
		usecase.WithLifecycleOptions(usecase.WithRefreshSchedule(time.Hour, time.Hour)),
	)

	srv := httptest.NewServer(httpctrl.New(uc))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	gt.NoError(t, err).Required()

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	gt.NoError(t, err).Required()
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	gt.NoError(t, json.NewDecoder(resp.Body).Decode(&out)).Required()
	return out
}

func meetingPayload() map[string]any {
	return map[string]any{
		"title":     "Design Sync",
		"date":      "2020-06-01",
		"time":      "14:00",
		"duration":  30,
		"attendees": []string{"alice", "bob", "carol"},
		"organizer": "alice",
	}
}

func TestMeetingCRUD(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/api/meetings/", meetingPayload())
	gt.Value(t, resp.StatusCode).Equal(http.StatusCreated)
	created := decodeBody[model.Meeting](t, resp)
	gt.Value(t, created.Status).Equal(types.MeetingStatusScheduled)

	resp, err := http.Get(srv.URL + "/api/meetings/" + created.ID.String() + "/")
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	fetched := decodeBody[model.Meeting](t, resp)
	gt.Value(t, fetched.Title).Equal("Design Sync")

	resp, err = http.Get(srv.URL + "/api/meetings/?status=scheduled")
	gt.NoError(t, err).Required()
	listed := decodeBody[[]model.Meeting](t, resp)
	gt.Array(t, listed).Length(1)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/meetings/"+created.ID.String()+"/", nil)
	gt.NoError(t, err).Required()
	resp, err = http.DefaultClient.Do(req)
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusNoContent)
	resp.Body.Close()
}

func TestCreateMeetingValidationError(t *testing.T) {
	srv := setupServer(t)

	payload := meetingPayload()
	payload["title"] = ""

	resp := postJSON(t, srv.URL+"/api/meetings/", payload)
	defer resp.Body.Close()
	gt.Value(t, resp.StatusCode).Equal(http.StatusBadRequest)
}

func TestGetUnknownMeeting(t *testing.T) {
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/api/meetings/" + model.NewMeetingID().String() + "/")
	gt.NoError(t, err).Required()
	defer resp.Body.Close()
	gt.Value(t, resp.StatusCode).Equal(http.StatusNotFound)
}

func TestMeetingLifecycleOverHTTP(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/api/meetings/", meetingPayload())
	created := decodeBody[model.Meeting](t, resp)

	// no active meeting yet
	resp, err := http.Get(srv.URL + "/api/meetings/active")
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusNotFound)
	resp.Body.Close()

	// start
	resp = postJSON(t, srv.URL+"/api/meetings/"+created.ID.String()+"/start", nil)
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	run := decodeBody[model.ActiveMeetingRun](t, resp)
	gt.Value(t, run.ParticipantCount).Equal(3)

	// double start conflicts
	resp = postJSON(t, srv.URL+"/api/meetings/"+created.ID.String()+"/start", nil)
	gt.Value(t, resp.StatusCode).Equal(http.StatusConflict)
	resp.Body.Close()

	// deleting the running meeting conflicts
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/meetings/"+created.ID.String()+"/", nil)
	gt.NoError(t, err).Required()
	resp, err = http.DefaultClient.Do(req)
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusConflict)
	resp.Body.Close()

	// manual summary refresh
	resp = postJSON(t, srv.URL+"/api/meetings/active/summary", nil)
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	summary := decodeBody[model.Summary](t, resp)
	gt.Value(t, summary.MeetingID).Equal(created.ID)

	// insights are available while running
	resp, err = http.Get(srv.URL + "/api/meetings/active/insights")
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	resp.Body.Close()

	// end
	resp = postJSON(t, srv.URL+"/api/meetings/active/end", nil)
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	ended := decodeBody[model.Meeting](t, resp)
	gt.Value(t, ended.Status).Equal(types.MeetingStatusCompleted)
	gt.Value(t, ended.Minutes != nil).Equal(true)

	// ending again reports no active meeting
	resp = postJSON(t, srv.URL+"/api/meetings/active/end", nil)
	gt.Value(t, resp.StatusCode).Equal(http.StatusNotFound)
	resp.Body.Close()
}

func TestCancelMeetingOverHTTP(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/api/meetings/", meetingPayload())
	created := decodeBody[model.Meeting](t, resp)

	resp = postJSON(t, srv.URL+"/api/meetings/"+created.ID.String()+"/cancel", nil)
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	cancelled := decodeBody[model.Meeting](t, resp)
	gt.Value(t, cancelled.Status).Equal(types.MeetingStatusCancelled)

	// cancelling a terminal meeting conflicts
	resp = postJSON(t, srv.URL+"/api/meetings/"+created.ID.String()+"/cancel", nil)
	gt.Value(t, resp.StatusCode).Equal(http.StatusConflict)
	resp.Body.Close()
}

func TestUserEndpoints(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/api/users/", map[string]any{
		"firstName": "Alice",
		"lastName":  "Smith",
		"email":     "alice@example.com",
	})
	gt.Value(t, resp.StatusCode).Equal(http.StatusCreated)
	created := decodeBody[model.User](t, resp)
	gt.Value(t, created.ID == "").Equal(false)

	resp = postJSON(t, srv.URL+"/api/users/", map[string]any{
		"firstName": "Bob",
		"email":     "not-an-email",
	})
	gt.Value(t, resp.StatusCode).Equal(http.StatusBadRequest)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/users/")
	gt.NoError(t, err).Required()
	users := decodeBody[[]model.User](t, resp)
	gt.Array(t, users).Length(1)
}

func TestStatsEndpoint(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/api/meetings/", meetingPayload())
	gt.Value(t, resp.StatusCode).Equal(http.StatusCreated)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/stats")
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

	stats := decodeBody[usecase.DashboardStats](t, resp)
	gt.Value(t, stats.TotalMeetings).Equal(1)
	gt.Value(t, stats.ScheduledMeetings).Equal(1)
	gt.Bool(t, stats.MeetingInProgress).False()
}

func TestNotificationEndpoints(t *testing.T) {
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/api/notifications/")
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

	var list []model.Notification
	gt.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/notifications/", map[string]any{
		"title":   "Maintenance",
		"message": "Dashboard restarts at midnight",
	})
	gt.Value(t, resp.StatusCode).Equal(http.StatusCreated)
	posted := decodeBody[model.Notification](t, resp)
	gt.Value(t, posted.Type).Equal(types.NotificationInfo)
	gt.Value(t, posted.ID == "").Equal(false)

	resp = postJSON(t, srv.URL+"/api/notifications/", map[string]any{
		"type":  "catastrophic",
		"title": "nope",
	})
	gt.Value(t, resp.StatusCode).Equal(http.StatusBadRequest)
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/notifications/", nil)
	gt.NoError(t, err).Required()
	resp, err = http.DefaultClient.Do(req)
	gt.NoError(t, err).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusNoContent)
	resp.Body.Close()
}

func TestScheduleRemindersOverHTTP(t *testing.T) {
	srv := setupServer(t)

	payload := meetingPayload()
	payload["date"] = "2099-06-01"
	resp := postJSON(t, srv.URL+"/api/meetings/", payload)
	gt.Value(t, resp.StatusCode).Equal(http.StatusCreated)
	created := decodeBody[model.Meeting](t, resp)

	resp = postJSON(t, srv.URL+"/api/meetings/"+created.ID.String()+"/reminders", nil)
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)

	type reminder struct {
		FireInSeconds int    `json:"fireInSeconds"`
		Type          string `json:"type"`
		Message       string `json:"message"`
	}
	reminders := decodeBody[[]reminder](t, resp)
	gt.Array(t, reminders).Length(6)
	gt.Value(t, reminders[5].Type).Equal("success")

	// reminders for a meeting that already started are not armed
	resp = postJSON(t, srv.URL+"/api/meetings/", meetingPayload())
	gt.Value(t, resp.StatusCode).Equal(http.StatusCreated)
	past := decodeBody[model.Meeting](t, resp)

	resp = postJSON(t, srv.URL+"/api/meetings/"+past.ID.String()+"/reminders", nil)
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Array(t, decodeBody[[]reminder](t, resp)).Length(0)
}
