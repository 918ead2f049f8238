package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bookingserrors "trainbook/internal/bookings/errors"
	apperrors "trainbook/pkg/errors"
	"trainbook/pkg/logger"
	"trainbook/pkg/model"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockBookingService struct {
	bookFunc   func(ctx context.Context, candidate *model.CandidateBooking) (*model.Session, error)
	eventsFunc func(ctx context.Context) ([]*model.Event, error)
}

func (m *mockBookingService) Book(ctx context.Context, candidate *model.CandidateBooking) (*model.Session, error) {
	if m.bookFunc != nil {
		return m.bookFunc(ctx, candidate)
	}
	return &model.Session{}, nil
}

func (m *mockBookingService) Events(ctx context.Context) ([]*model.Event, error) {
	if m.eventsFunc != nil {
		return m.eventsFunc(ctx)
	}
	return nil, nil
}

func (m *mockBookingService) Drain(context.Context) error {
	return nil
}

func newRouter(svc *mockBookingService) *httprouter.Router {
	router := httprouter.New()
	NewBookingHandler(svc, logger.Discard()).RegisterRoutes(router)
	return router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestBook_Success(t *testing.T) {
	var received *model.CandidateBooking
	svc := &mockBookingService{
		bookFunc: func(_ context.Context, c *model.CandidateBooking) (*model.Session, error) {
			received = c
			return &model.Session{ID: "s-1", Room: c.Room, Date: c.Date, Start: c.Start, End: c.End}, nil
		},
	}

	rec := serve(newRouter(svc), http.MethodPost, "/api/schedule",
		`{"type":"Induction","room":"A","trainer":"Franko","date":"2024-01-08","start":"10:00","end":"11:00","participants":"P1;P2"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, received)
	assert.Equal(t, "P1;P2", received.Participants)

	var body struct {
		Status string        `json:"status"`
		Data   model.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "s-1", body.Data.ID)
	assert.Equal(t, "A", body.Data.Room)
}

func TestBook_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid json",
			body:       `{"room":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
		{
			name:       "empty body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantError:  "Request body is empty",
		},
		{
			name:       "room conflict",
			body:       `{}`,
			err:        apperrors.SchedulingConflict("Room conflict", bookingserrors.NewRoomConflict()),
			wantStatus: http.StatusBadRequest,
			wantError:  "Room conflict",
		},
		{
			name:       "participant conflict",
			body:       `{}`,
			err:        apperrors.SchedulingConflict("Participant P2 busy", bookingserrors.NewParticipantConflict("P2")),
			wantStatus: http.StatusBadRequest,
			wantError:  "Participant P2 busy",
		},
		{
			name:       "store failure",
			body:       `{}`,
			err:        apperrors.Internal("Failed to save session", bookingserrors.ErrStore),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to save session",
		},
		{
			name:       "unexpected error",
			body:       `{}`,
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{
				bookFunc: func(context.Context, *model.CandidateBooking) (*model.Session, error) {
					return nil, tt.err
				},
			}

			rec := serve(newRouter(svc), http.MethodPost, "/api/schedule", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestEvents_Success(t *testing.T) {
	svc := &mockBookingService{
		eventsFunc: func(context.Context) ([]*model.Event, error) {
			return []*model.Event{model.NewEvent(&model.Session{
				ID: "s-1", Type: "Induction", Room: "A", Trainer: "Franko",
				Date: "2024-01-08", Start: "10:00", End: "11:00",
				ParticipantNames: []string{"Olena Kovalenko"},
			})}, nil
		},
	}

	rec := serve(newRouter(svc), http.MethodGet, "/api/events", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": "s-1",
		"title": "Induction",
		"start": "2024-01-08T10:00",
		"end": "2024-01-08T11:00",
		"extendedProps": {"participants": ["Olena Kovalenko"], "room": "A", "trainer": "Franko"}
	}]`, rec.Body.String())
}

func TestEvents_EmptyIsArray(t *testing.T) {
	rec := serve(newRouter(&mockBookingService{}), http.MethodGet, "/api/events", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestEvents_Error(t *testing.T) {
	svc := &mockBookingService{
		eventsFunc: func(context.Context) ([]*model.Event, error) {
			return nil, apperrors.Internal("Failed to read schedule", errors.New("disk"))
		},
	}

	rec := serve(newRouter(svc), http.MethodGet, "/api/events", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
