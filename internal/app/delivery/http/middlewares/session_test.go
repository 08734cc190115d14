package middlewares

import (
	"context"
	"errors"
	"navigator-service/internal/app/config"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/dto/responses"
	"navigator-service/internal/pkg/exceptions"
	"navigator-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessions map[string]*models.Session
}

func (s *fakeSessionService) CreateSession(ctx context.Context) (*responses.CreateSession, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, ok := s.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return sessionData, nil
}

func (s *fakeSessionService) SaveSession(ctx context.Context, session *models.Session) error {
	s.sessions[session.SessionID] = session
	return nil
}

func (s *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func TestSessionRequired(t *testing.T) {
	secret := "test-secret"
	sessionService := &fakeSessionService{
		sessions: map[string]*models.Session{
			"sess-1": {SessionID: "sess-1", PatientID: "pat-1"},
		},
	}

	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		SessionService: sessionService,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: secret},
		},
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		assert.True(t, ok, "session should be set on context")
		assert.Equal(t, "sess-1", sessionData.SessionID)
		assert.Equal(t, "pat-1", sessionData.PatientID)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := utils.GenerateJWT("sess-1", secret, time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/navigation", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.SessionRequired(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/navigation", nil)

		rr := httptest.NewRecorder()
		middlewares.SessionRequired(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/navigation", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Token abc")

		rr := httptest.NewRecorder()
		middlewares.SessionRequired(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Forged Token", func(t *testing.T) {
		token, err := utils.GenerateJWT("sess-1", "other-secret", time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/navigation", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.SessionRequired(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired Session Record", func(t *testing.T) {
		token, err := utils.GenerateJWT("sess-gone", secret, time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/navigation", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.SessionRequired(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
