package session

import (
	"context"
	"fmt"
	"navigator-service/internal/app/config"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/dto/responses"
	"navigator-service/internal/pkg/exceptions"
	"navigator-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(
	logger *zap.Logger,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.SessionService {
	return &sessionService{
		Log:             logger,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

// CreateSession mints an anonymous session. No credentials are
// involved; the token only binds subsequent requests to one session
// record so drafts and the patient pointer survive across requests.
func (s *sessionService) CreateSession(ctx context.Context) (*responses.CreateSession, error) {
	now := time.Now()
	ttl := time.Duration(s.InternalConfig.App.SessionTTLInHour) * time.Hour

	sessionData := &models.Session{
		SessionID: utils.GenerateSessionID(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	err := s.RedisRepository.Set(ctx, sessionKey(sessionData.SessionID), sessionData, ttl)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(sessionData.SessionID, s.InternalConfig.JWT.Secret, time.Duration(s.InternalConfig.JWT.ExpTimeInHour)*time.Hour)
	if err != nil {
		return nil, exceptions.ErrGenerateToken(err)
	}

	s.Log.Info("sessionService.CreateSession created",
		zap.String(constvars.LoggingSessionIDKey, sessionData.SessionID),
	)

	return &responses.CreateSession{
		Token:     token,
		ExpiresAt: sessionData.ExpiresAt.Format(time.RFC3339),
	}, nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	sessionData := new(models.Session)
	err = json.Unmarshal([]byte(data), sessionData)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	return sessionData, nil
}

func (s *sessionService) SaveSession(ctx context.Context, session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return exceptions.ErrSessionNotFound(nil)
	}
	return s.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("%s%s", constvars.SessionKeyPrefix, sessionID)
}
