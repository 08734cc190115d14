package middlewares

import (
	"context"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/exceptions"
	"navigator-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// SessionRequired resolves the Bearer token into the stored session and
// puts it on the request context. Everything behind it can assume the
// session exists and is not expired.
func (m *Middlewares) SessionRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalid(nil))
			return
		}

		sessionID, err := utils.ParseJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionData, err := m.SessionService.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
