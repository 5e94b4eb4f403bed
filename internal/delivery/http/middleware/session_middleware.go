package middleware

import (
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/session"

	"github.com/gin-gonic/gin"
)

const HeaderSessionToken = "X-Session-Token"

// SessionMiddleware attaches the viewer session to the request. A missing,
// expired or forged token is replaced by a fresh session, and the token in
// use is always echoed back in the response header.
func SessionMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := sessions.Parse(c.GetHeader(HeaderSessionToken))
		if err != nil {
			s, err = sessions.Issue()
			if err != nil {
				c.Error(apperror.Internal(err))
				c.Abort()
				return
			}
			logger.Log.Debug("Issued viewer session", "session_id", s.ID, "request_id", c.GetString(string(domain.KeyRequestID)))
		}

		c.Set(string(domain.KeySessionID), s.ID)
		c.Header(HeaderSessionToken, s.Token)
		c.Next()
	}
}
