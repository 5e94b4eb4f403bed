package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/session"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessions *session.Manager
}

func NewSessionHandler(r *gin.RouterGroup, sessions *session.Manager) {
	handler := &SessionHandler{sessions: sessions}
	r.POST("/sessions", handler.Create)
}

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateSession godoc
// @Summary      Start a viewer session
// @Description  Issues a new anonymous session token. Send it back in the X-Session-Token header.
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  response.Response{data=SessionResponse}
// @Router       /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	s, err := h.sessions.Issue()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	c.Header(middleware.HeaderSessionToken, s.Token)
	response.Success(c, http.StatusCreated, "Session created", SessionResponse{
		SessionID: s.ID,
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
	})
}
