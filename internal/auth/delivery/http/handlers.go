package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serava-assistant/pkg/response"
)

// GoogleRedirect godoc
// @Summary     Start Google OAuth
// @Description Redirects the user to the Google consent page. The user id rides in the OAuth state.
// @Tags        Auth
// @Param       user_id query string true "User identity"
// @Success     307
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/google [GET]
func (h *handler) GoogleRedirect(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, h.uc.AuthCodeURL(userID))
}

// GoogleCallback godoc
// @Summary     Google OAuth callback
// @Description Exchanges the authorization code and stores the user's credential.
// @Tags        Auth
// @Produce     json
// @Param       code  query string true "Authorization code"
// @Param       state query string true "User identity from the redirect"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Authentication failed"
// @Router      /api/v1/auth/google/callback [GET]
func (h *handler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	userID := c.Query("state")
	if code == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and state are required"})
		return
	}

	if err := h.uc.HandleCallback(ctx, userID, code); err != nil {
		h.l.Errorf(ctx, "uc.HandleCallback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"user_id": userID})
}

// Logout godoc
// @Summary     Logout
// @Description Deletes the user's stored credential.
// @Tags        Auth
// @Produce     json
// @Param       user_id query string true "User identity"
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/logout [DELETE]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	if err := h.uc.DeleteCredential(ctx, userID); err != nil {
		h.l.Errorf(ctx, "uc.DeleteCredential: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
