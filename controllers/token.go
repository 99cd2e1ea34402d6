package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doctors-portal-server/services"
	"doctors-portal-server/util"
)

type TokenController struct {
	users  *services.UserService
	tokens *services.TokenService
}

func NewTokenController(users *services.UserService, tokens *services.TokenService) *TokenController {
	return &TokenController{users: users, tokens: tokens}
}

/*
* Issue a token for a known user
* An unknown email gets 403 with an empty token payload, not an error;
* callers check accessToken explicitly
 */
func (ctl *TokenController) IssueToken(c *gin.Context) {
	email := c.Query("email")
	_, err := ctl.users.ByEmail(c.Request.Context(), email)
	if err == services.ErrNotFound {
		c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	token, err := ctl.tokens.Issue(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies a stored password and issues a token in one step.
func (ctl *TokenController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	user, err := ctl.users.Login(c.Request.Context(), req.Email, req.Password)
	if err == services.ErrInvalidCredentials {
		c.JSON(http.StatusForbidden, util.FailedResponse(err))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	token, err := ctl.tokens.Issue(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token, "user": user})
}
