package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doctors-portal-server/models"
	"doctors-portal-server/services"
	"doctors-portal-server/util"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctl *UserController) Create(c *gin.Context) {
	var user models.User
	if err := c.BindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := ctl.users.Create(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(created))
}

func (ctl *UserController) All(c *gin.Context) {
	users, err := ctl.users.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(users))
}

func (ctl *UserController) MakeAdmin(c *gin.Context) {
	err := ctl.users.MakeAdmin(c.Request.Context(), c.Param("id"))
	if err == services.ErrNotFound {
		c.JSON(http.StatusNotFound, util.FailedMessage(util.RECORD_NOT_FOUND))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"modifiedCount": 1}))
}

// CheckAdmin is public: the frontend uses it to decide which dashboard to
// render. Shape pinned to {"isAdmin": bool}.
func (ctl *UserController) CheckAdmin(c *gin.Context) {
	isAdmin, err := ctl.users.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}
