package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doctors-portal-server/models"
	"doctors-portal-server/services"
	"doctors-portal-server/util"
)

type DoctorController struct {
	doctors *services.DoctorService
}

func NewDoctorController(doctors *services.DoctorService) *DoctorController {
	return &DoctorController{doctors: doctors}
}

func (ctl *DoctorController) Create(c *gin.Context) {
	var doctor models.Doctor
	if err := c.BindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := ctl.doctors.Create(c.Request.Context(), doctor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(created))
}

func (ctl *DoctorController) All(c *gin.Context) {
	doctors, err := ctl.doctors.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(doctors))
}

func (ctl *DoctorController) Delete(c *gin.Context) {
	err := ctl.doctors.Delete(c.Request.Context(), c.Param("id"))
	if err == services.ErrNotFound {
		c.JSON(http.StatusNotFound, util.FailedMessage(util.RECORD_NOT_FOUND))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"deletedCount": 1}))
}
