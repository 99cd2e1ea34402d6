package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doctors-portal-server/services"
	"doctors-portal-server/util"
)

type OptionController struct {
	options *services.OptionService
}

func NewOptionController(options *services.OptionService) *OptionController {
	return &OptionController{options: options}
}

/*
* List options with slots reduced by the date's bookings
* Application-level strategy, full option documents
 */
func (ctl *OptionController) GetAppointmentOptions(c *gin.Context) {
	date := c.Query("date")
	options, err := ctl.options.AvailableOptions(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(options))
}

// GetAppointmentOptionsV2 serves the database-pipeline variant. It projects
// name, price and slots only; see DESIGN.md on the retained divergence.
func (ctl *OptionController) GetAppointmentOptionsV2(c *gin.Context) {
	date := c.Query("date")
	options, err := ctl.options.AvailableOptionsPipeline(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(options))
}

func (ctl *OptionController) GetSpecialties(c *gin.Context) {
	specialties, err := ctl.options.Specialties(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(specialties))
}

func (ctl *OptionController) AddPrice(c *gin.Context) {
	modified, err := ctl.options.SetDefaultPrice(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"modifiedCount": modified}))
}
