package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doctors-portal-server/middleware"
	"doctors-portal-server/models"
	"doctors-portal-server/services"
	"doctors-portal-server/util"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// Create responds with the raw BookingResult so a duplicate surfaces as
// {"acknowledged": false, "message": "You have a booking on <date>"} with a
// 200, not an error status.
func (ctl *BookingController) Create(c *gin.Context) {
	var booking models.Booking
	if err := c.BindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := ctl.bookings.Create(c.Request.Context(), booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

/*
* Patients can only list their own bookings
* The query email has to match the token's email
 */
func (ctl *BookingController) ByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" || email != c.GetString(middleware.EmailKey) {
		c.JSON(http.StatusForbidden, util.FailedMessage(util.FORBIDDEN_ACCESS))
		return
	}
	bookings, err := ctl.bookings.ByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(bookings))
}

func (ctl *BookingController) ByID(c *gin.Context) {
	booking, err := ctl.bookings.ByID(c.Request.Context(), c.Param("id"))
	if err == services.ErrNotFound {
		c.JSON(http.StatusNotFound, util.FailedMessage(util.RECORD_NOT_FOUND))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(booking))
}
