package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors-portal-server/config"
	"doctors-portal-server/controllers"
	"doctors-portal-server/middleware"
	"doctors-portal-server/services"
)

// Routes wires every endpoint with its guards composed explicitly per route.
// Registration is all-or-nothing: any failure before this point is fatal in
// main, so a running server always carries the full table.
func Routes(r *gin.Engine, db *mongo.Database, cfg *config.Config) {
	tokens := services.NewTokenService(cfg.TokenSecret)
	users := services.NewUserService(db)
	options := services.NewOptionService(db)
	bookings := services.NewBookingService(db)
	doctors := services.NewDoctorService(db)

	optionCtl := controllers.NewOptionController(options)
	bookingCtl := controllers.NewBookingController(bookings)
	userCtl := controllers.NewUserController(users)
	doctorCtl := controllers.NewDoctorController(doctors)
	tokenCtl := controllers.NewTokenController(users, tokens)

	requireToken := middleware.RequireToken(tokens)
	requireAdmin := middleware.RequireAdmin(users)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors Portal server is running")
	})

	r.GET("/appointmentOptions", optionCtl.GetAppointmentOptions)
	r.GET("/v2/appointmentOptions", optionCtl.GetAppointmentOptionsV2)
	r.GET("/appointmentSpecialty", optionCtl.GetSpecialties)
	r.GET("/addPrice", optionCtl.AddPrice)

	r.POST("/bookings", bookingCtl.Create)
	r.GET("/bookings", requireToken, bookingCtl.ByEmail)
	r.GET("/bookings/:id", bookingCtl.ByID)

	r.POST("/users", userCtl.Create)
	r.GET("/users", requireToken, requireAdmin, userCtl.All)
	r.PUT("/users/admin/:id", requireToken, requireAdmin, userCtl.MakeAdmin)
	r.GET("/users/admin/:email", userCtl.CheckAdmin)

	r.GET("/jwt", tokenCtl.IssueToken)
	r.POST("/login", tokenCtl.Login)

	r.POST("/doctors", doctorCtl.Create)
	r.GET("/doctors", requireToken, requireAdmin, doctorCtl.All)
	r.DELETE("/doctors/:id", requireToken, requireAdmin, doctorCtl.Delete)
}
