package routes

import (
	"CareSphere/config"
	"CareSphere/controllers"
	"CareSphere/middleware"

	"github.com/gin-gonic/gin"
)

/*
* Signup, login and health stay public
* Everything else sits behind the JWT middleware; per-route role checks are
* declared where each group is registered
 */
func Routes(r *gin.Engine, cfg *config.Config) {
	r.GET("/health", controllers.Health)

	public := r.Group("/api")
	private := r.Group("/api")
	private.Use(middleware.JWTAuth(cfg.JWTSecret))

	controllers.User(public, private)
	controllers.Doctor(private)
	controllers.Patient(private)
	controllers.Appointment(private)
	controllers.Prescription(private)
	controllers.Reports(private)
}
