package controllers

import (
	"net/http"

	"CareSphere/middleware"
	"CareSphere/models"
	"CareSphere/services"
	"CareSphere/utils"

	"github.com/gin-gonic/gin"
)

func Reports(private *gin.RouterGroup) {
	reports := private.Group("/reports", middleware.RequireRole(models.RoleAdmin))
	{
		reports.GET("/overview", ReportOverview)
		reports.GET("/appointments", ReportAppointments)
		reports.GET("/doctors", ReportDoctors)
		reports.GET("/revenue", ReportRevenue)
	}
}

func ReportOverview(c *gin.Context) {
	report, err := services.Overview(c.Request.Context(), c.Query("dateRange"))
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(report))
}

func ReportAppointments(c *gin.Context) {
	report, err := services.AppointmentsByDay(c.Request.Context(), c.Query("dateRange"))
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(report))
}

func ReportDoctors(c *gin.Context) {
	report, err := services.DoctorsBySpecialty(c.Request.Context())
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(report))
}

func ReportRevenue(c *gin.Context) {
	report, err := services.RevenueByMonth(c.Request.Context(), c.Query("dateRange"))
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(report))
}
