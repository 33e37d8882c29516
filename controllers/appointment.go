package controllers

import (
	"net/http"

	"CareSphere/services"
	"CareSphere/utils"

	"github.com/gin-gonic/gin"
)

func Appointment(private *gin.RouterGroup) {
	appointment := private.Group("/appointment")
	{
		appointment.POST("/", CreateAppointment)
		appointment.GET("/getAllAppointments", GetAllAppointments)
		appointment.GET("/getAppointments/:id", GetAppointmentsByParticipant)
		appointment.PUT("/updateAppointment/:id", UpdateAppointment)
		appointment.DELETE("/deleteAppointment/:id", DeleteAppointment)
	}
}

func CreateAppointment(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(utils.BadRequest("invalid request body")))
		return
	}
	appointment, err := services.CreateAppointment(c.Request.Context(), data)
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"status":      "success",
		"appointment": appointment,
	})
}

func GetAllAppointments(c *gin.Context) {
	appointments, err := services.FetchAllAppointments(c.Request.Context())
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointments))
}

func GetAppointmentsByParticipant(c *gin.Context) {
	appointments, err := services.FetchAppointmentsByParticipant(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointments))
}

func UpdateAppointment(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(utils.BadRequest("invalid request body")))
		return
	}
	appointment, err := services.UpdateAppointment(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(appointment))
}

func DeleteAppointment(c *gin.Context) {
	if err := services.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("deleted successfully"))
}
