package controllers

import (
	"net/http"

	"CareSphere/middleware"
	"CareSphere/models"
	"CareSphere/services"
	"CareSphere/utils"

	"github.com/gin-gonic/gin"
)

func Prescription(private *gin.RouterGroup) {
	prescription := private.Group("/prescription")
	{
		prescription.POST("/create", middleware.RequireRole(models.RoleDoctor, models.RoleAdmin), CreatePrescription)
		prescription.GET("/patient/:patientId", GetPrescriptionsByPatient)
		prescription.GET("/doctor/:doctorId", GetPrescriptionsByDoctor)
	}
}

func CreatePrescription(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(utils.BadRequest("invalid request body")))
		return
	}
	prescription, message, err := services.CreatePrescription(c.Request.Context(), data)
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"status":       "success",
		"message":      message,
		"prescription": prescription,
	})
}

func GetPrescriptionsByPatient(c *gin.Context) {
	prescriptions, err := services.FetchPrescriptionsByPatient(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(prescriptions))
}

func GetPrescriptionsByDoctor(c *gin.Context) {
	prescriptions, err := services.FetchPrescriptionsByDoctor(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(prescriptions))
}
