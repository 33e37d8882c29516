package controllers

import (
	"net/http"

	"CareSphere/middleware"
	"CareSphere/models"
	"CareSphere/services"
	"CareSphere/utils"

	"github.com/gin-gonic/gin"
)

func Patient(private *gin.RouterGroup) {
	patient := private.Group("/patient")
	{
		patient.POST("/addPatient", middleware.RequireRole(models.RoleAdmin, models.RoleReceptionist), AddPatient)
		patient.GET("/getAllPatients", GetAllPatients)
		patient.DELETE("/deletePatient/:id", middleware.RequireRole(models.RoleAdmin), DeletePatient)
		patient.PUT("/updatePatient/:id", UpdatePatient)
	}
}

func AddPatient(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(utils.BadRequest("invalid request body")))
		return
	}
	account, err := services.CreateAccount(c.Request.Context(), models.RolePatient, data)
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse(account))
}

func GetAllPatients(c *gin.Context) {
	patients, err := services.FetchAccountsByRole(c.Request.Context(), models.RolePatient)
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(patients))
}

func DeletePatient(c *gin.Context) {
	if err := services.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("deleted successfully"))
}

func UpdatePatient(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(utils.BadRequest("invalid request body")))
		return
	}
	account, err := services.UpdateAccount(c.Request.Context(), c.Param("id"), data)
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(account))
}
