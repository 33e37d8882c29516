package controllers

import (
	"net/http"

	"CareSphere/middleware"
	"CareSphere/models"
	"CareSphere/services"
	"CareSphere/utils"

	"github.com/gin-gonic/gin"
)

func Doctor(private *gin.RouterGroup) {
	doctor := private.Group("/doctor")
	{
		doctor.POST("/addDoctor", middleware.RequireRole(models.RoleAdmin, models.RoleReceptionist), AddDoctor)
		doctor.GET("/getAllDoctors", GetAllDoctors)
		doctor.DELETE("/deleteDoctor/:id", middleware.RequireRole(models.RoleAdmin), DeleteDoctor)
		doctor.PUT("/updateDoctor/:id", middleware.RequireRole(models.RoleAdmin, models.RoleDoctor), UpdateDoctor)
	}
}

func AddDoctor(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(utils.BadRequest("invalid request body")))
		return
	}
	account, err := services.CreateAccount(c.Request.Context(), models.RoleDoctor, data)
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse(account))
}

func GetAllDoctors(c *gin.Context) {
	doctors, err := services.FetchAccountsByRole(c.Request.Context(), models.RoleDoctor)
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(doctors))
}

func DeleteDoctor(c *gin.Context) {
	if err := services.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("deleted successfully"))
}

func UpdateDoctor(c *gin.Context) {
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
