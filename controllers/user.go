package controllers

import (
	"net/http"

	"CareSphere/middleware"
	"CareSphere/models"
	"CareSphere/services"
	"CareSphere/utils"

	"github.com/gin-gonic/gin"
)

func User(public, private *gin.RouterGroup) {
	user := public.Group("/user")
	{
		user.POST("/signup", Signup)
		user.POST("/login", Login)
	}
	authed := private.Group("/user")
	{
		authed.GET("/getusers", middleware.RequireRole(models.RoleAdmin), GetUsers)
		authed.DELETE("/deleteuser", middleware.RequireRole(models.RoleAdmin), DeleteUser)
		authed.PUT("/updateUser/:id", UpdateUser)
		authed.GET("/search", SearchUsers)
	}
}

func Signup(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(utils.BadRequest("invalid request body")))
		return
	}
	account, err := services.Signup(c.Request.Context(), data)
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse(account))
}

func Login(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(utils.BadRequest("invalid request body")))
		return
	}
	token, account, err := services.Login(c.Request.Context(), data)
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{
		"token": token,
		"user":  account,
	}))
}

func GetUsers(c *gin.Context) {
	role := c.Query("role")
	accounts, err := services.FetchAccountsByRole(c.Request.Context(), role)
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(accounts))
}

func DeleteUser(c *gin.Context) {
	email := c.Query("email")
	if err := services.DeleteAccountByEmail(c.Request.Context(), email); err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("deleted successfully"))
}

func UpdateUser(c *gin.Context) {
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

func SearchUsers(c *gin.Context) {
	accounts, err := services.SearchAccounts(c.Request.Context(), c.Query("q"), c.Query("role"))
	if err != nil {
		c.JSON(utils.StatusOf(err), utils.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse(accounts))
}
