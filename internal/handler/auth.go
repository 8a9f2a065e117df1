package handler

import (
	"FileTransfer/internal/dto"
	"FileTransfer/internal/service"
	"FileTransfer/model"
	"FileTransfer/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register creates a new account.
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := service.IsEmailExist(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already exists"})
		return
	}

	user := model.User{
		UserName: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if err := service.CreateUser(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "account created", "user_id": user.ID})
}

// Login authenticates a user and returns a session token. The token is
// also set as a cookie for browser clients.
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	user, err := service.IsExist(req.Username)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
		return
	}
	if err := service.CheckPassword(req.Username, req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password mismatch"})
		return
	}
	token, err := utils.GenerateToken(user.ID, user.UserName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	c.SetCookie("jwt", token, 24*3600, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"token":   token,
		"user":    user,
	})
}
