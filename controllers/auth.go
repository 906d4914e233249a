// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"billing-backend/services"
	"billing-backend/utils"
)

type AuthController struct {
	Auth services.AuthService
}

func NewAuthController(auth services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Login exchanges a username and password for a JWT
func (ctl *AuthController) Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	resp, err := ctl.Auth.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Register creates a new user account
func (ctl *AuthController) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := ctl.Auth.Register(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// Me returns the authenticated user
func (ctl *AuthController) Me(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Username not found in context")
		return
	}

	user, err := ctl.Auth.GetUser(username.(string))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}
