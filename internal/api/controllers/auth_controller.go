package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kyotabi/internal/models/request_models"
	"kyotabi/internal/services"
	"kyotabi/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account with a unique username
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Username, password, optional email"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var request request_models.SignUpRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := a.authService.Register(c.Request.Context(), request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Log in
// @Description Verify credentials, open a session and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Username and password"
// @Success 200 {object} response_models.AuthResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var request request_models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	auth, err := a.authService.Login(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, auth, "Logged in successfully")
}

// Logout godoc
// @Summary Log out
// @Description Delete the server-side session behind the presented token
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	sessionToken := c.GetString("session_token")
	if err := a.authService.Logout(c.Request.Context(), sessionToken); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Logged out successfully")
}

// Me godoc
// @Summary Current user profile
// @Tags Auth
// @Produce json
// @Success 200 {object} response_models.UserResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.authService.CurrentUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "User fetched successfully")
}

// UpdatePhoto godoc
// @Summary Update profile photo
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePhotoRequest true "Photo reference"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /auth/me/photo [patch]
func (a *AuthController) UpdatePhoto(c *gin.Context) {
	var request request_models.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := a.authService.UpdateProfilePhoto(c.Request.Context(), c.GetString("user_id"), request.ProfilePhoto); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Profile photo updated")
}
