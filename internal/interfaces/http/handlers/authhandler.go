package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talento-hq/talento/internal/application/account/usecases"
	"github.com/talento-hq/talento/internal/shared/logger"
	"github.com/talento-hq/talento/internal/shared/utils"
)

type AuthHandler struct {
	signupUC     signupUseCase
	loginUC      loginUseCase
	getProfileUC getProfileUseCase
	logger       logger.Interface
}

func NewAuthHandler(
	signupUC signupUseCase,
	loginUC loginUseCase,
	getProfileUC getProfileUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		signupUC:     signupUC,
		loginUC:      loginUC,
		getProfileUC: getProfileUC,
		logger:       logger,
	}
}

type SignupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required"`
	CompanyName string `json:"companyName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup creates a member account on the default plan
// @Summary Sign up
// @Description Create a member account and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Account details"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := BindJSON(c, &req); err != nil {
		h.logger.Debugw("invalid signup request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.signupUC.Execute(c.Request.Context(), usecases.SignupCommand{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

// Login exchanges credentials for a session token
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Me returns the caller's profile with plan and usage
// @Summary Current profile
// @Description Account, plan and remaining interview quota
// @Tags Auth
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, err := CurrentAccountID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), accountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
