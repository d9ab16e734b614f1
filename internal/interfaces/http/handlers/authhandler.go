package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"subtrack/internal/application/user/usecases"
	"subtrack/internal/shared/constants"
	"subtrack/internal/shared/logger"
	"subtrack/internal/shared/utils"
)

type AuthHandler struct {
	registerUC       *usecases.RegisterUseCase
	loginUC          *usecases.LoginUseCase
	refreshUC        *usecases.RefreshTokenUseCase
	logoutUC         *usecases.LogoutUseCase
	googleLoginUC    *usecases.InitiateGoogleLoginUseCase
	googleCallbackUC *usecases.HandleGoogleCallbackUseCase
	logger           logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterUseCase,
	loginUC *usecases.LoginUseCase,
	refreshUC *usecases.RefreshTokenUseCase,
	logoutUC *usecases.LogoutUseCase,
	googleLoginUC *usecases.InitiateGoogleLoginUseCase,
	googleCallbackUC *usecases.HandleGoogleCallbackUseCase,
) *AuthHandler {
	return &AuthHandler{
		registerUC:       registerUC,
		loginUC:          loginUC,
		refreshUC:        refreshUC,
		logoutUC:         logoutUC,
		googleLoginUC:    googleLoginUC,
		googleCallbackUC: googleCallbackUC,
		logger:           logger.NewLogger(),
	}
}

type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cmd := usecases.LogoutCommand{
		UserID:   c.GetUint(constants.ContextKeyUserID),
		Username: c.GetString(constants.ContextKeyUsername),
	}

	if err := h.logoutUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// GoogleLogin starts the OAuth flow by redirecting to Google's consent page.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	result, err := h.googleLoginUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, result.AuthURL)
}

func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing state or code parameter")
		return
	}

	result, err := h.googleCallbackUC.Execute(c.Request.Context(), usecases.HandleGoogleCallbackCommand{
		State: state,
		Code:  code,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.IsNewUser {
		utils.CreatedResponse(c, result.Auth, "Account created successfully")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result.Auth)
}
