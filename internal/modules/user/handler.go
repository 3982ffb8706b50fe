package user

import (
	"net/http"
	"strconv"

	"guesthouse/internal/domain"
	"guesthouse/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/user/sign-up", h.SignUp)
	rg.POST("/user/login", h.Login)
	rg.GET("/user/check-id", h.CheckID)
	rg.GET("/user/:id", h.GetUser)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/user-info", h.GetMyInfo)
	rg.PATCH("/user-info", h.UpdateMyInfo)
}

func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid sign-up fields")
		case ErrLoginIDTaken:
			response.Error(c, http.StatusConflict, "LOGIN_ID_TAKEN", "Login id is already in use")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to sign up")
		}
		return
	}

	response.Success(c, http.StatusCreated, toUserInfo(u))
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.LoginID, req.Password)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Wrong login id or password")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  toUserInfo(res.User),
		"token": res.Token,
	})
}

func (h *Handler) CheckID(c *gin.Context) {
	loginID := c.Query("login_id")

	available, err := h.service.IsLoginIDAvailable(c.Request.Context(), loginID)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "login_id query parameter is required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check login id")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"available": available})
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
		}
		return
	}

	response.Success(c, http.StatusOK, toUserInfo(u))
}

func (h *Handler) GetMyInfo(c *gin.Context) {
	u, err := h.service.GetByID(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
		}
		return
	}

	response.Success(c, http.StatusOK, toUserInfo(u))
}

func (h *Handler) UpdateMyInfo(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.UpdateInfo(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No fields to update")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update user")
		}
		return
	}

	response.Success(c, http.StatusOK, toUserInfo(u))
}

func toUserInfo(u *domain.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Username:    u.Username,
		LoginID:     u.LoginID,
		Role:        string(u.Role),
		PhoneNumber: u.PhoneNumber,
	}
}
