package review

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
	rg.POST("/review", h.Create)
	rg.GET("/review/:id", h.GetByID)
	rg.PATCH("/review/:id", h.Update)
	rg.DELETE("/review/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, toReviewResponse(rv))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	rv, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toReviewResponse(rv))
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toReviewResponse(rv))
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
	case ErrNotCheckedOut:
		response.Error(c, http.StatusBadRequest, "NOT_CHECKED_OUT", "Reservation has not been checked out yet")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review or reservation not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the reservation's guest may manage this review")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "Reservation already has a review")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process review")
	}
}

func toReviewResponse(rv *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:            rv.ID,
		ReservationID: rv.ReservationID,
		Rating:        rv.Rating,
		Comment:       rv.Comment,
		CreatedAt:     rv.CreatedAt,
	}
}
