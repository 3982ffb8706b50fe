package reservation

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
	rg.POST("/reservation", h.Create)
	rg.GET("/reservation/my", h.MyList)
	rg.DELETE("/reservation/:id", h.Cancel)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid dates or people count")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guest or room not found")
		case ErrNoCapacity:
			response.Error(c, http.StatusBadRequest, "CAPACITY_EXCEEDED", "Room cannot take that many people for the requested dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create reservation")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":             res.ID,
		"room_id":        res.RoomID,
		"check_in_date":  res.CheckInDate.Format(domain.DateLayout),
		"check_out_date": res.CheckOutDate.Format(domain.DateLayout),
		"people_count":   res.PeopleCount,
	})
}

func (h *Handler) MyList(c *gin.Context) {
	rows, err := h.service.MyList(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reservations")
		return
	}

	out := make([]ReservationItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReservationItem{
			ID:             r.ID,
			RoomID:         r.RoomID,
			GuesthouseID:   r.GuesthouseID,
			GuesthouseName: r.GuesthouseName,
			CheckInDate:    r.CheckInDate.Format(domain.DateLayout),
			CheckOutDate:   r.CheckOutDate.Format(domain.DateLayout),
			PeopleCount:    r.PeopleCount,
			ReviewID:       r.ReviewID,
			ReviewComment:  r.ReviewComment,
		})
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": out})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	if err := h.service.Cancel(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the reservation's guest may cancel it")
		case ErrTooLate:
			response.Error(c, http.StatusBadRequest, "CANCEL_NOT_ALLOWED", "Cancellation is only possible before the check-in date")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel reservation")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}
