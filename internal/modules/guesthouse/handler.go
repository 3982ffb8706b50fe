package guesthouse

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
	rg.POST("/guesthouse", h.Create)
	rg.GET("/guesthouse/mylist", h.MyList)
	rg.DELETE("/guesthouse/:id", h.Delete)
	rg.GET("/guesthouse/:id/reservations", h.Reservations)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateGuesthouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	id, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_count does not match rooms, or a room is invalid")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Host not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create guesthouse")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) MyList(c *gin.Context) {
	list, err := h.service.MyList(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list guesthouses")
		return
	}

	out := make([]GuesthouseSummary, 0, len(list))
	for _, g := range list {
		out = append(out, toSummary(g))
	}
	response.Success(c, http.StatusOK, gin.H{"guesthouses": out})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid guesthouse ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guesthouse not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not the owner of this guesthouse")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete guesthouse")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Reservations(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid guesthouse ID")
		return
	}

	rows, err := h.service.Reservations(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guesthouse not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not the owner of this guesthouse")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reservations")
		}
		return
	}

	out := make([]ReservationListItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, ReservationListItem{
			ID:       r.ID,
			RoomID:   r.RoomID,
			RoomName: r.RoomName,
			Guest: GuestSummary{
				ID:       r.GuestID,
				Username: r.GuestUsername,
			},
			CheckInDate:  r.CheckInDate.Format(domain.DateLayout),
			CheckOutDate: r.CheckOutDate.Format(domain.DateLayout),
			PeopleCount:  r.PeopleCount,
		})
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": out})
}

func toSummary(g domain.Guesthouse) GuesthouseSummary {
	return GuesthouseSummary{
		ID:        g.ID,
		Name:      g.Name,
		Address:   g.Address,
		Rating:    g.Rating,
		PhotoID:   g.PhotoID,
		RoomCount: g.RoomCount,
	}
}
