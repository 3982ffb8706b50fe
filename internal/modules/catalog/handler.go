package catalog

import (
	"net/http"
	"strconv"
	"strings"
	"time"

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
	rg.GET("/guesthouse/search", h.Search)
	rg.GET("/guesthouse/:id", h.Detail)
	rg.GET("/guesthouse/:id/rooms", h.Rooms)
	rg.GET("/guesthouse/:id/reviews", h.Reviews)
}

func (h *Handler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid guesthouse ID")
		return
	}

	g, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guesthouse not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load guesthouse")
		}
		return
	}

	response.Success(c, http.StatusOK, GuesthouseDetail{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Address:     g.Address,
		PhoneNumber: g.PhoneNumber,
		Rating:      g.Rating,
		PhotoID:     g.PhotoID,
		RoomCount:   g.RoomCount,
	})
}

func (h *Handler) Rooms(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid guesthouse ID")
		return
	}

	// ?ids=1,2,3 narrows the list to the given room ids.
	var filterIDs []int64
	if raw := c.Query("ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			roomID, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "ids must be a comma-separated list of room ids")
				return
			}
			filterIDs = append(filterIDs, roomID)
		}
	}

	rooms, err := h.service.Rooms(c.Request.Context(), id, filterIDs)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guesthouse not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		}
		return
	}

	out := make([]RoomItem, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomItem{
			ID:       r.ID,
			Name:     r.Name,
			Capacity: r.Capacity,
			Price:    r.Price,
			PhotoID:  r.PhotoID,
		})
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": out})
}

func (h *Handler) Reviews(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid guesthouse ID")
		return
	}

	reviews, err := h.service.Reviews(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guesthouse not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews")
		}
		return
	}

	out := make([]ReviewItem, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, ReviewItem{
			ID:            rv.ID,
			ReservationID: rv.ReservationID,
			Rating:        rv.Rating,
			Comment:       rv.Comment,
			CreatedAt:     rv.CreatedAt,
		})
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": out})
}

// Search defaults: check_in today, check_out the next day, any name, one
// person.
func (h *Handler) Search(c *gin.Context) {
	q := SearchQuery{Name: c.Query("name"), People: 1}

	q.CheckIn = domain.Today()
	if raw := c.Query("check_in"); raw != "" {
		t, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in must be formatted YYYY-MM-DD")
			return
		}
		q.CheckIn = t
	}

	q.CheckOut = q.CheckIn.AddDate(0, 0, 1)
	if raw := c.Query("check_out"); raw != "" {
		t, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_out must be formatted YYYY-MM-DD")
			return
		}
		q.CheckOut = t
	}

	if raw := c.Query("people"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "people must be an integer")
			return
		}
		q.People = n
	}

	results, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid search parameters")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"guesthouses": results})
}
