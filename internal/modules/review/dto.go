package review

import "time"

type CreateReviewRequest struct {
	ReservationID int64  `json:"reservation_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

type ReviewResponse struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
