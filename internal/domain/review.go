package domain

import (
	"math"
	"time"
)

type Review struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AverageRating averages review ratings and rounds half-up at the tenths
// digit. An empty slice yields 0.0.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0.0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Floor(avg*10+0.5) / 10
}
