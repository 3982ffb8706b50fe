package catalog

import "time"

type GuesthouseDetail struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Address     string  `json:"address"`
	PhoneNumber string  `json:"phone_number,omitempty"`
	Rating      float64 `json:"rating"`
	PhotoID     *int64  `json:"photo_id,omitempty"`
	RoomCount   int     `json:"room_count"`
}

type RoomItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Price    int64  `json:"price"`
	PhotoID  *int64 `json:"photo_id,omitempty"`
}

type ReviewItem struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservation_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type SearchQuery struct {
	CheckIn  time.Time
	CheckOut time.Time
	Name     string
	People   int
}

type SearchResult struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Rating        float64 `json:"rating"`
	PhotoID       *int64  `json:"photo_id,omitempty"`
	RoomCount     int     `json:"room_count"`
	RoomAvailable []int64 `json:"room_available"`
}
