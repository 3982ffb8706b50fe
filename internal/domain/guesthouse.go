package domain

import "time"

type Guesthouse struct {
	ID          int64     `json:"id"`
	HostID      int64     `json:"host_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	PhotoID     *int64    `json:"photo_id,omitempty"`
	RoomCount   int       `json:"room_count"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
