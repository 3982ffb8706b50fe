package guesthouse

type RoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
	Price    int64  `json:"price"`
	PhotoID  *int64 `json:"photo_id"`
}

type CreateGuesthouseRequest struct {
	Name        string        `json:"name" binding:"required"`
	Description string        `json:"description"`
	Address     string        `json:"address" binding:"required"`
	PhoneNumber string        `json:"phone_number"`
	PhotoID     *int64        `json:"photo_id"`
	RoomCount   *int          `json:"room_count"`
	Rooms       []RoomRequest `json:"rooms"`
}

type GuesthouseSummary struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Rating    float64 `json:"rating"`
	PhotoID   *int64  `json:"photo_id,omitempty"`
	RoomCount int     `json:"room_count"`
}

type GuestSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type ReservationListItem struct {
	ID           int64        `json:"id"`
	RoomID       int64        `json:"room_id"`
	RoomName     string       `json:"room_name"`
	Guest        GuestSummary `json:"guest"`
	CheckInDate  string       `json:"check_in_date"`
	CheckOutDate string       `json:"check_out_date"`
	PeopleCount  int          `json:"people_count"`
}
