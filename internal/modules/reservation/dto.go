package reservation

type CreateReservationRequest struct {
	RoomID       int64  `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	PeopleCount  int    `json:"people_count" binding:"required"`
}

type ReservationItem struct {
	ID             int64   `json:"id"`
	RoomID         int64   `json:"room_id"`
	GuesthouseID   int64   `json:"guesthouse_id"`
	GuesthouseName string  `json:"guesthouse_name"`
	CheckInDate    string  `json:"check_in_date"`
	CheckOutDate   string  `json:"check_out_date"`
	PeopleCount    int     `json:"people_count"`
	ReviewID       *int64  `json:"review_id,omitempty"`
	ReviewComment  *string `json:"review_comment,omitempty"`
}
