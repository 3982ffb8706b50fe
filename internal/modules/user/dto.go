package user

type SignUpRequest struct {
	Username    string `json:"username" binding:"required"`
	LoginID     string `json:"login_id" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role" binding:"required"`
	PhoneNumber string `json:"phone_number"`
}

type LoginRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type UserInfo struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	LoginID     string `json:"login_id"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phone_number,omitempty"`
}
