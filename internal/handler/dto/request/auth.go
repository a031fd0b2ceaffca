package request

type LoginRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type RegisterRequest struct {
	ID            string `json:"id" binding:"required"`
	Password      string `json:"password" binding:"required,min=8"`
	PasswordCheck string `json:"password_check" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
}
