package dto

// LoginReq represents the request body for the /api/auth/login endpoint.
// Login shares the register validation rules for email and password.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
