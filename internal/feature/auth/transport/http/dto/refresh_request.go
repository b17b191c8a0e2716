package dto

// RefreshReq represents the request for the /api/auth/login/access-token endpoint.
type RefreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
