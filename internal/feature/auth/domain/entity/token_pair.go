package entity

// TokenPair is an access/refresh token pair issued on register, login
// and refresh. Both tokens are signed and carry the user identifier;
// validity is delegated entirely to the signature and the embedded
// expiry claim. There is no server-side token state and no revocation:
// a token stays valid until it expires.
type TokenPair struct {
	// AccessToken is the short-lived token used to authorize API requests.
	AccessToken string

	// RefreshToken is the long-lived token exchanged for a new pair.
	RefreshToken string
}
