// Package profile synthesizes placeholder profile fields for new users.
package profile

import (
	"github.com/brianvoe/gofakeit/v6"

	"shop_backend/internal/feature/auth/domain/entity"
)

// phonePattern is the placeholder phone format assigned to new accounts.
const phonePattern = "+375 (##) ###-##-##"

// Generator produces fake profile data. It implements the usecase's
// ProfileGenerator interface.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// NewProfile returns a freshly generated placeholder profile:
// a random first name, an avatar URL and a formatted phone number.
func (g *Generator) NewProfile() entity.Profile {
	return entity.Profile{
		Name:       gofakeit.FirstName(),
		AvatarPath: gofakeit.ImageURL(300, 300),
		Phone:      gofakeit.Numerify(phonePattern),
	}
}
