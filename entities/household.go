package entities

import (
	"github.com/google/uuid"
)

type Household struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name           string    `json:"name"`
	Email          string    `gorm:"uniqueIndex" json:"email"`
	PassphraseHash string    `json:"-"`

	Timestamp
}
