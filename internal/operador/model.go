package operador

import (
	"time"
)

// Operador é a conta que acessa o painel; o sistema é single-tenant
type Operador struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Nome  string `gorm:"size:255" json:"nome"`
	Email string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Senha string `gorm:"size:255;not null" json:"-"`
}
