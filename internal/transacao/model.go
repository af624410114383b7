package transacao

import (
	"time"
)

// Tipo é o sentido do movimento de caixa
type Tipo string

const (
	TipoReceita Tipo = "income"
	TipoDespesa Tipo = "expense"
)

// Valida retorna true para um tipo conhecido
func (t Tipo) Valida() bool {
	return t == TipoReceita || t == TipoDespesa
}

// Transacao é um movimento de caixa avulso, sem vínculo com ordem
type Transacao struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Descricao string `gorm:"size:255;not null" json:"description"`
	// Sempre armazenado positivo; o sentido vem do tipo
	Valor     float64 `gorm:"not null" json:"amount"`
	Tipo      Tipo    `gorm:"size:10;not null;index" json:"type"`
	Data      string  `gorm:"size:10;index" json:"date"`
	Categoria string  `gorm:"size:100" json:"category,omitempty"`
}
