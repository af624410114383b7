package meta

import (
	"time"
)

// MetaMensal é o objetivo de faturamento de um mês, um valor por chave YYYY-MM
type MetaMensal struct {
	Mes       string    `gorm:"primaryKey;size:7" json:"month"`
	Valor     float64   `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
