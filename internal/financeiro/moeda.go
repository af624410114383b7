package financeiro

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var impressora = message.NewPrinter(language.BrazilianPortuguese)

// FormatarMoeda formata um valor em reais no padrão pt-BR ("R$ 1.234,56"),
// arredondando para o centavo mais próximo (meio para cima).
func FormatarMoeda(valor float64) string {
	centavos := math.Round(valor * 100)
	arredondado := centavos / 100
	return impressora.Sprintf("R$ %v", number.Decimal(arredondado,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
