package dashboard

import (
	"time"

	"github.com/ViaCargo/api-backoffice/internal/financeiro"
	"github.com/ViaCargo/api-backoffice/internal/ordemservico"
	"github.com/ViaCargo/api-backoffice/internal/transacao"
)

// Resumo são os números de caixa de um mês calendário
type Resumo struct {
	Mes      string  `json:"month"`
	Entradas float64 `json:"cashIn"`
	Saidas   float64 `json:"cashOut"`
	Saldo    float64 `json:"net"`
}

// Contagem particiona as ordens para os contadores de filtro da interface.
// As faixas não são mutuamente exclusivas com o total.
type Contagem struct {
	Todas      int `json:"all"`
	Ativas     int `json:"active"`
	Concluidas int `json:"completed"`
	Criticas   int `json:"critical"`
}

func pertenceAoMes(data, mes string) bool {
	return len(data) >= 7 && data[:7] == mes
}

// ResumoMensal reduz ordens e transações ao caixa líquido de um mês.
// Entra o valor já recebido das ordens com coleta no mês; sai o custo das
// ordens cujos custos foram de fato pagos (custo comprometido mas não pago
// não reduz caixa). Transações avulsas do mês somam no seu sentido.
// A função é pura na chave do mês: o cartão de faturamento e o widget de
// meta navegam meses independentes chamando com chaves diferentes.
func ResumoMensal(ordens []ordemservico.OrdemServico, transacoes []transacao.Transacao, mes string) Resumo {
	resumo := Resumo{Mes: mes}

	for i := range ordens {
		o := &ordens[i]
		if !pertenceAoMes(o.DataColeta, mes) {
			continue
		}
		resumo.Entradas += o.ValorRecebido()
		if o.CustosPagos {
			resumo.Saidas += financeiro.CalcularCustos(o.Financeiro)
		}
	}

	for _, t := range transacoes {
		if !pertenceAoMes(t.Data, mes) {
			continue
		}
		switch t.Tipo {
		case transacao.TipoReceita:
			resumo.Entradas += t.Valor
		case transacao.TipoDespesa:
			resumo.Saidas += t.Valor
		}
	}

	resumo.Saldo = resumo.Entradas - resumo.Saidas
	return resumo
}

// RecebiveisPendentes soma o que falta receber de todas as ordens,
// sem recorte de mês: é a exposição total de contas a receber.
func RecebiveisPendentes(ordens []ordemservico.OrdemServico) float64 {
	total := 0.0
	for i := range ordens {
		total += ordens[i].ValorPendente()
	}
	return total
}

// Contagens reduz a coleção inteira aos contadores de status
func Contagens(ordens []ordemservico.OrdemServico, agora time.Time) Contagem {
	c := Contagem{Todas: len(ordens)}
	for i := range ordens {
		o := &ordens[i]
		if o.Concluida() {
			c.Concluidas++
		} else {
			c.Ativas++
		}
		if ordemservico.EhCritica(o, agora) {
			c.Criticas++
		}
	}
	return c
}
