package ordemservico

import (
	"testing"
	"time"

	"github.com/ViaCargo/api-backoffice/internal/financeiro"
	"github.com/stretchr/testify/assert"
)

// "hoje" fixo no meio do dia para exercitar a normalização à meia-noite
var hoje = time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

func TestDiasAteColeta(t *testing.T) {
	casos := []struct {
		data     string
		esperado int
	}{
		{"2024-06-10", 0},
		{"2024-06-11", 1},
		{"2024-06-15", 5},
		{"2024-06-16", 6},
		{"2024-06-09", -1},
		{"2024-05-31", -10},
	}
	for _, c := range casos {
		dias, ok := DiasAteColeta(c.data, hoje)
		assert.True(t, ok, c.data)
		assert.Equal(t, c.esperado, dias, c.data)
	}
}

func TestDiasAteColetaDataMalformada(t *testing.T) {
	_, ok := DiasAteColeta("10/06/2024", hoje)
	assert.False(t, ok)
	_, ok = DiasAteColeta("", hoje)
	assert.False(t, ok)
}

func TestEhCriticaLimites(t *testing.T) {
	// coleta daqui a exatamente 5 dias ainda é crítica
	o := OrdemServico{DataColeta: "2024-06-15"}
	assert.True(t, EhCritica(&o, hoje))

	// 6 dias já não é
	o.DataColeta = "2024-06-16"
	assert.False(t, EhCritica(&o, hoje))

	// atrasada segue crítica
	o.DataColeta = "2024-06-09"
	assert.True(t, EhCritica(&o, hoje))

	// coleta hoje é crítica
	o.DataColeta = "2024-06-10"
	assert.True(t, EhCritica(&o, hoje))
}

func TestEhCriticaOrdemEntregue(t *testing.T) {
	// entregue nunca é crítica, mesmo com coleta hoje
	o := OrdemServico{DataColeta: "2024-06-10", Progresso: financeiro.ProgressoEntrega}
	assert.False(t, EhCritica(&o, hoje))
}

func TestEhCriticaDataMalformada(t *testing.T) {
	o := OrdemServico{DataColeta: "amanhã"}
	assert.False(t, EhCritica(&o, hoje))
}

func TestClassificarUrgencia(t *testing.T) {
	casos := []struct {
		data     string
		esperado Urgencia
	}{
		{"2024-06-09", UrgenciaAtrasada},
		{"2024-06-10", UrgenciaCritica},
		{"2024-06-15", UrgenciaCritica},
		{"2024-06-16", UrgenciaAtencao},
		{"2024-06-20", UrgenciaAtencao},
		{"2024-06-21", UrgenciaNormal},
		{"data-ruim", UrgenciaNormal},
	}
	for _, c := range casos {
		o := OrdemServico{DataColeta: c.data}
		assert.Equal(t, c.esperado, ClassificarUrgencia(&o, hoje), c.data)
	}

	entregue := OrdemServico{DataColeta: "2024-06-09", Progresso: financeiro.ProgressoEntrega}
	assert.Equal(t, UrgenciaNormal, ClassificarUrgencia(&entregue, hoje))
}
