package ordemservico

import (
	"math"
	"time"
)

// Urgencia classifica a proximidade da coleta para exibição
type Urgencia string

const (
	UrgenciaAtrasada Urgencia = "late"
	UrgenciaCritica  Urgencia = "critical"
	UrgenciaAtencao  Urgencia = "warning"
	UrgenciaNormal   Urgencia = "normal"
)

// Janela de criticidade: coleta a até 5 dias, incluindo hoje e atrasos
const JanelaCriticaDias = 5

const formatoData = "2006-01-02"

func meiaNoite(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DiasAteColeta calcula a diferença em dias entre a meia-noite local de hoje
// e a meia-noite local da data de coleta, arredondando para cima.
// Retorna false para datas malformadas.
func DiasAteColeta(dataColeta string, agora time.Time) (int, bool) {
	alvo, err := time.ParseInLocation(formatoData, dataColeta, agora.Location())
	if err != nil {
		return 0, false
	}
	horas := alvo.Sub(meiaNoite(agora)).Hours()
	return int(math.Ceil(horas / 24)), true
}

// EhCritica indica se a ordem está na janela de urgência.
// Uma ordem entregue nunca é crítica, independente da data.
func EhCritica(o *OrdemServico, agora time.Time) bool {
	if o.Concluida() {
		return false
	}
	dias, ok := DiasAteColeta(o.DataColeta, agora)
	if !ok {
		return false
	}
	return dias <= JanelaCriticaDias
}

// ClassificarUrgencia devolve a faixa de urgência para a interface
func ClassificarUrgencia(o *OrdemServico, agora time.Time) Urgencia {
	if o.Concluida() {
		return UrgenciaNormal
	}
	dias, ok := DiasAteColeta(o.DataColeta, agora)
	if !ok {
		return UrgenciaNormal
	}
	switch {
	case dias < 0:
		return UrgenciaAtrasada
	case dias <= JanelaCriticaDias:
		return UrgenciaCritica
	case dias <= 10:
		return UrgenciaAtencao
	default:
		return UrgenciaNormal
	}
}
