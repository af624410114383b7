package ordemservico

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Filtro seleciona o recorte da lista de ordens
type Filtro string

const (
	FiltroTodas      Filtro = "all"
	FiltroAtivas     Filtro = "active"
	FiltroConcluidas Filtro = "completed"
	FiltroCriticas   Filtro = "critical"
)

// ParseFiltro converte o parâmetro da query no enum fechado
func ParseFiltro(s string) (Filtro, error) {
	switch Filtro(s) {
	case "", FiltroTodas:
		return FiltroTodas, nil
	case FiltroAtivas:
		return FiltroAtivas, nil
	case FiltroConcluidas:
		return FiltroConcluidas, nil
	case FiltroCriticas:
		return FiltroCriticas, nil
	default:
		return "", fmt.Errorf("filtro desconhecido: %q", s)
	}
}

func (f Filtro) aceita(o *OrdemServico, agora time.Time) bool {
	switch f {
	case FiltroAtivas:
		return !o.Concluida()
	case FiltroConcluidas:
		return o.Concluida()
	case FiltroCriticas:
		return EhCritica(o, agora)
	default:
		return true
	}
}

// FiltrarPorMes recorta as ordens com coleta no mês "YYYY-MM"
func FiltrarPorMes(ordens []OrdemServico, mes string) []OrdemServico {
	var resultado []OrdemServico
	for i := range ordens {
		if strings.HasPrefix(ordens[i].DataColeta, mes) {
			resultado = append(resultado, ordens[i])
		}
	}
	return resultado
}

// FiltrarOrdenar aplica o filtro e ordena por data de coleta ascendente.
// Ordens com a mesma data preservam a posição relativa original.
func FiltrarOrdenar(ordens []OrdemServico, filtro Filtro, agora time.Time) []OrdemServico {
	var resultado []OrdemServico
	for i := range ordens {
		if filtro.aceita(&ordens[i], agora) {
			resultado = append(resultado, ordens[i])
		}
	}
	sort.SliceStable(resultado, func(i, j int) bool {
		return resultado[i].DataColeta < resultado[j].DataColeta
	})
	return resultado
}
