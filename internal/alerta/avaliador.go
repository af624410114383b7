package alerta

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/ViaCargo/api-backoffice/internal/ordemservico"
	"gorm.io/gorm"
)

// ChaveUltimoAlerta guarda o instante do último alerta em epoch millis
const ChaveUltimoAlerta = "viacargo:ultimo_alerta"

// IntervaloReenvio é a janela de silêncio entre alertas. O debounce é
// global: uma ordem que vira crítica dentro da janela não gera aviso próprio.
const IntervaloReenvio = 5 * time.Hour

// Avaliador varre as ordens em busca de coletas na janela crítica e dispara
// no máximo um alerta por janela de silêncio
type Avaliador struct {
	DB          *gorm.DB
	Ordens      ordemservico.Repository
	Store       Armazenamento
	Notificador Notificador
	// Agora é injetável para os testes controlarem o relógio
	Agora func() time.Time
}

func NovoAvaliador(db *gorm.DB, store Armazenamento, notificador Notificador) *Avaliador {
	return &Avaliador{
		DB:          db,
		Ordens:      ordemservico.NewRepository(),
		Store:       store,
		Notificador: notificador,
		Agora:       time.Now,
	}
}

// Verificar roda uma passada de recomputação: coleta as ordens críticas e,
// se houver alguma e a janela de silêncio tiver vencido, notifica e carimba
// o novo instante. Roda no tick periódico e após mutações de ordens.
func (a *Avaliador) Verificar(ctx context.Context) error {
	agora := a.Agora()

	ordens, err := a.Ordens.Listar(a.DB)
	if err != nil {
		return fmt.Errorf("alerta: listar ordens: %w", err)
	}

	var clientes []string
	for i := range ordens {
		if ordemservico.EhCritica(&ordens[i], agora) {
			clientes = append(clientes, ordens[i].NomeCliente)
		}
	}
	if len(clientes) == 0 {
		return nil
	}

	bruto, err := a.Store.Obter(ctx, ChaveUltimoAlerta)
	if err != nil {
		return fmt.Errorf("alerta: ler carimbo: %w", err)
	}
	if bruto != "" {
		millis, err := strconv.ParseInt(bruto, 10, 64)
		if err == nil {
			ultimo := time.UnixMilli(millis)
			if agora.Sub(ultimo) < IntervaloReenvio {
				return nil
			}
		}
	}

	alerta := Alerta{
		Quantidade: len(clientes),
		Clientes:   clientes,
		Mensagem:   fmt.Sprintf("%d ordem(ns) com coleta crítica", len(clientes)),
	}
	if err := a.Notificador.Notificar(ctx, alerta); err != nil {
		return fmt.Errorf("alerta: notificar: %w", err)
	}

	carimbo := strconv.FormatInt(agora.UnixMilli(), 10)
	if err := a.Store.Definir(ctx, ChaveUltimoAlerta, carimbo); err != nil {
		return fmt.Errorf("alerta: gravar carimbo: %w", err)
	}
	return nil
}

// Tick é o corpo do job periódico de recomputação
func (a *Avaliador) Tick() {
	if err := a.Verificar(context.Background()); err != nil {
		log.Printf("%v", err)
	}
}
