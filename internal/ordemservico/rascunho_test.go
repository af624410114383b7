package ordemservico

import (
	"strings"
	"testing"
	"time"

	"github.com/ViaCargo/api-backoffice/internal/financeiro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNovoRascunhoComecaComoLead(t *testing.T) {
	r := NovoRascunho()
	o := r.Ordem()
	assert.Equal(t, financeiro.ProgressoLead, o.Progresso)
	assert.False(t, o.Pagamento.Entrada)
	assert.Empty(t, o.Financeiro.Extras)
}

func TestAtualizarPagamentoRecalculaProgressoNaHora(t *testing.T) {
	r := NovoRascunho()

	r.AtualizarPagamento(financeiro.StatusPagamento{Entrada: true})
	assert.Equal(t, financeiro.ProgressoEntrada, r.Ordem().Progresso)

	r.AtualizarPagamento(financeiro.StatusPagamento{Entrada: true, Coleta: true})
	assert.Equal(t, financeiro.ProgressoColeta, r.Ordem().Progresso)

	r.AtualizarPagamento(financeiro.StatusPagamento{Entrega: true})
	assert.Equal(t, financeiro.ProgressoEntrega, r.Ordem().Progresso)

	// desmarcar tudo volta para lead, sem valor velho sobrando
	r.AtualizarPagamento(financeiro.StatusPagamento{})
	assert.Equal(t, financeiro.ProgressoLead, r.Ordem().Progresso)
}

func TestRascunhoDeCorrigeProgressoDefasado(t *testing.T) {
	// valor persistido em desacordo com os marcos: a derivação manda
	o := OrdemServico{
		ID:        "abc",
		Progresso: financeiro.ProgressoEntrada,
		Pagamento: financeiro.StatusPagamento{Entrega: true},
	}
	r := RascunhoDe(o)
	assert.Equal(t, financeiro.ProgressoEntrega, r.Ordem().Progresso)
}

func TestDefinirPapelUpsert(t *testing.T) {
	r := NovoRascunho()

	// custo antes da quantidade não perde o valor
	require.NoError(t, r.DefinirPapel(financeiro.TipoAjudante, "Ajudante", 3, 0))
	require.NoError(t, r.DefinirPapel(financeiro.TipoAjudante, "Ajudante", 3, 50))

	extras := r.Ordem().Financeiro.Extras
	require.Len(t, extras, 1)
	assert.Equal(t, financeiro.TipoAjudante, extras[0].Tipo)
	assert.Equal(t, 3, extras[0].Quantidade)
	assert.Equal(t, 50.0, extras[0].CustoUnitario)
}

func TestDefinirPapelZeradoRemove(t *testing.T) {
	r := NovoRascunho()

	require.NoError(t, r.DefinirPapel(financeiro.TipoMontador, "Montador", 2, 80))
	require.Len(t, r.Ordem().Financeiro.Extras, 1)

	// zerar quantidade e custo, em qualquer ordem, remove a entrada
	require.NoError(t, r.DefinirPapel(financeiro.TipoMontador, "Montador", 0, 0))
	assert.Empty(t, r.Ordem().Financeiro.Extras)

	require.NoError(t, r.DefinirPapel(financeiro.TipoMontador, "Montador", 0, 80))
	require.Len(t, r.Ordem().Financeiro.Extras, 1)
	require.NoError(t, r.DefinirPapel(financeiro.TipoMontador, "Montador", 0, 0))
	assert.Empty(t, r.Ordem().Financeiro.Extras)
}

func TestDefinirPapelClampNegativo(t *testing.T) {
	r := NovoRascunho()

	// negativos viram zero em vez de erro; os dois zerados removem
	require.NoError(t, r.DefinirPapel(financeiro.TipoEmpacotador, "Empacotador", -2, -10))
	assert.Empty(t, r.Ordem().Financeiro.Extras)

	require.NoError(t, r.DefinirPapel(financeiro.TipoEmpacotador, "Empacotador", -2, 30))
	extras := r.Ordem().Financeiro.Extras
	require.Len(t, extras, 1)
	assert.Equal(t, 0, extras[0].Quantidade)
	assert.Equal(t, 30.0, extras[0].CustoUnitario)
}

func TestDefinirPapelRejeitaOutro(t *testing.T) {
	r := NovoRascunho()
	assert.ErrorIs(t, r.DefinirPapel(financeiro.TipoOutro, "Frete", 1, 10), ErrPapelInvalido)
}

func TestOutrosCoexistemSemMesclagem(t *testing.T) {
	r := NovoRascunho()

	id1 := r.AdicionarOutro("Caixas", 10, 12.5)
	id2 := r.AdicionarOutro("Caixas", 5, 12.5)
	assert.NotEqual(t, id1, id2)
	require.Len(t, r.Ordem().Financeiro.Extras, 2)

	r.RemoverOutro(id1)
	extras := r.Ordem().Financeiro.Extras
	require.Len(t, extras, 1)
	assert.Equal(t, id2, extras[0].ID)
}

func TestNotas(t *testing.T) {
	r := NovoRascunho()
	agora := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	r.AdicionarNota("Cliente pediu embalagem extra", "#ff0000", agora)
	r.AdicionarNota("Elevador reservado", "#00ff00", agora.Add(time.Hour))
	require.Len(t, r.Ordem().Notas, 2)

	require.NoError(t, r.RemoverNota(0))
	notas := r.Ordem().Notas
	require.Len(t, notas, 1)
	assert.Equal(t, "Elevador reservado", notas[0].Conteudo)

	assert.ErrorIs(t, r.RemoverNota(5), ErrNotaInexistente)
	assert.ErrorIs(t, r.RemoverNota(-1), ErrNotaInexistente)
}

func TestFinalizarExigeNomeCliente(t *testing.T) {
	r := NovoRascunho()
	_, err := r.Finalizar(time.Now())
	assert.ErrorIs(t, err, ErrNomeClienteObrigatorio)
}

func TestFinalizarAtribuiIdentidade(t *testing.T) {
	r := NovoRascunho()
	r.DefinirDadosCliente("Maria Souza", "11 99999-0000", "São Paulo", "Campinas")
	agora := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	o, err := r.Finalizar(agora)
	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.True(t, strings.HasPrefix(o.Numero, "OS-2024-"), o.Numero)
	assert.Equal(t, agora, o.CreatedAt)

	// o rascunho não é consumido: uma falha de gravação permite repetir
	assert.Empty(t, r.Ordem().ID)
}

func TestFinalizarPreservaIdentidadeExistente(t *testing.T) {
	criadaEm := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	r := RascunhoDe(OrdemServico{
		ID:          "id-existente",
		Numero:      "OS-2023-042",
		NomeCliente: "João Lima",
		CreatedAt:   criadaEm,
	})

	o, err := r.Finalizar(time.Now())
	require.NoError(t, err)
	assert.Equal(t, "id-existente", o.ID)
	assert.Equal(t, "OS-2023-042", o.Numero)
	assert.Equal(t, criadaEm, o.CreatedAt)
}

func TestExclusaoEmDuasEtapas(t *testing.T) {
	r := RascunhoDe(OrdemServico{ID: "id-existente", NomeCliente: "João Lima"})

	// confirmar sem solicitar é erro
	_, err := r.ConfirmarExclusao()
	assert.ErrorIs(t, err, ErrExclusaoNaoSolicitada)

	require.NoError(t, r.SolicitarExclusao())
	id, err := r.ConfirmarExclusao()
	require.NoError(t, err)
	assert.Equal(t, "id-existente", id)

	// a confirmação não fica armada
	_, err = r.ConfirmarExclusao()
	assert.ErrorIs(t, err, ErrExclusaoNaoSolicitada)
}

func TestExclusaoDeOrdemNovaFalha(t *testing.T) {
	r := NovoRascunho()
	assert.ErrorIs(t, r.SolicitarExclusao(), ErrOrdemSemID)
}

func TestExclusaoCancelada(t *testing.T) {
	r := RascunhoDe(OrdemServico{ID: "id-existente"})
	require.NoError(t, r.SolicitarExclusao())
	r.CancelarExclusao()
	_, err := r.ConfirmarExclusao()
	assert.ErrorIs(t, err, ErrExclusaoNaoSolicitada)
}

func TestRascunhoDeCopiaEstrutural(t *testing.T) {
	original := OrdemServico{
		ID:          "abc",
		NomeCliente: "Ana",
		Notas:       []Nota{{Conteudo: "nota"}},
		Financeiro: financeiro.Financeiro{
			ValorTotal: 1000,
			Extras: []financeiro.ServicoExtra{
				{ID: "e1", Tipo: financeiro.TipoAjudante, Quantidade: 1, CustoUnitario: 100},
			},
		},
	}

	r := RascunhoDe(original)
	r.AdicionarNota("nova", "#fff", time.Now())
	require.NoError(t, r.DefinirPapel(financeiro.TipoAjudante, "Ajudante", 0, 0))

	// a ordem original não é tocada pela edição
	assert.Len(t, original.Notas, 1)
	assert.Len(t, original.Financeiro.Extras, 1)
}
