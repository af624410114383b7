package ordemservico

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/ViaCargo/api-backoffice/internal/financeiro"
	"github.com/google/uuid"
)

var (
	ErrNomeClienteObrigatorio = errors.New("nome do cliente é obrigatório")
	ErrPapelInvalido          = errors.New("tipo de extra não é um papel fixo")
	ErrExclusaoNaoSolicitada  = errors.New("exclusão não foi solicitada")
	ErrOrdemSemID             = errors.New("ordem ainda não foi persistida")
	ErrNotaInexistente        = errors.New("nota inexistente")
)

// Rascunho mantém a edição em memória de uma ordem, nova ou existente.
// Nenhuma alteração toca o banco até Finalizar; os invariantes de progresso
// e de extras são aplicados a cada escrita.
type Rascunho struct {
	ordem  OrdemServico
	papeis map[financeiro.TipoExtra]financeiro.ServicoExtra
	outros []financeiro.ServicoExtra

	existente        bool
	exclusaoPendente bool
}

// NovoRascunho inicia uma ordem vazia: flags desligadas e progresso de lead
func NovoRascunho() *Rascunho {
	return &Rascunho{
		ordem: OrdemServico{
			Progresso: financeiro.CalcularProgresso(financeiro.StatusPagamento{}),
		},
		papeis: make(map[financeiro.TipoExtra]financeiro.ServicoExtra),
	}
}

// RascunhoDe copia estruturalmente uma ordem existente para edição,
// separando os extras entre papéis fixos e avulsos
func RascunhoDe(o OrdemServico) *Rascunho {
	r := &Rascunho{
		ordem:     o,
		papeis:    make(map[financeiro.TipoExtra]financeiro.ServicoExtra),
		existente: true,
	}
	r.ordem.Notas = append([]Nota(nil), o.Notas...)
	for _, e := range o.Financeiro.Extras {
		if financeiro.EhPapelFixo(e.Tipo) {
			r.papeis[e.Tipo] = e
		} else {
			r.outros = append(r.outros, e)
		}
	}
	r.ordem.Financeiro.Extras = nil
	// valor persistido pode estar defasado; a derivação manda
	r.ordem.Progresso = financeiro.CalcularProgresso(r.ordem.Pagamento)
	return r
}

// Ordem devolve o estado atual do rascunho com os extras já mesclados
func (r *Rascunho) Ordem() OrdemServico {
	o := r.ordem
	o.Financeiro.Extras = r.extras()
	o.Notas = append([]Nota(nil), r.ordem.Notas...)
	return o
}

// DefinirDadosCliente atualiza os campos de identificação e rota
func (r *Rascunho) DefinirDadosCliente(nome, telefone, origem, destino string) {
	r.ordem.NomeCliente = nome
	r.ordem.Telefone = telefone
	r.ordem.Origem = origem
	r.ordem.Destino = destino
}

// DefinirDatas atualiza as datas de coleta e previsão de entrega
func (r *Rascunho) DefinirDatas(coleta, entrega string) {
	r.ordem.DataColeta = coleta
	r.ordem.DataEntrega = entrega
}

// DefinirFlags atualiza os marcadores de contrato, marketplace e custos
func (r *Rascunho) DefinirFlags(contratoAssinado, publicada, custosPagos bool) {
	r.ordem.ContratoAssinado = contratoAssinado
	r.ordem.PublicadaNoMarketplace = publicada
	r.ordem.CustosPagos = custosPagos
}

// DefinirValores atualiza o valor total e o custo do motorista, nunca negativos
func (r *Rascunho) DefinirValores(valorTotal, custoMotorista float64) {
	if valorTotal < 0 {
		valorTotal = 0
	}
	if custoMotorista < 0 {
		custoMotorista = 0
	}
	r.ordem.Financeiro.ValorTotal = valorTotal
	r.ordem.Financeiro.CustoMotorista = custoMotorista
}

// DefinirCorEtiqueta atualiza a cor-resumo do kanban
func (r *Rascunho) DefinirCorEtiqueta(cor string) {
	r.ordem.CorEtiqueta = cor
}

// AtualizarPagamento grava os marcos e recalcula o progresso na mesma
// operação, antes de qualquer leitura do rascunho
func (r *Rascunho) AtualizarPagamento(p financeiro.StatusPagamento) {
	r.ordem.Pagamento = p
	r.ordem.Progresso = financeiro.CalcularProgresso(p)
}

// DefinirPapel faz o upsert do extra de um papel fixo: cada papel tem no
// máximo uma entrada. Quantidade e custo negativos são zerados; com os dois
// zerados a entrada do papel é removida.
func (r *Rascunho) DefinirPapel(tipo financeiro.TipoExtra, nome string, quantidade int, custoUnitario float64) error {
	if !financeiro.EhPapelFixo(tipo) {
		return ErrPapelInvalido
	}
	if quantidade < 0 {
		quantidade = 0
	}
	if custoUnitario < 0 {
		custoUnitario = 0
	}
	if quantidade == 0 && custoUnitario == 0 {
		delete(r.papeis, tipo)
		return nil
	}

	entrada, ok := r.papeis[tipo]
	if !ok {
		entrada = financeiro.ServicoExtra{ID: uuid.NewString(), Tipo: tipo}
	}
	entrada.Nome = nome
	entrada.Quantidade = quantidade
	entrada.CustoUnitario = custoUnitario
	r.papeis[tipo] = entrada
	return nil
}

// AdicionarOutro inclui um extra avulso, sem mesclagem com os demais
func (r *Rascunho) AdicionarOutro(nome string, quantidade int, custoUnitario float64) string {
	if quantidade < 0 {
		quantidade = 0
	}
	if custoUnitario < 0 {
		custoUnitario = 0
	}
	e := financeiro.ServicoExtra{
		ID:            uuid.NewString(),
		Tipo:          financeiro.TipoOutro,
		Nome:          nome,
		Quantidade:    quantidade,
		CustoUnitario: custoUnitario,
	}
	r.outros = append(r.outros, e)
	return e.ID
}

// RemoverOutro descarta um extra avulso pelo id
func (r *Rascunho) RemoverOutro(id string) {
	for i, e := range r.outros {
		if e.ID == id {
			r.outros = append(r.outros[:i], r.outros[i+1:]...)
			return
		}
	}
}

// LimparExtras zera o conjunto de trabalho para um replace completo
func (r *Rascunho) LimparExtras() {
	r.papeis = make(map[financeiro.TipoExtra]financeiro.ServicoExtra)
	r.outros = nil
}

// AdicionarNota acrescenta uma anotação ao final da lista
func (r *Rascunho) AdicionarNota(conteudo, cor string, agora time.Time) {
	r.ordem.Notas = append(r.ordem.Notas, Nota{
		Conteudo: conteudo,
		Cor:      cor,
		CriadaEm: agora,
	})
}

// RemoverNota descarta a anotação pelo índice; notas não são editadas no lugar
func (r *Rascunho) RemoverNota(indice int) error {
	if indice < 0 || indice >= len(r.ordem.Notas) {
		return ErrNotaInexistente
	}
	r.ordem.Notas = append(r.ordem.Notas[:indice], r.ordem.Notas[indice+1:]...)
	return nil
}

// SubstituirNotas troca a lista inteira, na semântica de replace do update
func (r *Rascunho) SubstituirNotas(notas []Nota) {
	r.ordem.Notas = append([]Nota(nil), notas...)
}

// extras mescla papéis fixos (em ordem estável) com os avulsos
func (r *Rascunho) extras() []financeiro.ServicoExtra {
	var lista []financeiro.ServicoExtra
	for _, tipo := range financeiro.PapeisFixos {
		if e, ok := r.papeis[tipo]; ok {
			lista = append(lista, e)
		}
	}
	return append(lista, r.outros...)
}

// Finalizar valida o rascunho e monta a ordem pronta para persistência.
// Ordens novas recebem id, número de exibição e data de criação.
// O rascunho não é alterado: se a gravação falhar, a edição continua intacta.
func (r *Rascunho) Finalizar(agora time.Time) (OrdemServico, error) {
	if r.ordem.NomeCliente == "" {
		return OrdemServico{}, ErrNomeClienteObrigatorio
	}

	o := r.Ordem()
	if o.ID == "" {
		o.ID = uuid.NewString()
		// rótulo humano, apenas exibição; a unicidade vem do id
		o.Numero = fmt.Sprintf("OS-%d-%03d", agora.Year(), rand.Intn(1000))
		o.CreatedAt = agora
	}
	return o, nil
}

// SolicitarExclusao inicia a confirmação em duas etapas
func (r *Rascunho) SolicitarExclusao() error {
	if !r.existente || r.ordem.ID == "" {
		return ErrOrdemSemID
	}
	r.exclusaoPendente = true
	return nil
}

// CancelarExclusao desfaz a solicitação pendente
func (r *Rascunho) CancelarExclusao() {
	r.exclusaoPendente = false
}

// ConfirmarExclusao devolve o id a excluir; falha sem solicitação prévia
func (r *Rascunho) ConfirmarExclusao() (string, error) {
	if !r.exclusaoPendente {
		return "", ErrExclusaoNaoSolicitada
	}
	r.exclusaoPendente = false
	return r.ordem.ID, nil
}
