package ordemservico

import (
	"time"

	"github.com/ViaCargo/api-backoffice/internal/financeiro"
)

type extraRequest struct {
	Tipo          financeiro.TipoExtra `json:"type" validate:"required,oneof=helper assembler packer other"`
	Nome          string               `json:"name"`
	Quantidade    int                  `json:"quantity"`
	CustoUnitario float64              `json:"cost"`
}

type notaRequest struct {
	Conteudo string    `json:"content" validate:"required"`
	Cor      string    `json:"color"`
	CriadaEm time.Time `json:"createdAt"`
}

type financeiroRequest struct {
	ValorTotal     float64        `json:"totalValue" validate:"gte=0"`
	CustoMotorista float64        `json:"driverCost" validate:"gte=0"`
	Extras         []extraRequest `json:"extras" validate:"dive"`
}

type ordemRequest struct {
	NomeCliente string `json:"clientName" validate:"required"`
	Telefone    string `json:"phone"`
	Origem      string `json:"origin"`
	Destino     string `json:"destination"`

	DataColeta  string `json:"pickupDate" validate:"omitempty,datetime=2006-01-02"`
	DataEntrega string `json:"deliveryDate" validate:"omitempty,datetime=2006-01-02"`

	ContratoAssinado       bool `json:"isContractSigned"`
	PublicadaNoMarketplace bool `json:"isPostedToMarketplace"`
	CustosPagos            bool `json:"isCostsPaid"`

	Pagamento  financeiro.StatusPagamento `json:"paymentStatus"`
	Financeiro financeiroRequest          `json:"financials"`

	Notas       []notaRequest `json:"notes" validate:"dive"`
	CorEtiqueta string        `json:"noteTags"`
}

// aplicar despeja o payload no rascunho passando por todas as regras:
// clamp de valores, upsert de papéis fixos e derivação do progresso
func (req *ordemRequest) aplicar(r *Rascunho, agora time.Time) {
	r.DefinirDadosCliente(req.NomeCliente, req.Telefone, req.Origem, req.Destino)
	r.DefinirDatas(req.DataColeta, req.DataEntrega)
	r.DefinirFlags(req.ContratoAssinado, req.PublicadaNoMarketplace, req.CustosPagos)
	r.DefinirValores(req.Financeiro.ValorTotal, req.Financeiro.CustoMotorista)
	r.DefinirCorEtiqueta(req.CorEtiqueta)
	r.AtualizarPagamento(req.Pagamento)

	// replace completo: o payload traz o conjunto inteiro de extras
	r.LimparExtras()
	for _, e := range req.Financeiro.Extras {
		if financeiro.EhPapelFixo(e.Tipo) {
			_ = r.DefinirPapel(e.Tipo, e.Nome, e.Quantidade, e.CustoUnitario)
		} else {
			r.AdicionarOutro(e.Nome, e.Quantidade, e.CustoUnitario)
		}
	}

	notas := make([]Nota, 0, len(req.Notas))
	for _, n := range req.Notas {
		criadaEm := n.CriadaEm
		if criadaEm.IsZero() {
			criadaEm = agora
		}
		notas = append(notas, Nota{Conteudo: n.Conteudo, Cor: n.Cor, CriadaEm: criadaEm})
	}
	r.SubstituirNotas(notas)
}
