package ordemservico

import (
	"time"

	"github.com/ViaCargo/api-backoffice/internal/financeiro"
)

// OrdemServico representa uma mudança acompanhada do lead até a entrega
type OrdemServico struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Numero    string    `gorm:"size:20;index" json:"orderNumber"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	NomeCliente string `gorm:"size:255;not null" json:"clientName"`
	Telefone    string `gorm:"size:30" json:"phone"`

	Origem  string `json:"origin"`
	Destino string `json:"destination"`

	// Datas de calendário no formato YYYY-MM-DD, sem componente de hora
	DataColeta  string `gorm:"size:10;index" json:"pickupDate"`
	DataEntrega string `gorm:"size:10" json:"deliveryDate"`

	ContratoAssinado       bool `json:"isContractSigned"`
	PublicadaNoMarketplace bool `json:"isPostedToMarketplace"`
	CustosPagos            bool `json:"isCostsPaid"`

	Pagamento financeiro.StatusPagamento `gorm:"embedded;embeddedPrefix:pagamento_" json:"paymentStatus"`

	// Sempre derivado do pagamento; recalculado a cada escrita nos marcos
	Progresso int `json:"progress"`

	Financeiro financeiro.Financeiro `gorm:"embedded;embeddedPrefix:financeiro_" json:"financials"`

	// Notas em JSONB, na ordem de inclusão
	Notas []Nota `gorm:"type:jsonb;serializer:json" json:"notes"`

	// Cor-resumo da ordem no kanban, independente das cores de cada nota
	CorEtiqueta string `gorm:"size:9" json:"noteTags"`
}

// Nota é uma anotação livre com etiqueta de cor
type Nota struct {
	Conteudo string    `json:"content"`
	Cor      string    `json:"color"`
	CriadaEm time.Time `json:"createdAt"`
}

// Concluida indica que os três marcos foram pagos
func (o *OrdemServico) Concluida() bool {
	return o.Progresso >= financeiro.ProgressoEntrega
}

// ValorRecebido é o total já pago pelo cliente segundo os marcos
func (o *OrdemServico) ValorRecebido() float64 {
	return financeiro.CalcularValorRecebido(o.Financeiro.ValorTotal, o.Pagamento)
}

// ValorPendente é a exposição a receber desta ordem
func (o *OrdemServico) ValorPendente() float64 {
	return o.Financeiro.ValorTotal - o.ValorRecebido()
}
