package financeiro

// TipoExtra identifica o papel de um serviço extra cobrado na mudança.
type TipoExtra string

const (
	TipoAjudante    TipoExtra = "helper"
	TipoMontador    TipoExtra = "assembler"
	TipoEmpacotador TipoExtra = "packer"
	TipoOutro       TipoExtra = "other"
)

// PapeisFixos são os extras que admitem no máximo uma entrada por ordem.
var PapeisFixos = []TipoExtra{TipoAjudante, TipoMontador, TipoEmpacotador}

// EhPapelFixo retorna true para ajudante, montador e empacotador.
func EhPapelFixo(t TipoExtra) bool {
	for _, p := range PapeisFixos {
		if t == p {
			return true
		}
	}
	return false
}

// ServicoExtra é uma linha de mão de obra auxiliar com quantidade e custo unitário.
type ServicoExtra struct {
	ID            string    `json:"id"`
	Tipo          TipoExtra `json:"type"`
	Nome          string    `json:"name"`
	Quantidade    int       `json:"quantity"`
	CustoUnitario float64   `json:"cost"`
}

// Financeiro agrupa os valores de uma ordem de serviço.
type Financeiro struct {
	ValorTotal     float64        `json:"totalValue"`
	CustoMotorista float64        `json:"driverCost"`
	Extras         []ServicoExtra `gorm:"type:jsonb;serializer:json" json:"extras"`
}

// StatusPagamento marca quais dos três marcos o cliente já pagou.
type StatusPagamento struct {
	Entrada bool `json:"deposit"`
	Coleta  bool `json:"pickup"`
	Entrega bool `json:"delivery"`
}

// Percentual do valor total que cada marco representa. Juntos fecham 100%.
const (
	PercentualEntrada = 0.20
	PercentualColeta  = 0.40
	PercentualEntrega = 0.40
)

// Estágios de progresso derivados do pagamento. Sem marco pago a ordem é um lead.
const (
	ProgressoLead    = 0
	ProgressoEntrada = 20
	ProgressoColeta  = 60
	ProgressoEntrega = 100
)

// CalcularCustos soma o custo do motorista com os extras (quantidade × custo unitário).
func CalcularCustos(f Financeiro) float64 {
	total := f.CustoMotorista
	for _, e := range f.Extras {
		total += float64(e.Quantidade) * e.CustoUnitario
	}
	return total
}

// CalcularLucro retorna o valor total menos os custos.
func CalcularLucro(f Financeiro) float64 {
	return f.ValorTotal - CalcularCustos(f)
}

// CalcularValorRecebido soma as frações fixas de cada marco pago.
// Cada marco contribui com sua fração do valor total, independente dos demais;
// com os três pagos o resultado é o valor total.
func CalcularValorRecebido(valorTotal float64, p StatusPagamento) float64 {
	if p.Entrada && p.Coleta && p.Entrega {
		return valorTotal
	}
	recebido := 0.0
	if p.Entrada {
		recebido += valorTotal * PercentualEntrada
	}
	if p.Coleta {
		recebido += valorTotal * PercentualColeta
	}
	if p.Entrega {
		recebido += valorTotal * PercentualEntrega
	}
	return recebido
}

// CalcularProgresso deriva o estágio a partir dos marcos pagos.
// A entrega domina a coleta, que domina a entrada; sem marco pago, lead.
func CalcularProgresso(p StatusPagamento) int {
	switch {
	case p.Entrega:
		return ProgressoEntrega
	case p.Coleta:
		return ProgressoColeta
	case p.Entrada:
		return ProgressoEntrada
	default:
		return ProgressoLead
	}
}
