package documento

import (
	"bytes"
	"errors"
	"html/template"

	"github.com/ViaCargo/api-backoffice/internal/financeiro"
	"github.com/ViaCargo/api-backoffice/internal/ordemservico"
)

// Papel seleciona a variante da ordem de serviço impressa
type Papel string

const (
	PapelMotorista   Papel = "driver"
	PapelAjudante    Papel = "helper"
	PapelMontador    Papel = "assembler"
	PapelEmpacotador Papel = "packer"
	PapelGeral       Papel = "general"
)

// Valida retorna true para um papel conhecido
func (p Papel) Valida() bool {
	switch p {
	case PapelMotorista, PapelAjudante, PapelMontador, PapelEmpacotador, PapelGeral:
		return true
	}
	return false
}

// ConfiguracaoPapel são os dados específicos do papel na via impressa
type ConfiguracaoPapel struct {
	Quantidade int      `json:"quantity"`
	Horario    string   `json:"scheduledTime"`
	Local      string   `json:"workLocation"`
	Data       string   `json:"workDate"`
	Itens      []string `json:"items"`
}

// DadosMotorista identificam o motorista na via dele
type DadosMotorista struct {
	Nome          string `json:"name"`
	Documentos    string `json:"documents"`
	Veiculo       string `json:"vehicle"`
	AssinaturaURL string `json:"signature"`
}

// Pedido reúne tudo que a via impressa precisa. A ordem deve estar
// finalizada e persistida; rascunhos nunca chegam aqui.
type Pedido struct {
	Ordem        ordemservico.OrdemServico
	Papel        Papel
	Configuracao *ConfiguracaoPapel
	Motorista    *DadosMotorista
}

var ErrOrdemNaoFinalizada = errors.New("documento exige uma ordem finalizada")
var ErrPapelDesconhecido = errors.New("papel de documento desconhecido")

var modeloOS = template.Must(template.New("os").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Ordem de Serviço {{.Ordem.Numero}}</title>
<style>
body { font-family: sans-serif; margin: 2cm; }
h1 { font-size: 18px; }
table { width: 100%; border-collapse: collapse; margin-top: 12px; }
td, th { border: 1px solid #444; padding: 6px; font-size: 12px; text-align: left; }
.assinatura { margin-top: 48px; }
</style>
</head>
<body>
<h1>ViaCargo — Ordem de Serviço {{.Ordem.Numero}} ({{.TituloPapel}})</h1>
<table>
<tr><th>Cliente</th><td>{{.Ordem.NomeCliente}}</td><th>Telefone</th><td>{{.Ordem.Telefone}}</td></tr>
<tr><th>Origem</th><td>{{.Ordem.Origem}}</td><th>Destino</th><td>{{.Ordem.Destino}}</td></tr>
<tr><th>Coleta</th><td>{{.Ordem.DataColeta}}</td><th>Previsão de entrega</th><td>{{.Ordem.DataEntrega}}</td></tr>
</table>
{{if .Motorista}}
<table>
<tr><th>Motorista</th><td>{{.Motorista.Nome}}</td><th>Documentos</th><td>{{.Motorista.Documentos}}</td></tr>
<tr><th>Veículo</th><td colspan="3">{{.Motorista.Veiculo}}</td></tr>
</table>
{{end}}
{{if .Configuracao}}
<table>
<tr><th>Equipe</th><td>{{.Configuracao.Quantidade}}</td><th>Horário</th><td>{{.Configuracao.Horario}}</td></tr>
<tr><th>Local</th><td>{{.Configuracao.Local}}</td><th>Data</th><td>{{.Configuracao.Data}}</td></tr>
</table>
{{if .Configuracao.Itens}}
<table>
<tr><th>Itens</th></tr>
{{range .Configuracao.Itens}}<tr><td>{{.}}</td></tr>{{end}}
</table>
{{end}}
{{end}}
{{if .MostrarValores}}
<table>
<tr><th>Valor total</th><td>{{.ValorTotal}}</td><th>Custos</th><td>{{.Custos}}</td></tr>
</table>
{{end}}
<p class="assinatura">Assinatura: ______________________________</p>
</body>
</html>`))

var titulosPapel = map[Papel]string{
	PapelMotorista:   "Via do Motorista",
	PapelAjudante:    "Via do Ajudante",
	PapelMontador:    "Via do Montador",
	PapelEmpacotador: "Via do Empacotador",
	PapelGeral:       "Via Geral",
}

type dadosModelo struct {
	Ordem          ordemservico.OrdemServico
	TituloPapel    string
	Configuracao   *ConfiguracaoPapel
	Motorista      *DadosMotorista
	MostrarValores bool
	ValorTotal     string
	Custos         string
}

// MontarHTML gera o HTML da via impressa para o papel pedido.
// Apenas a via geral expõe os valores financeiros.
func MontarHTML(p Pedido) (string, error) {
	if p.Ordem.ID == "" {
		return "", ErrOrdemNaoFinalizada
	}
	if !p.Papel.Valida() {
		return "", ErrPapelDesconhecido
	}

	dados := dadosModelo{
		Ordem:        p.Ordem,
		TituloPapel:  titulosPapel[p.Papel],
		Configuracao: p.Configuracao,
	}
	if p.Papel == PapelMotorista {
		dados.Motorista = p.Motorista
	}
	if p.Papel == PapelGeral {
		dados.MostrarValores = true
		dados.ValorTotal = financeiro.FormatarMoeda(p.Ordem.Financeiro.ValorTotal)
		dados.Custos = financeiro.FormatarMoeda(financeiro.CalcularCustos(p.Ordem.Financeiro))
	}

	var buf bytes.Buffer
	if err := modeloOS.Execute(&buf, dados); err != nil {
		return "", err
	}
	return buf.String(), nil
}
