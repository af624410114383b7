package dashboard

import (
	"encoding/json"
	"net/http"
	"regexp"
	"time"

	"github.com/ViaCargo/api-backoffice/internal/financeiro"
	"github.com/ViaCargo/api-backoffice/internal/meta"
	"github.com/ViaCargo/api-backoffice/internal/ordemservico"
	"github.com/ViaCargo/api-backoffice/internal/transacao"
	"gorm.io/gorm"
)

var padraoMes = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type resumoResponse struct {
	Resumo
	SaldoFormatado      string   `json:"netFormatted"`
	Recebiveis          float64  `json:"pendingReceivables"`
	RecebiveisFormatado string   `json:"pendingReceivablesFormatted"`
	Contagens           Contagem `json:"counts"`
	Meta                *float64 `json:"goal,omitempty"`
}

// Handler monta os números do painel a partir dos repositórios
type Handler struct {
	DB         *gorm.DB
	Ordens     ordemservico.Repository
	Transacoes transacao.Repository
	Metas      meta.Repository
}

// NewHandler cria um novo handler do dashboard
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Ordens:     ordemservico.NewRepository(),
		Transacoes: transacao.NewRepository(),
		Metas:      meta.NewRepository(),
	}
}

// Resumo trata GET /dashboard/resumo?mes=YYYY-MM (padrão: mês corrente)
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	agora := time.Now()

	mes := r.URL.Query().Get("mes")
	if mes == "" {
		mes = agora.Format("2006-01")
	}
	if !padraoMes.MatchString(mes) {
		http.Error(w, "Mês inválido, use YYYY-MM", http.StatusBadRequest)
		return
	}

	ordens, err := h.Ordens.Listar(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar ordens", http.StatusInternalServerError)
		return
	}
	transacoes, err := h.Transacoes.Listar(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar transações", http.StatusInternalServerError)
		return
	}
	metas, err := h.Metas.BuscarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar metas", http.StatusInternalServerError)
		return
	}

	resumo := ResumoMensal(ordens, transacoes, mes)
	recebiveis := RecebiveisPendentes(ordens)

	resp := resumoResponse{
		Resumo:              resumo,
		SaldoFormatado:      financeiro.FormatarMoeda(resumo.Saldo),
		Recebiveis:          recebiveis,
		RecebiveisFormatado: financeiro.FormatarMoeda(recebiveis),
		Contagens:           Contagens(ordens, agora),
	}
	if valor, ok := metas[mes]; ok {
		resp.Meta = &valor
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
