package documento

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ViaCargo/api-backoffice/internal/ordemservico"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type gerarDocumentoRequest struct {
	Papel        Papel              `json:"role"`
	Configuracao *ConfiguracaoPapel `json:"config"`
	Motorista    *DadosMotorista    `json:"driver"`
}

// Handler gera a via impressa de uma ordem persistida
type Handler struct {
	DB     *gorm.DB
	Ordens ordemservico.Repository
	PDF    *ClienteGotenberg
}

func NewHandler(db *gorm.DB, pdf *ClienteGotenberg) *Handler {
	return &Handler{
		DB:     db,
		Ordens: ordemservico.NewRepository(),
		PDF:    pdf,
	}
}

// Gerar trata POST /ordens/{id}/documento e devolve o PDF
func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ordem, err := h.Ordens.BuscarPorID(h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Ordem não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar ordem", http.StatusInternalServerError)
		return
	}

	var req gerarDocumentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Papel == "" {
		req.Papel = PapelGeral
	}

	html, err := MontarHTML(Pedido{
		Ordem:        *ordem,
		Papel:        req.Papel,
		Configuracao: req.Configuracao,
		Motorista:    req.Motorista,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf, err := h.PDF.RenderizarHTML(r.Context(), html)
	if err != nil {
		log.Printf("erro ao renderizar documento da ordem %s: %v", id, err)
		http.Error(w, "Erro ao gerar documento", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=ordem-"+ordem.Numero+".pdf")
	w.Write(pdf)
}
