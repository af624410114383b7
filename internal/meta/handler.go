package meta

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var padraoMes = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type definirMetaRequest struct {
	Valor float64 `json:"value" validate:"gte=0"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Validador  *validator.Validate
}

// NewHandler cria um novo handler de metas mensais
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Validador:  validator.New(),
	}
}

// Listar trata GET /metas e devolve o mapa mês → valor
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	metas, err := h.Repository.BuscarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar metas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metas)
}

// Definir trata PUT /metas/{mes} com semântica de create-or-replace.
// Depois de gravar, a meta é relida do banco, como toda outra mutação.
func (h *Handler) Definir(w http.ResponseWriter, r *http.Request) {
	mes := mux.Vars(r)["mes"]
	if !padraoMes.MatchString(mes) {
		http.Error(w, "Mês inválido, use YYYY-MM", http.StatusBadRequest)
		return
	}

	var req definirMetaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validador.Struct(&req); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	m := MetaMensal{Mes: mes, Valor: req.Valor, UpdatedAt: time.Now()}
	if err := h.Repository.Upsert(h.DB, &m); err != nil {
		log.Printf("erro ao gravar meta de %s: %v", mes, err)
		http.Error(w, "Erro ao gravar meta", http.StatusInternalServerError)
		return
	}

	gravada, err := h.Repository.BuscarPorMes(h.DB, mes)
	if err != nil {
		http.Error(w, "Erro ao reler meta", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(gravada)
}
