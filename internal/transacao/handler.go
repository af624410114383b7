package transacao

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarTransacaoRequest struct {
	Descricao string  `json:"description" validate:"required"`
	Valor     float64 `json:"amount" validate:"required"`
	Tipo      Tipo    `json:"type" validate:"required,oneof=income expense"`
	Data      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Categoria string  `json:"category"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Validador  *validator.Validate
}

// NewHandler cria um novo handler de transações
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Validador:  validator.New(),
	}
}

// Listar trata GET /transacoes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar transações", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Transacao{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Criar trata POST /transacoes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarTransacaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validador.Struct(&req); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	t := Transacao{
		ID:        uuid.NewString(),
		Descricao: req.Descricao,
		// o valor é sempre guardado positivo; o sentido fica no tipo
		Valor:     math.Abs(req.Valor),
		Tipo:      req.Tipo,
		Data:      req.Data,
		Categoria: req.Categoria,
		CreatedAt: time.Now(),
	}

	if err := h.Repository.Salvar(h.DB, &t); err != nil {
		log.Printf("erro ao salvar transação: %v", err)
		http.Error(w, "Erro ao salvar transação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

// Deletar trata DELETE /transacoes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Repository.Deletar(h.DB, id); err != nil {
		log.Printf("erro ao deletar transação %s: %v", id, err)
		http.Error(w, "Erro ao deletar transação", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
