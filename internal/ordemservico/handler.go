package ordemservico

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

var padraoMes = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Monitor dispara a verificação de ordens críticas após mutações
type Monitor interface {
	Verificar(ctx context.Context) error
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Validador  *validator.Validate
	Monitor    Monitor
}

// NewHandler cria um novo handler de ordens de serviço
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Validador:  validator.New(),
	}
}

func (h *Handler) notificarMutacao() {
	if h.Monitor == nil {
		return
	}
	go func() {
		if err := h.Monitor.Verificar(context.Background()); err != nil {
			log.Printf("verificação de criticidade falhou: %v", err)
		}
	}()
}

// Listar trata GET /ordens?filtro=all|active|completed|critical
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	filtro, err := ParseFiltro(r.URL.Query().Get("filtro"))
	if err != nil {
		http.Error(w, "Filtro inválido", http.StatusBadRequest)
		return
	}

	ordens, err := h.Repository.Listar(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar ordens", http.StatusInternalServerError)
		return
	}

	if mes := r.URL.Query().Get("mes"); mes != "" {
		if !padraoMes.MatchString(mes) {
			http.Error(w, "Mês inválido, use YYYY-MM", http.StatusBadRequest)
			return
		}
		ordens = FiltrarPorMes(ordens, mes)
	}

	resultado := FiltrarOrdenar(ordens, filtro, time.Now())
	if resultado == nil {
		resultado = []OrdemServico{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}

// BuscarPorID trata GET /ordens/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	o, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Ordem não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar ordem", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// Criar trata POST /ordens
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req ordemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validador.Struct(&req); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	agora := time.Now()
	rascunho := NovoRascunho()
	req.aplicar(rascunho, agora)

	ordem, err := rascunho.Finalizar(agora)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repository.Salvar(h.DB, &ordem); err != nil {
		log.Printf("erro ao salvar ordem: %v", err)
		http.Error(w, "Erro ao salvar ordem", http.StatusInternalServerError)
		return
	}
	h.notificarMutacao()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ordem)
}

// Atualizar trata PUT /ordens/{id} com replace completo de extras e notas
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existente, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Ordem não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar ordem", http.StatusInternalServerError)
		return
	}

	var req ordemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validador.Struct(&req); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	agora := time.Now()
	rascunho := RascunhoDe(*existente)
	req.aplicar(rascunho, agora)

	ordem, err := rascunho.Finalizar(agora)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repository.Atualizar(h.DB, &ordem); err != nil {
		log.Printf("erro ao atualizar ordem %s: %v", id, err)
		http.Error(w, "Erro ao atualizar ordem", http.StatusInternalServerError)
		return
	}
	h.notificarMutacao()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ordem)
}

// Deletar trata DELETE /ordens/{id}?confirmar=true.
// A exclusão exige confirmação explícita em duas etapas: a primeira chamada,
// sem o parâmetro, apenas informa o que seria removido.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existente, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Ordem não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar ordem", http.StatusInternalServerError)
		return
	}

	rascunho := RascunhoDe(*existente)
	if err := rascunho.SolicitarExclusao(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.URL.Query().Get("confirmar") != "true" {
		rascunho.CancelarExclusao()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPreconditionRequired)
		json.NewEncoder(w).Encode(map[string]string{
			"mensagem": "Exclusão requer confirmação: repita a chamada com ?confirmar=true",
			"cliente":  existente.NomeCliente,
		})
		return
	}

	alvo, err := rascunho.ConfirmarExclusao()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, alvo); err != nil {
		log.Printf("erro ao deletar ordem %s: %v", alvo, err)
		http.Error(w, "Erro ao deletar ordem", http.StatusInternalServerError)
		return
	}
	h.notificarMutacao()

	w.WriteHeader(http.StatusNoContent)
}
