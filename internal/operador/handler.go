package operador

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/ViaCargo/api-backoffice/internal/auth"
	"github.com/ViaCargo/api-backoffice/internal/utils"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"password"`
}

type alterarSenhaRequest struct {
	SenhaAtual string `json:"currentPassword"`
	NovaSenha  string `json:"newPassword"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.CheckSenha(user.Senha, req.Senha) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// AlterarSenha troca a senha do operador autenticado
func (h *Handler) AlterarSenha(w http.ResponseWriter, r *http.Request) {
	id, ok := r.Context().Value(auth.CtxOperadorID).(uint)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	var req alterarSenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if len(req.NovaSenha) < 8 {
		http.Error(w, "a nova senha precisa de ao menos 8 caracteres", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "operador não encontrado", http.StatusNotFound)
		return
	}
	if !utils.CheckSenha(user.Senha, req.SenhaAtual) {
		http.Error(w, "senha atual incorreta", http.StatusUnauthorized)
		return
	}

	hash, err := utils.HashSenha(req.NovaSenha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}
	user.Senha = hash

	if err := h.Repository.Atualizar(h.DB, user); err != nil {
		http.Error(w, "erro ao salvar operador", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SeedInicial cria o operador padrão a partir do ambiente quando a tabela
// está vazia, para o primeiro acesso ao painel
func SeedInicial(db *gorm.DB) error {
	repo := NewRepository()
	total, err := repo.Contar(db)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	email := os.Getenv("OPERADOR_EMAIL")
	senha := os.Getenv("OPERADOR_SENHA")
	if email == "" || senha == "" {
		log.Println("OPERADOR_EMAIL/OPERADOR_SENHA ausentes; nenhum operador criado")
		return nil
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		return err
	}
	return repo.Salvar(db, &Operador{
		Nome:  os.Getenv("OPERADOR_NOME"),
		Email: email,
		Senha: hash,
	})
}
