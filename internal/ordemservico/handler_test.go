package ordemservico

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ViaCargo/api-backoffice/internal/financeiro"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repoMemoria struct {
	ordens []OrdemServico
}

func (r *repoMemoria) Listar(_ *gorm.DB) ([]OrdemServico, error) {
	return append([]OrdemServico(nil), r.ordens...), nil
}

func (r *repoMemoria) BuscarPorID(_ *gorm.DB, id string) (*OrdemServico, error) {
	for i := range r.ordens {
		if r.ordens[i].ID == id {
			o := r.ordens[i]
			return &o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *repoMemoria) Salvar(_ *gorm.DB, o *OrdemServico) error {
	r.ordens = append(r.ordens, *o)
	return nil
}

func (r *repoMemoria) Atualizar(_ *gorm.DB, o *OrdemServico) error {
	for i := range r.ordens {
		if r.ordens[i].ID == o.ID {
			r.ordens[i] = *o
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *repoMemoria) Deletar(_ *gorm.DB, id string) error {
	for i := range r.ordens {
		if r.ordens[i].ID == id {
			r.ordens = append(r.ordens[:i], r.ordens[i+1:]...)
			return nil
		}
	}
	return nil
}

func novoHandlerDeTeste(repo Repository) (*Handler, *mux.Router) {
	h := &Handler{Repository: repo, Validador: validator.New()}
	r := mux.NewRouter()
	r.HandleFunc("/ordens", h.Criar).Methods("POST")
	r.HandleFunc("/ordens", h.Listar).Methods("GET")
	r.HandleFunc("/ordens/{id}", h.Atualizar).Methods("PUT")
	r.HandleFunc("/ordens/{id}", h.Deletar).Methods("DELETE")
	return h, r
}

func TestCriarOrdem(t *testing.T) {
	repo := &repoMemoria{}
	_, router := novoHandlerDeTeste(repo)

	payload := `{
		"clientName": "Maria Souza",
		"phone": "11 99999-0000",
		"origin": "São Paulo",
		"destination": "Campinas",
		"pickupDate": "2024-06-20",
		"paymentStatus": {"deposit": true},
		"financials": {
			"totalValue": 3000,
			"driverCost": 800,
			"extras": [
				{"type": "helper", "name": "Ajudante", "quantity": 2, "cost": 150},
				{"type": "helper", "name": "Ajudante", "quantity": 3, "cost": 150},
				{"type": "other", "name": "Caixas", "quantity": 10, "cost": 12.5}
			]
		}
	}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ordens", strings.NewReader(payload)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var criada OrdemServico
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&criada))
	assert.NotEmpty(t, criada.ID)
	assert.True(t, strings.HasPrefix(criada.Numero, "OS-"))
	// progresso derivado do sinal de entrada
	assert.Equal(t, financeiro.ProgressoEntrada, criada.Progresso)
	// papéis fixos duplicados no payload sofrem upsert: fica o último
	require.Len(t, criada.Financeiro.Extras, 2)
	assert.Equal(t, 3, criada.Financeiro.Extras[0].Quantidade)
	require.Len(t, repo.ordens, 1)
}

func TestCriarOrdemSemNomeCliente(t *testing.T) {
	repo := &repoMemoria{}
	_, router := novoHandlerDeTeste(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ordens", strings.NewReader(`{"clientName": ""}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.ordens)
}

func TestListarComFiltroInvalido(t *testing.T) {
	_, router := novoHandlerDeTeste(&repoMemoria{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ordens?filtro=pendentes", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListarRecortaPorMes(t *testing.T) {
	repo := &repoMemoria{ordens: []OrdemServico{
		{ID: "os-1", NomeCliente: "Ana", DataColeta: "2024-06-05"},
		{ID: "os-2", NomeCliente: "Bruno", DataColeta: "2024-07-05"},
	}}
	_, router := novoHandlerDeTeste(repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ordens?mes=2024-06", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var ordens []OrdemServico
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&ordens))
	require.Len(t, ordens, 1)
	assert.Equal(t, "os-1", ordens[0].ID)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ordens?mes=junho", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAtualizarSubstituiExtrasENotas(t *testing.T) {
	repo := &repoMemoria{ordens: []OrdemServico{{
		ID:          "os-1",
		NomeCliente: "João Lima",
		Financeiro: financeiro.Financeiro{
			ValorTotal: 1000,
			Extras: []financeiro.ServicoExtra{
				{ID: "e1", Tipo: financeiro.TipoAjudante, Quantidade: 2, CustoUnitario: 100},
			},
		},
		Notas: []Nota{{Conteudo: "antiga"}},
	}}}
	_, router := novoHandlerDeTeste(repo)

	payload := `{
		"clientName": "João Lima",
		"paymentStatus": {"deposit": true, "pickup": true},
		"financials": {"totalValue": 1200, "driverCost": 300, "extras": []},
		"notes": [{"content": "nova nota", "color": "#00ff00"}]
	}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/ordens/os-1", strings.NewReader(payload)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, repo.ordens, 1)
	gravada := repo.ordens[0]
	assert.Equal(t, "os-1", gravada.ID)
	assert.Empty(t, gravada.Financeiro.Extras)
	require.Len(t, gravada.Notas, 1)
	assert.Equal(t, "nova nota", gravada.Notas[0].Conteudo)
	assert.Equal(t, financeiro.ProgressoColeta, gravada.Progresso)
}

func TestAtualizarOrdemInexistente(t *testing.T) {
	_, router := novoHandlerDeTeste(&repoMemoria{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/ordens/nao-existe", strings.NewReader(`{"clientName":"X"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletarExigeConfirmacao(t *testing.T) {
	repo := &repoMemoria{ordens: []OrdemServico{{ID: "os-1", NomeCliente: "João Lima"}}}
	_, router := novoHandlerDeTeste(repo)

	// primeira etapa: sem confirmação nada é removido
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/ordens/os-1", nil))
	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	assert.Len(t, repo.ordens, 1)

	// segunda etapa: confirmação explícita remove
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/ordens/os-1?confirmar=true", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.ordens)
}
