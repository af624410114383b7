package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/ViaCargo/api-backoffice/internal/alerta"
	"github.com/ViaCargo/api-backoffice/internal/auth"
	"github.com/ViaCargo/api-backoffice/internal/dashboard"
	"github.com/ViaCargo/api-backoffice/internal/documento"
	"github.com/ViaCargo/api-backoffice/internal/meta"
	"github.com/ViaCargo/api-backoffice/internal/operador"
	"github.com/ViaCargo/api-backoffice/internal/ordemservico"
	"github.com/ViaCargo/api-backoffice/internal/transacao"
	utilsdb "github.com/ViaCargo/api-backoffice/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	db, err := utilsdb.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := db.AutoMigrate(
		&operador.Operador{},
		&ordemservico.OrdemServico{},
		&transacao.Transacao{},
		&meta.MetaMensal{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	if err := operador.SeedInicial(db); err != nil {
		log.Fatal("Erro ao criar operador inicial:", err)
	}

	// Carimbo do último alerta: Redis quando disponível, memória como fallback
	var store alerta.Armazenamento
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisStore, err := alerta.NovoArmazenamentoRedis(context.Background(), addr)
		if err != nil {
			log.Fatal("Erro ao conectar no Redis:", err)
		}
		store = redisStore
	} else {
		log.Println("REDIS_ADDR ausente; carimbo de alerta não sobrevive a reinícios")
		store = alerta.NovoArmazenamentoMemoria()
	}

	notificador := alerta.NovoNotificadorWebhook(os.Getenv("ALERTA_WEBHOOK_URL"))
	avaliador := alerta.NovoAvaliador(db, store, notificador)

	// Recomputação periódica das ordens críticas
	agendador := cron.New()
	if _, err := agendador.AddFunc("@every 1m", avaliador.Tick); err != nil {
		log.Fatal("Erro ao agendar verificação de criticidade:", err)
	}
	agendador.Start()
	defer agendador.Stop()

	// Handlers
	operadorHandler := operador.NewHandler(db)
	ordemHandler := ordemservico.NewHandler(db)
	ordemHandler.Monitor = avaliador
	transacaoHandler := transacao.NewHandler(db)
	metaHandler := meta.NewHandler(db)
	dashboardHandler := dashboard.NewHandler(db)
	documentoHandler := documento.NewHandler(db, documento.NovoClienteGotenberg(os.Getenv("GOTENBERG_URL")))

	// Router
	r := mux.NewRouter()

	// Rota pública de login
	r.HandleFunc("/login", operadorHandler.Login).Methods("POST")

	// Rotas protegidas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/operador/senha", operadorHandler.AlterarSenha).Methods("PUT")

	// Rotas de ordens de serviço
	api.HandleFunc("/ordens", ordemHandler.Criar).Methods("POST")
	api.HandleFunc("/ordens", ordemHandler.Listar).Methods("GET")
	api.HandleFunc("/ordens/{id}", ordemHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/ordens/{id}", ordemHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/ordens/{id}", ordemHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/ordens/{id}/documento", documentoHandler.Gerar).Methods("POST")

	// Rotas de transações avulsas
	api.HandleFunc("/transacoes", transacaoHandler.Criar).Methods("POST")
	api.HandleFunc("/transacoes", transacaoHandler.Listar).Methods("GET")
	api.HandleFunc("/transacoes/{id}", transacaoHandler.Deletar).Methods("DELETE")

	// Rotas de metas mensais
	api.HandleFunc("/metas", metaHandler.Listar).Methods("GET")
	api.HandleFunc("/metas/{mes}", metaHandler.Definir).Methods("PUT")

	// Números do painel
	api.HandleFunc("/dashboard/resumo", dashboardHandler.Resumo).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	addr := os.Getenv("APP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost" + addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
