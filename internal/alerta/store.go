package alerta

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Armazenamento é o par chave/valor durável onde fica o carimbo do último
// alerta. Abstraído para os testes injetarem uma implementação em memória.
type Armazenamento interface {
	Obter(ctx context.Context, chave string) (string, error)
	Definir(ctx context.Context, chave, valor string) error
}

// ArmazenamentoRedis guarda as chaves no Redis, sobrevivendo a reinícios
type ArmazenamentoRedis struct {
	cliente *redis.Client
}

// NovoArmazenamentoRedis conecta e valida o Redis com um ping
func NovoArmazenamentoRedis(ctx context.Context, addr string) (*ArmazenamentoRedis, error) {
	cliente := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := cliente.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("alerta: ping redis: %w", err)
	}

	return &ArmazenamentoRedis{cliente: cliente}, nil
}

func (a *ArmazenamentoRedis) Obter(ctx context.Context, chave string) (string, error) {
	valor, err := a.cliente.Get(ctx, chave).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return valor, err
}

func (a *ArmazenamentoRedis) Definir(ctx context.Context, chave, valor string) error {
	// sem expiração: o corte dos alertas é a comparação de 5 horas
	return a.cliente.Set(ctx, chave, valor, 0).Err()
}

// ArmazenamentoMemoria é o fallback sem Redis e a implementação dos testes
type ArmazenamentoMemoria struct {
	mu     sync.Mutex
	chaves map[string]string
}

func NovoArmazenamentoMemoria() *ArmazenamentoMemoria {
	return &ArmazenamentoMemoria{chaves: make(map[string]string)}
}

func (a *ArmazenamentoMemoria) Obter(_ context.Context, chave string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chaves[chave], nil
}

func (a *ArmazenamentoMemoria) Definir(_ context.Context, chave, valor string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.chaves[chave] = valor
	return nil
}
