package alerta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Alerta é o aviso de ordens com coleta na janela crítica
type Alerta struct {
	Quantidade int      `json:"count"`
	Clientes   []string `json:"clients"`
	Mensagem   string   `json:"message"`
}

// Notificador entrega o alerta ao operador
type Notificador interface {
	Notificar(ctx context.Context, a Alerta) error
}

// NotificadorWebhook envia o alerta por POST para a URL configurada
type NotificadorWebhook struct {
	URL     string
	cliente *http.Client
}

func NovoNotificadorWebhook(url string) *NotificadorWebhook {
	return &NotificadorWebhook{
		URL: url,
		cliente: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *NotificadorWebhook) Notificar(ctx context.Context, a Alerta) error {
	body, err := json.Marshal(a)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.cliente.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook respondeu %d", resp.StatusCode)
	}
	return nil
}
