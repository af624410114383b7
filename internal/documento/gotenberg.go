package documento

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ClienteGotenberg conversa com o serviço Gotenberg que converte HTML em PDF
type ClienteGotenberg struct {
	baseURL string
	cliente *http.Client
}

func NovoClienteGotenberg(baseURL string) *ClienteGotenberg {
	return &ClienteGotenberg{
		baseURL: baseURL,
		cliente: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RenderizarHTML converte o HTML em um PDF paginado
func (c *ClienteGotenberg) RenderizarHTML(ctx context.Context, html string) ([]byte, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, bytes.NewBufferString(html)); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/forms/chromium/convert/html", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.cliente.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("gotenberg respondeu %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
