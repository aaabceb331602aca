package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client habla con el API del sitio sobre una única base URL configurada.
//
// Fetch quita el sobre {data: ...} porque las rutas públicas responden así;
// el resto de las operaciones devuelve el cuerpo completo para que el caller
// inspeccione el sobre {success, data, message} de las rutas de admin. Son
// dos convenciones distintas a propósito: el backend sirve ambas.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// StatusError indica una respuesta HTTP fuera del rango 2xx.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http status %d", e.Code)
}

// NewClient construye un cliente apuntando a la base URL del API.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// Fetch hace GET {base}/{path} sin autenticación y devuelve el campo data
// del sobre. Nunca entra en pánico: cualquier falla vuelve como error.
func (c *Client) Fetch(ctx context.Context, path string) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.Warn("decode response failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return envelope.Data, nil
}

// FetchWithAuth hace GET con Authorization: Bearer y devuelve el cuerpo
// completo, sobre incluido.
func (c *Client) FetchWithAuth(ctx context.Context, path, token string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, token, nil)
}

// Post hace POST con cuerpo JSON y devuelve el cuerpo completo de la respuesta.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, "", body)
}

// PostWithAuth es Post con Authorization: Bearer.
func (c *Client) PostWithAuth(ctx context.Context, path string, body any, token string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, token, body)
}

// Put hace PUT con cuerpo JSON; mismo contrato que Post.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, "", body)
}

// PutWithAuth es Put con Authorization: Bearer.
func (c *Client) PutWithAuth(ctx context.Context, path string, body any, token string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, token, body)
}

// Delete hace DELETE con cuerpo {"id": id}; mismo contrato que Post.
func (c *Client) Delete(ctx context.Context, path, id string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, "", map[string]string{"id": id})
}

// DeleteWithAuth es Delete con Authorization: Bearer.
func (c *Client) DeleteWithAuth(ctx context.Context, path, id, token string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, token, map[string]string{"id": id})
}

func (c *Client) do(ctx context.Context, method, path, token string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("read response failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("unexpected status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &StatusError{Code: resp.StatusCode}
	}

	if !json.Valid(respBody) {
		c.logger.Warn("invalid json response", zap.String("path", path))
		return nil, fmt.Errorf("decode response: invalid json")
	}

	return json.RawMessage(respBody), nil
}
