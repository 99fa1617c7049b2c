// Package api реализует HTTP клиент для сервера учёта.
// Ответы классифицируются в типизированные ошибки: временные сбои,
// бизнес-отказы, невалидная сессия, конфликт версий.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Junior620/cocoatrack-sub003/pkg/api"
)

// DefaultTimeout таймаут одного запроса. Истёкший таймаут трактуется
// как временный сбой.
const DefaultTimeout = 30 * time.Second

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового полевого агента
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// GetSalt получает public_salt пользователя
func (c *Client) GetSalt(ctx context.Context, username string) (*api.GetSaltResponse, error) {
	var resp api.GetSaltResponse
	path := "/api/v1/auth/salt/" + url.PathEscape(username)
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("get salt request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// PushOperation отправляет одну отложенную операцию.
// Конфликт версий возвращается как *ConflictError с текущим состоянием
// записи на сервере.
func (c *Client) PushOperation(ctx context.Context, accessToken string, req api.PushOperationRequest) (*api.PushOperationResponse, error) {
	var resp api.PushOperationResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/operations", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("push operation failed: %w", err)
	}

	if resp.Status == api.PushStatusConflict {
		return nil, &ConflictError{
			RemoteRecord:  resp.RemoteRecord,
			ServerVersion: resp.ServerVersion,
		}
	}

	return &resp, nil
}

// GetChanges запрашивает изменения таблицы начиная с курсора since (unix millis)
func (c *Client) GetChanges(ctx context.Context, accessToken, table string, since int64) (*api.ChangesResponse, error) {
	var resp api.ChangesResponse
	path := "/api/v1/sync/changes/" + url.PathEscape(table) + "?since=" + strconv.FormatInt(since, 10)
	if err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("get changes failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос и классифицирует ответ
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевые сбои и таймауты всегда временные
		return &TransientError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransientError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyStatus(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// classifyStatus переводит неуспешный HTTP статус в типизированную ошибку
func classifyStatus(status int, body []byte) error {
	message := string(body)
	retryable := false

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		message = errResp.Message
		retryable = errResp.Retryable
	}

	switch {
	case status == http.StatusUnauthorized:
		return &AuthError{Message: message}
	case status == http.StatusTooManyRequests:
		return &TransientError{StatusCode: status, Message: message}
	case status >= 500:
		return &TransientError{StatusCode: status, Message: message}
	case retryable:
		// Сервер явно пометил отказ как повторяемый
		return &TransientError{StatusCode: status, Message: message}
	default:
		return &PermanentError{StatusCode: status, Message: message}
	}
}
