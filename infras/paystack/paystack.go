package paystack

//go:generate go run go.uber.org/mock/mockgen -source=./paystack.go -destination=./mocks/paystack_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"tiara/config"
	"tiara/infras/otel"
	"tiara/shared/constant"
)

const (
	// StatusSuccess is the transaction status Paystack reports for a
	// completed charge. Anything else is treated as not paid.
	StatusSuccess = "success"

	requestTimeout = 15 * time.Second
)

var ErrMissingSecretKey = errors.New("paystack secret key is not configured")

type InitializeRequest struct {
	Email       string `json:"email"`
	AmountMinor int64  `json:"amount"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url"`
}

type InitializeResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type VerifyResponse struct {
	ID          int64  `json:"id"`
	Status      string `json:"status"`
	Reference   string `json:"reference"`
	AmountMinor int64  `json:"amount"`
	PaidAt      string `json:"paid_at"`
}

func (v *VerifyResponse) Successful() bool {
	return v.Status == StatusSuccess
}

// envelope is the common Paystack response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Paystack interface {
	Initialize(ctx context.Context, req InitializeRequest) (InitializeResponse, error)
	Verify(ctx context.Context, reference string) (VerifyResponse, error)
}

type clientImpl struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Paystack {
	return &clientImpl{
		baseURL:    cfg.External.Paystack.BaseURL,
		secretKey:  cfg.External.Paystack.SecretKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		otel:       otl,
	}
}

func (c *clientImpl) Initialize(ctx context.Context, req InitializeRequest) (res InitializeResponse, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paystack.Initialize")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("paystack.reference", req.Reference)

	if c.secretKey == constant.Empty {
		return res, ErrMissingSecretKey
	}

	body, err := json.Marshal(req)
	if err != nil {
		return res, fmt.Errorf("failed to marshal initialize request: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return res, err
	}

	if err = json.Unmarshal(data, &res); err != nil {
		return res, fmt.Errorf("failed to decode initialize response: %w", err)
	}

	return res, nil
}

func (c *clientImpl) Verify(ctx context.Context, reference string) (res VerifyResponse, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".paystack.Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("paystack.reference", reference)

	if c.secretKey == constant.Empty {
		return res, ErrMissingSecretKey
	}

	data, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return res, err
	}

	if err = json.Unmarshal(data, &res); err != nil {
		return res, fmt.Errorf("failed to decode verify response: %w", err)
	}

	return res, nil
}

func (c *clientImpl) do(ctx context.Context, method, path string, body *bytes.Reader) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = body
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build paystack request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.secretKey)
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.httpClient.Do(request)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("paystack request failed")

		return nil, fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err = json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode paystack response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Status {
		log.Error().Int("status_code", resp.StatusCode).Str("message", env.Message).Str("path", path).Msg("paystack returned an error")

		return nil, fmt.Errorf("paystack error: %s", env.Message)
	}

	return env.Data, nil
}
