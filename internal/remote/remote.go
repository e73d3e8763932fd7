package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/config"
	"github.com/eshonkulov-asliddin/bonus-shop/internal/domain"
	"github.com/eshonkulov-asliddin/bonus-shop/pkg/clients"
	"go.uber.org/zap"
)

const (
	maxRetries    = 2
	retryInterval = time.Second * 1
)

const (
	actionGetUsers        = "getUsers"
	actionGetTransactions = "getTransactions"
	actionSaveUser        = "saveUser"
	actionSaveTransaction = "saveTransaction"
)

type writeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Client talks to the spreadsheet web-app. Reads are retried on transient
// failures; writes are sent exactly once because the remote has no dedup key.
type Client struct {
	url     string
	client  clients.HTTPClientI
	backoff time.Duration
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:     cfg.RemoteStoreURL,
		client:  client,
		backoff: retryInterval,
	}
}

func (c *Client) FetchAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.get(ctx, actionGetUsers, &accounts); err != nil {
		return nil, err
	}
	zap.L().Debug("Fetched accounts from remote store", zap.Int("count", len(accounts)))
	return accounts, nil
}

func (c *Client) FetchTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	if err := c.get(ctx, actionGetTransactions, &txs); err != nil {
		return nil, err
	}
	zap.L().Debug("Fetched transactions from remote store", zap.Int("count", len(txs)))
	return txs, nil
}

func (c *Client) PersistAccount(ctx context.Context, account domain.Account) error {
	if err := c.post(ctx, actionSaveUser, account); err != nil {
		return err
	}
	zap.L().Info("Account saved", zap.String("accountID", account.ID))
	return nil
}

func (c *Client) PersistTransaction(ctx context.Context, tx domain.Transaction) error {
	if err := c.post(ctx, actionSaveTransaction, tx); err != nil {
		return err
	}
	zap.L().Info("Transaction saved", zap.String("transactionID", tx.ID), zap.String("accountID", tx.AccountID))
	return nil
}

func (c *Client) actionURL(action string) (string, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("action", action)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) get(ctx context.Context, action string, out any) error {
	target, err := c.actionURL(action)
	if err != nil {
		return &domain.NetworkError{Op: action, Err: err}
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			retryAfter := c.backoff * time.Duration(1<<(attempt-1))
			zap.L().Warn("Remote read failed, retrying",
				zap.String("action", action),
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", retryAfter),
				zap.Error(lastErr),
			)
			if err := sleep(ctx, retryAfter); err != nil {
				return &domain.NetworkError{Op: action, Err: err}
			}
		}

		statusCode, respBody, _, err := c.client.Get(ctx, target, nil)
		if err != nil {
			lastErr = &domain.NetworkError{Op: action, Err: err}
			if ctx.Err() != nil {
				return lastErr
			}
			continue
		}

		switch {
		case statusCode >= 200 && statusCode < 300:
			if err := json.Unmarshal(respBody, out); err != nil {
				return &domain.NetworkError{Op: action, Err: fmt.Errorf("failed to parse response body: %w", err)}
			}
			return nil
		case statusCode >= 500 || statusCode == http.StatusTooManyRequests:
			lastErr = &domain.NetworkError{Op: action, StatusCode: statusCode}
		default:
			return &domain.NetworkError{Op: action, StatusCode: statusCode}
		}
	}

	zap.L().Error("Remote read failed", zap.String("action", action), zap.Int("attempts", maxRetries+1), zap.Error(lastErr))
	return lastErr
}

func (c *Client) post(ctx context.Context, action string, payload any) error {
	target, err := c.actionURL(action)
	if err != nil {
		return &domain.NetworkError{Op: action, Err: err}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", action, err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "text/plain;charset=utf-8")

	statusCode, respBody, _, err := c.client.Post(ctx, target, headers, body)
	if err != nil {
		zap.L().Error("Remote write failed", zap.String("action", action), zap.Error(err))
		return &domain.NetworkError{Op: action, Err: err}
	}
	if statusCode < 200 || statusCode >= 300 {
		zap.L().Error("Unexpected status code", zap.String("action", action), zap.Int("status", statusCode))
		return &domain.NetworkError{Op: action, StatusCode: statusCode}
	}

	var resp writeResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return &domain.NetworkError{Op: action, Err: fmt.Errorf("failed to parse response body: %w", err)}
	}
	if !resp.Success {
		zap.L().Error("Remote store rejected write", zap.String("action", action), zap.String("error", resp.Error))
		return &domain.RemoteError{Op: action, Message: resp.Error}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
