// Package points is the HTTP client for the remote loyalty-points ledger.
// The balance is a shared remote counter: reads are advisory, and only the
// server-side check at deduct time is authoritative.
package points

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

type Client struct {
	baseURL string
	timeout time.Duration

	// reads are idempotent and retried; mutations go through a plain client
	// because a transport-level retry could double-deduct.
	readClient   *http.Client
	mutateClient *http.Client
}

func NewClient(cfg config.PointsConfig) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.Logger = nil

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		timeout:      cfg.Timeout,
		readClient:   rc.StandardClient(),
		mutateClient: &http.Client{},
	}
}

type balanceResponse struct {
	BalanceCents int64 `json:"balance"`
}

type mutateRequest struct {
	AmountCents    int64  `json:"amount"`
	Reason         string `json:"reason"`
	IdempotencyKey string `json:"idempotency_key"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) Balance(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/points/balance", nil)
	if err != nil {
		return 0, errs.Wrap(err, "create balance request")
	}

	resp, err := c.readClient.Do(req)
	if err != nil {
		return 0, c.mapTransportErr(err, "balance")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errs.Newf("points balance: unexpected status %d", resp.StatusCode)
	}

	var body balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, errs.Wrap(err, "decode balance response")
	}
	return body.BalanceCents, nil
}

// Deduct asks the ledger to subtract amount points. The server re-validates
// its live balance; a locally cached balance is never trusted. The
// idempotency key makes a retried submission attempt safe against
// double-deducting.
func (c *Client) Deduct(ctx context.Context, amountCents int64, reason string, key uuid.UUID) error {
	if err := c.mutate(ctx, "/api/points/deduct", amountCents, reason, key); err != nil {
		if errors.Is(err, errs.ErrInsufficientPoints) || errors.Is(err, errs.ErrNetworkTimeout) {
			return err
		}
		return errs.Mark(err, errs.ErrRemoteDeduct)
	}
	return nil
}

// Refund compensates a prior successful Deduct whose following step failed.
func (c *Client) Refund(ctx context.Context, amountCents int64, reason string, key uuid.UUID) error {
	if err := c.mutate(ctx, "/api/points/refund", amountCents, reason, key); err != nil {
		return errs.Mark(err, errs.ErrRefundFailed)
	}
	return nil
}

func (c *Client) mutate(ctx context.Context, path string, amountCents int64, reason string, key uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(mutateRequest{
		AmountCents:    amountCents,
		Reason:         reason,
		IdempotencyKey: key.String(),
	})
	if err != nil {
		return errs.Wrap(err, "encode points request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "create points request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.mutateClient.Do(req)
	if err != nil {
		return c.mapTransportErr(err, path)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusPaymentRequired, http.StatusConflict:
		var body errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return errs.Mark(fmt.Errorf("points ledger: %s", body.Code), errs.ErrInsufficientPoints)
	default:
		return errs.Newf("points ledger %s: unexpected status %d", path, resp.StatusCode)
	}
}

func (c *Client) mapTransportErr(err error, op string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.Mark(errs.Wrap(err, "points "+op), errs.ErrNetworkTimeout)
	}
	return errs.Wrap(err, "points "+op)
}
