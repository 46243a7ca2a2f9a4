package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ordersync/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrConflict reports a push the server rejected because another
// writer committed the revision first. The mutation is unsalvageable;
// the caller should drop it and pull fresh state.
var ErrConflict = errs.New("cart revision conflict")

// PushResult is the server's acknowledgement of one mutation.
type PushResult struct {
	Revision       int64
	AlreadyApplied bool
}

// Gateway is the transport the scheduler and detector talk through.
type Gateway interface {
	SetItem(ctx context.Context, m Mutation) (PushResult, error)
	FetchCart(ctx context.Context) (Snapshot, error)
	SendRecoveryEmail(ctx context.Context, email string) error
}

// HTTPGateway speaks the service's REST API. The bearer token
// identifies the session; its subject is the cart session id.
type HTTPGateway struct {
	baseURL   string
	token     string
	sessionID uuid.UUID
	http      *http.Client
}

func NewHTTPGateway(baseURL, token string, sessionID uuid.UUID, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL:   baseURL,
		token:     token,
		sessionID: sessionID,
		http:      &http.Client{Timeout: timeout},
	}
}

type setItemBody struct {
	Quantity       int32 `json:"quantity"`
	UnitPriceCents int64 `json:"unit_price_cents"`
	Revision       int64 `json:"revision"`
}

type setItemReply struct {
	Revision       int64 `json:"revision"`
	AlreadyApplied bool  `json:"already_applied"`
}

func (g *HTTPGateway) SetItem(ctx context.Context, m Mutation) (PushResult, error) {
	body := setItemBody{
		Quantity:       m.Quantity,
		UnitPriceCents: m.UnitPriceCents,
		Revision:       m.Revision,
	}

	var reply setItemReply
	status, err := g.do(ctx, http.MethodPut, "/api/cart/items/"+m.ProductID.String(), body, &reply)
	if err != nil {
		return PushResult{}, err
	}
	switch status {
	case http.StatusOK:
		return PushResult{Revision: reply.Revision, AlreadyApplied: reply.AlreadyApplied}, nil
	case http.StatusConflict:
		return PushResult{}, ErrConflict
	default:
		return PushResult{}, errs.New(fmt.Sprintf("push rejected with status %d", status))
	}
}

type cartReply struct {
	SessionID string `json:"session_id"`
	Revision  int64  `json:"revision"`
	Lines     []struct {
		ProductID      string `json:"product_id"`
		Quantity       int32  `json:"quantity"`
		UnitPriceCents int64  `json:"unit_price_cents"`
	} `json:"lines"`
	TotalCents   int64 `json:"total_cents"`
	LastModified int64 `json:"last_modified"`
}

func (g *HTTPGateway) FetchCart(ctx context.Context) (Snapshot, error) {
	var reply cartReply
	status, err := g.do(ctx, http.MethodGet, "/api/cart", nil, &reply)
	if err != nil {
		return Snapshot{}, err
	}
	switch status {
	case http.StatusOK:
	case http.StatusNotFound:
		// No server-side cart yet; an empty snapshot at revision 0
		// never wins against local state.
		return Snapshot{SessionID: g.sessionID}, nil
	default:
		return Snapshot{}, errs.New(fmt.Sprintf("pull rejected with status %d", status))
	}

	snap := Snapshot{
		Revision:     reply.Revision,
		TotalCents:   reply.TotalCents,
		LastModified: time.Unix(reply.LastModified, 0),
	}
	if snap.SessionID, err = uuid.Parse(reply.SessionID); err != nil {
		return Snapshot{}, errs.Wrap(err, "malformed session id in cart reply")
	}
	for _, l := range reply.Lines {
		productID, err := uuid.Parse(l.ProductID)
		if err != nil {
			return Snapshot{}, errs.Wrap(err, "malformed product id in cart reply")
		}
		snap.Lines = append(snap.Lines, Line{
			ProductID:      productID,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		})
	}
	return snap, nil
}

func (g *HTTPGateway) SendRecoveryEmail(ctx context.Context, email string) error {
	body := map[string]any{
		"session_id": g.sessionID.String(),
		"email":      email,
	}
	status, err := g.do(ctx, http.MethodPost, "/api/cart-recovery/email", body, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errs.New(fmt.Sprintf("recovery email rejected with status %d", status))
	}
	return nil
}

func (g *HTTPGateway) do(ctx context.Context, method, path string, body, reply any) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, errs.Wrap(err, "failed to encode request body")
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, &buf)
	if err != nil {
		return 0, errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.token)

	res, err := g.http.Do(req)
	if err != nil {
		return 0, errs.Wrap(err, "request failed")
	}
	defer func() { _ = res.Body.Close() }()

	if reply != nil && res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(reply); err != nil {
			return 0, errs.Wrap(err, "failed to decode response body")
		}
	}
	return res.StatusCode, nil
}
