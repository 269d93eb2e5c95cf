package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	c := &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	//サーバーが起動していない環境ではe2eをスキップ
	resp, err := c.HTTP.Get(c.BaseURL + "/api/carts")
	if err != nil {
		t.Skipf("server not reachable at %s: %v", c.BaseURL, err)
	}
	_ = resp.Body.Close()

	return c
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CartDTO struct {
	CartID int64    `json:"cart_id"`
	UserID int64    `json:"user_id"`
	User   *UserDTO `json:"user,omitempty"`
}

type UserDTO struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type CartListResponse struct {
	Collection []CartDTO `json:"collection"`
}

type CartSaveRequest struct {
	UserID int64 `json:"user_id"`
}

type CartUpdateRequest struct {
	CartID int64 `json:"cart_id"`
	UserID int64 `json:"user_id"`
}

type OrderCartDTO struct {
	CartID int64 `json:"cart_id"`
	UserID int64 `json:"user_id"`
}

type OrderDTO struct {
	OrderID   int64        `json:"order_id"`
	OrderDate time.Time    `json:"order_date"`
	OrderDesc *string      `json:"order_desc"`
	OrderFee  *float64     `json:"order_fee"`
	Status    string       `json:"status"`
	Cart      OrderCartDTO `json:"cart"`
}

type OrderListResponse struct {
	Collection []OrderDTO `json:"collection"`
}

type OrderCartRequest struct {
	CartID int64 `json:"cart_id"`
}

type OrderSaveRequest struct {
	OrderDate *time.Time        `json:"order_date,omitempty"`
	OrderDesc *string           `json:"order_desc,omitempty"`
	OrderFee  *float64          `json:"order_fee,omitempty"`
	Cart      *OrderCartRequest `json:"cart,omitempty"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", resp.StatusCode, want, string(body))
	}
}

func mustDecodeError(t *testing.T, body []byte) ErrorResponse {
	t.Helper()
	var v ErrorResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(ErrorResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeCart(t *testing.T, body []byte) CartDTO {
	t.Helper()
	var v CartDTO
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(CartDTO) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeCartList(t *testing.T, body []byte) CartListResponse {
	t.Helper()
	var v CartListResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(CartListResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeOrder(t *testing.T, body []byte) OrderDTO {
	t.Helper()
	var v OrderDTO
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(OrderDTO) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeOrderList(t *testing.T, body []byte) OrderListResponse {
	t.Helper()
	var v OrderListResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(OrderListResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

func mustDecodeBool(t *testing.T, body []byte) bool {
	t.Helper()
	var v bool
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(bool) failed: %v body=%s", err, string(body))
	}
	return v
}

func toStr(v int64) string {
	return strconv.FormatInt(v, 10)
}

func createCart(t *testing.T, c *TestClient, ctx context.Context, userID int64) CartDTO {
	t.Helper()

	reqJSON, err := json.Marshal(CartSaveRequest{UserID: userID})
	if err != nil {
		t.Fatalf("json.Marshal(CartSaveRequest) failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/carts", reqJSON)
	requireStatus(t, resp, http.StatusOK, body)

	return mustDecodeCart(t, body)
}

func createOrder(t *testing.T, c *TestClient, ctx context.Context, cartID int64) OrderDTO {
	t.Helper()

	desc := "e2e order"
	fee := 1500.0
	reqJSON, err := json.Marshal(OrderSaveRequest{
		OrderDesc: &desc,
		OrderFee:  &fee,
		Cart:      &OrderCartRequest{CartID: cartID},
	})
	if err != nil {
		t.Fatalf("json.Marshal(OrderSaveRequest) failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/api/orders", reqJSON)
	requireStatus(t, resp, http.StatusOK, body)

	return mustDecodeOrder(t, body)
}
