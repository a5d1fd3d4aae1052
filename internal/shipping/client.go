package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/FaizAhmad0/intWallet/internal/config"
	"github.com/FaizAhmad0/intWallet/pkg/clients"
)

// Carrier shipment status codes.
const (
	shipmentReadyToShip  = 1
	shipmentPickupQueued = 2
)

// Vendor messages treated as success rather than failures.
const (
	msgManifestAlreadyGenerated = "Manifest already generated"
	msgAlreadyInPickupQueue     = "Already in Pickup Queue."
)

// GatewayError carries the vendor message for operator visibility.
type GatewayError struct {
	Op      string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("carrier %s failed: %s", e.Op, e.Message)
}

type Shipment struct {
	ID     int
	Status int
	AWB    string
}

type CarrierOrder struct {
	OrderID    string
	BrandName  string
	ShipmentID string
	AWB        string
	Courier    string
	SKUs       []string
	CreatedAt  time.Time
}

type CarrierClient interface {
	GetShipment(ctx context.Context, shipmentID string) (*Shipment, error)
	GenerateManifest(ctx context.Context, shipmentID string) error
	SchedulePickup(ctx context.Context, shipmentID string) error
	AssignAWB(ctx context.Context, shipmentID string) (awb, courier string, err error)
	GenerateLabel(ctx context.Context, shipmentID string) (labelURL string, err error)
	Download(ctx context.Context, url string) ([]byte, error)
	ListRecentOrders(ctx context.Context, since time.Time) ([]CarrierOrder, error)
}

// Client talks to the carrier's external API. The bearer token is
// fetched lazily and refreshed once on a 401.
type Client struct {
	baseURL  string
	email    string
	password string
	http     clients.HTTPClientI

	mu    sync.Mutex
	token string
}

func NewClient(cfg *config.Config, httpClient clients.HTTPClientI) *Client {
	return &Client{
		baseURL:  cfg.CarrierAddress,
		email:    cfg.CarrierEmail,
		password: cfg.CarrierPass,
		http:     httpClient,
	}
}

func (c *Client) login() error {
	body, _ := json.Marshal(map[string]string{
		"email":    c.email,
		"password": c.password,
	})
	headers := http.Header{"Content-Type": []string{"application/json"}}
	status, respBody, _, err := c.http.Post(c.baseURL+"/auth/login", headers, body)
	if err != nil {
		return &GatewayError{Op: "login", Message: err.Error()}
	}
	if status != http.StatusOK {
		return &GatewayError{Op: "login", Message: vendorMessage(respBody)}
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil || resp.Token == "" {
		return &GatewayError{Op: "login", Message: "no token in response"}
	}

	c.mu.Lock()
	c.token = resp.Token
	c.mu.Unlock()
	return nil
}

func (c *Client) authHeaders() (http.Header, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	if token == "" {
		if err := c.login(); err != nil {
			return nil, err
		}
		c.mu.Lock()
		token = c.token
		c.mu.Unlock()
	}
	return http.Header{
		"Content-Type":  []string{"application/json"},
		"Authorization": []string{"Bearer " + token},
	}, nil
}

// call issues one authenticated request, retrying once after a token
// refresh when the carrier rejects the session.
func (c *Client) call(method, path string, body []byte) (int, []byte, error) {
	for attempt := 0; attempt < 2; attempt++ {
		headers, err := c.authHeaders()
		if err != nil {
			return 0, nil, err
		}

		var status int
		var respBody []byte
		switch method {
		case http.MethodGet:
			status, respBody, _, err = c.http.Get(c.baseURL+path, headers)
		default:
			status, respBody, _, err = c.http.Post(c.baseURL+path, headers, body)
		}
		if err != nil {
			return 0, nil, err
		}
		if status == http.StatusUnauthorized && attempt == 0 {
			c.mu.Lock()
			c.token = ""
			c.mu.Unlock()
			continue
		}
		return status, respBody, nil
	}
	return 0, nil, &GatewayError{Op: "auth", Message: "session refresh failed"}
}

func shipmentIDNumber(shipmentID string) (int, error) {
	n, err := strconv.Atoi(shipmentID)
	if err != nil {
		return 0, fmt.Errorf("shipmentId must be a valid number: %q", shipmentID)
	}
	return n, nil
}

func vendorMessage(body []byte) string {
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err == nil && resp.Message != "" {
		return resp.Message
	}
	return string(body)
}

func (c *Client) GetShipment(ctx context.Context, shipmentID string) (*Shipment, error) {
	n, err := shipmentIDNumber(shipmentID)
	if err != nil {
		return nil, err
	}
	status, body, err := c.call(http.MethodGet, "/shipments/"+strconv.Itoa(n), nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &GatewayError{Op: "get shipment", Message: vendorMessage(body)}
	}

	var resp struct {
		Data struct {
			ID     int    `json:"id"`
			Status int    `json:"status"`
			AWB    string `json:"awb"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &GatewayError{Op: "get shipment", Message: err.Error()}
	}
	return &Shipment{ID: resp.Data.ID, Status: resp.Data.Status, AWB: resp.Data.AWB}, nil
}

func (c *Client) GenerateManifest(ctx context.Context, shipmentID string) error {
	n, err := shipmentIDNumber(shipmentID)
	if err != nil {
		return err
	}
	body, _ := json.Marshal(map[string]any{"shipment_id": []int{n}})
	status, respBody, err := c.call(http.MethodPost, "/manifests/generate", body)
	if err != nil {
		return err
	}
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}
	if vendorMessage(respBody) == msgManifestAlreadyGenerated {
		return nil
	}
	return &GatewayError{Op: "generate manifest", Message: vendorMessage(respBody)}
}

func (c *Client) SchedulePickup(ctx context.Context, shipmentID string) error {
	n, err := shipmentIDNumber(shipmentID)
	if err != nil {
		return err
	}
	body, _ := json.Marshal(map[string]any{"shipment_id": n})
	status, respBody, err := c.call(http.MethodPost, "/courier/generate/pickup", body)
	if err != nil {
		return err
	}
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}
	if vendorMessage(respBody) == msgAlreadyInPickupQueue {
		return nil
	}
	return &GatewayError{Op: "schedule pickup", Message: vendorMessage(respBody)}
}

func (c *Client) AssignAWB(ctx context.Context, shipmentID string) (string, string, error) {
	n, err := shipmentIDNumber(shipmentID)
	if err != nil {
		return "", "", err
	}
	body, _ := json.Marshal(map[string]any{"shipment_id": n})
	status, respBody, err := c.call(http.MethodPost, "/courier/assign/awb", body)
	if err != nil {
		return "", "", err
	}
	if status != http.StatusOK {
		return "", "", &GatewayError{Op: "assign awb", Message: vendorMessage(respBody)}
	}

	var resp struct {
		Response struct {
			Data struct {
				AWBCode     string `json:"awb_code"`
				CourierName string `json:"courier_name"`
			} `json:"data"`
		} `json:"response"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", "", &GatewayError{Op: "assign awb", Message: err.Error()}
	}
	if resp.Response.Data.AWBCode == "" {
		return "", "", &GatewayError{Op: "assign awb", Message: "no AWB in response"}
	}
	return resp.Response.Data.AWBCode, resp.Response.Data.CourierName, nil
}

func (c *Client) GenerateLabel(ctx context.Context, shipmentID string) (string, error) {
	n, err := shipmentIDNumber(shipmentID)
	if err != nil {
		return "", err
	}
	body, _ := json.Marshal(map[string]any{"shipment_id": []int{n}})
	status, respBody, err := c.call(http.MethodPost, "/courier/generate/label", body)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", &GatewayError{Op: "generate label", Message: vendorMessage(respBody)}
	}

	var resp struct {
		LabelURL string `json:"label_url"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", &GatewayError{Op: "generate label", Message: err.Error()}
	}
	if resp.LabelURL == "" {
		return "", &GatewayError{Op: "generate label", Message: "no label_url in response"}
	}
	return resp.LabelURL, nil
}

func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	status, body, _, err := c.http.Get(url, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &GatewayError{Op: "download", Message: fmt.Sprintf("unexpected status %d", status)}
	}
	return body, nil
}

const carrierTimeLayout = "2006-01-02 15:04:05"

func (c *Client) ListRecentOrders(ctx context.Context, since time.Time) ([]CarrierOrder, error) {
	status, body, err := c.call(http.MethodGet, "/orders?per_page=500&page=1", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &GatewayError{Op: "list orders", Message: vendorMessage(body)}
	}

	var resp struct {
		Data []struct {
			ChannelOrderID string `json:"channel_order_id"`
			BrandName      string `json:"brand_name"`
			CreatedAt      string `json:"created_at"`
			Shipments      []struct {
				ID      int    `json:"id"`
				AWB     string `json:"awb"`
				Courier string `json:"courier"`
			} `json:"shipments"`
			Products []struct {
				ChannelSKU string `json:"channel_sku"`
			} `json:"products"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &GatewayError{Op: "list orders", Message: err.Error()}
	}

	var orders []CarrierOrder
	for _, o := range resp.Data {
		createdAt, err := time.Parse(carrierTimeLayout, o.CreatedAt)
		if err != nil || createdAt.Before(since) {
			continue
		}
		order := CarrierOrder{
			OrderID:   o.ChannelOrderID,
			BrandName: o.BrandName,
			CreatedAt: createdAt,
		}
		if len(o.Shipments) > 0 {
			order.ShipmentID = strconv.Itoa(o.Shipments[0].ID)
			order.AWB = o.Shipments[0].AWB
			order.Courier = o.Shipments[0].Courier
		}
		for _, p := range o.Products {
			if p.ChannelSKU != "" {
				order.SKUs = append(order.SKUs, p.ChannelSKU)
			}
		}
		orders = append(orders, order)
	}
	return orders, nil
}
