package dto

import "time"

type AddSKURequestDTO struct {
	Enrollment string   `json:"enrollment" validate:"required" example:"VC10234"`
	ShipmentID string   `json:"shipmentId" validate:"required" example:"482915603"`
	SKUs       []string `json:"skus" validate:"required,min=1,dive,required"`
}

type PayOrderRequestDTO struct {
	Enrollment string `json:"enrollment" validate:"required" example:"VC10234"`
	OrderID    string `json:"orderId" validate:"required" example:"ORD-2024-1187"`
}

// OrderRefRequestDTO targets an order by either identifier. At least
// one must be set.
type OrderRefRequestDTO struct {
	OrderID    string `json:"orderId,omitempty" example:"ORD-2024-1187"`
	ShipmentID string `json:"shipmentId,omitempty" example:"482915603"`
}

type UpdateStatusRequestDTO struct {
	Status string `json:"status" validate:"required" example:"SHIPPED"`
}

type OrderIDRequestDTO struct {
	OrderID string `json:"orderId" validate:"required" example:"ORD-2024-1187"`
}

type ShipmentIDRequestDTO struct {
	ShipmentID string `json:"shipmentId" validate:"required" example:"482915603"`
}

type ShipmentIDsRequestDTO struct {
	ShipmentIDs []string `json:"shipmentIds" validate:"required,min=1,dive,required"`
}

type CreateEasyShipOrderRequestDTO struct {
	Enrollment         string  `json:"enrollment" validate:"required" example:"VC10234"`
	OrderID            string  `json:"orderId" validate:"required" example:"ES-2024-0042"`
	TrackingID         string  `json:"trackingId,omitempty"`
	LastmileTrackingID string  `json:"lastmileTrackingId,omitempty"`
	DeliveryPartner    string  `json:"deliveryPartner,omitempty"`
	LastmilePartner    string  `json:"lastmilePartner,omitempty"`
	OrderAmount        float64 `json:"orderAmount" validate:"required,gt=0" example:"1200"`
	ShippingAmount     float64 `json:"shippingAmount" validate:"gte=0" example:"0"`
	Country            string  `json:"country,omitempty" example:"IN"`
}

type OrderItemDTO struct {
	SKU      string  `json:"sku" example:"SKU-BLK-42"`
	Name     string  `json:"name,omitempty"`
	Price    float64 `json:"price" example:"250"`
	Shipping float64 `json:"shipping" example:"0"`
	GSTRate  float64 `json:"gstRate" example:"18"`
	Quantity int     `json:"quantity" example:"1"`
}

type OrderResponseDTO struct {
	OrderID            string         `json:"orderId" example:"ORD-2024-1187"`
	Enrollment         string         `json:"enrollment,omitempty" example:"VC10234"`
	FulfillmentMode    string         `json:"fulfillmentMode" example:"carrier"`
	Status             string         `json:"status" example:"RTD"`
	ShipmentID         string         `json:"shipmentId,omitempty" example:"482915603"`
	TrackingID         string         `json:"trackingId,omitempty"`
	LastmileTrackingID string         `json:"lastmileTrackingId,omitempty"`
	DeliveryPartner    string         `json:"deliveryPartner,omitempty"`
	LastmilePartner    string         `json:"lastmilePartner,omitempty"`
	FinalAmount        *float64       `json:"finalAmount,omitempty" example:"300"`
	OrderAmount        float64        `json:"orderAmount,omitempty" example:"1200"`
	ShippingAmount     float64        `json:"shippingAmount,omitempty" example:"0"`
	Items              []OrderItemDTO `json:"items,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
}

type OrderListResponseDTO struct {
	Orders []OrderResponseDTO `json:"orders"`
	Total  int                `json:"total" example:"134"`
	Page   int                `json:"page" example:"1"`
	Limit  int                `json:"limit" example:"20"`
}
