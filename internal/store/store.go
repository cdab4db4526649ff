package store

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Channel string

const (
	ChannelQuiosco  Channel = "QUIOSCO"
	ChannelDelivery Channel = "DELIVERY"
)

// Delivery order statuses as written by the ordering app.
const (
	DeliveryStatusPending   = "PENDIENTE"
	DeliveryStatusPaid      = "PAGADO"
	DeliveryStatusDelivered = "ENTREGADO"
	DeliveryStatusCancelled = "CANCELADO"
)

// PlaceholderProductName stands in for line items whose product was
// removed from the menu. The historical line item still counts.
const PlaceholderProductName = "Producto desconocido"

// PlaceholderClientName stands in for delivery orders whose client record
// and denormalized snapshot are both gone.
const PlaceholderClientName = "Cliente"

type LineItem struct {
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	CategoryID   int64   `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
}

// Order is a raw in-store ("quiosco") order. Total carries the value the
// ordering app stored at checkout; revenue aggregation recomputes from
// Items instead of trusting it.
type Order struct {
	ID                   int64      `json:"id"`
	CustomerName         string     `json:"customerName"`
	TableNumber          *int       `json:"tableNumber,omitempty"`
	Total                float64    `json:"total"`
	Note                 *string    `json:"note,omitempty"`
	PlacedAt             time.Time  `json:"placedAt"`
	StartedPreparationAt *time.Time `json:"startedPreparationAt,omitempty"`
	ReadyAt              *time.Time `json:"readyAt,omitempty"`
	DeliveredAt          *time.Time `json:"deliveredAt,omitempty"`
	Items                []LineItem `json:"items"`
}

// DeliveryOrder is a raw delivery-channel order. ClientName and Address
// are already resolved against the live client/address rows with fallback
// to the denormalized snapshot.
type DeliveryOrder struct {
	ID                   int64      `json:"id"`
	ClientName           string     `json:"clientName"`
	ClientPhone          string     `json:"clientPhone"`
	Address              *string    `json:"address,omitempty"`
	Status               string     `json:"status"`
	Note                 *string    `json:"note,omitempty"`
	PlacedAt             time.Time  `json:"placedAt"`
	StartedPreparationAt *time.Time `json:"startedPreparationAt,omitempty"`
	ReadyAt              *time.Time `json:"readyAt,omitempty"`
	Items                []LineItem `json:"items"`
}

type Store struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func New(db *pgxpool.Pool, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}
