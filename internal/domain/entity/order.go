package entity

import (
	"encoding/json"
	"time"

	domainerrors "autoparts/internal/domain/errors"
	"autoparts/internal/errors"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order. Any status may follow any other.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusPending:    "Ожидает",
	OrderStatusProcessing: "В обработке",
	OrderStatusShipped:    "Отправлен",
	OrderStatusDelivered:  "Доставлен",
	OrderStatusCancelled:  "Отменен",
}

// IsValid checks if the status is one of the five defined states.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusLabels[s]

	return ok
}

// Label returns the customer-facing name of the status, or the raw value when unknown.
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}

	return string(s)
}

// DeliveryType is how the order reaches the customer.
type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

// IsValid checks if the DeliveryType is a valid value.
func (d DeliveryType) IsValid() bool {
	return d == DeliveryPickup || d == DeliveryDelivery
}

// PaymentType is how the order is paid.
type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentCard   PaymentType = "card"
	PaymentOnline PaymentType = "online"
)

// IsValid checks if the PaymentType is a valid value.
func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentOnline:
		return true
	default:
		return false
	}
}

// LineItem is a point-in-time copy of a cart line stored with an order.
type LineItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// UnmarshalJSON also reads snapshots written as {"name","quantity","price","total"}.
// A snapshot without a line total gets unit price times quantity.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name      string           `json:"name"`
		Quantity  int              `json:"quantity"`
		UnitPrice *decimal.Decimal `json:"unitPrice"`
		LineTotal *decimal.Decimal `json:"lineTotal"`
		Price     *decimal.Decimal `json:"price"`
		Total     *decimal.Decimal `json:"total"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	unitPrice := firstDecimal(raw.UnitPrice, raw.Price)
	lineTotal := firstDecimal(raw.LineTotal, raw.Total)
	if raw.LineTotal == nil && raw.Total == nil {
		lineTotal = unitPrice.Mul(decimal.NewFromInt(int64(raw.Quantity)))
	}

	*li = LineItem{
		Name:      raw.Name,
		Quantity:  raw.Quantity,
		UnitPrice: unitPrice,
		LineTotal: lineTotal,
	}

	return nil
}

func firstDecimal(values ...*decimal.Decimal) decimal.Decimal {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}

	return decimal.Zero
}

// Order is an immutable purchase record. Only Status changes after creation.
type Order struct {
	ID              int64
	UserID          int64
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	CreatedAt       time.Time
	ItemsJSON       []byte // Serialized []LineItem.
	DeliveryType    DeliveryType
	PaymentType     PaymentType
	DeliveryAddress string
	DeliveryPhone   string
	Comment         string

	// Owner display fields, resolved at read time.
	UserName  string
	UserEmail string
	UserPhone string
}

// Items decodes the line item snapshot.
func (o *Order) Items() ([]LineItem, error) {
	if len(o.ItemsJSON) == 0 {
		return []LineItem{}, nil
	}

	var items []LineItem
	if err := json.Unmarshal(o.ItemsJSON, &items); err != nil {
		return nil, errors.Wrap(domainerrors.ErrItemsParseFailed.WithDetails(err.Error()), "decode order items")
	}
	if items == nil {
		items = []LineItem{}
	}

	return items, nil
}

// DateString returns the creation date as YYYY-MM-DD.
func (o *Order) DateString() string {
	return o.CreatedAt.Format(time.DateOnly)
}

// EncodeLineItems serializes a snapshot for storage.
func EncodeLineItems(items []LineItem) ([]byte, error) {
	if items == nil {
		items = []LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "encode order items")
	}

	return data, nil
}

// SumLineItems adds up the line totals of a snapshot.
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal)
	}

	return total
}
