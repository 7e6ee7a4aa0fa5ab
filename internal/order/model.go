package order

import "time"

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

// Business constants, amounts in won.
const (
	MinimumOrderAmount    = 10000
	FreeDeliveryThreshold = 30000
	DeliveryFeeAmount     = 3000
)

type Order struct {
	ID              int           `json:"id"`
	OrderNumber     string        `json:"order_number"`
	UserID          *int          `json:"user_id"`
	UserName        string        `json:"user_name"`
	UserPhone       string        `json:"user_phone"`
	Address         string        `json:"address"`
	DeliveryType    DeliveryType  `json:"delivery_type"`
	DeliveryRequest string        `json:"delivery_request"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	TotalAmount     int           `json:"total_amount"`
	DeliveryFee     int           `json:"delivery_fee"`
	Status          Status        `json:"status"`
	AdminMemo       string        `json:"admin_memo"`
	Items           []Item        `json:"items"`
	CreatedAt       time.Time     `json:"created_at"`
}

// Item is a line-item snapshot: name and price are frozen copies of the
// product at submission time and are never recomputed from the catalog.
type Item struct {
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       int    `json:"price"`
}

type ItemInput struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type PlaceOrderInput struct {
	UserName        string
	UserPhone       string
	Address         string
	AddressDetail   string
	DeliveryType    DeliveryType
	DeliveryRequest string
	PaymentMethod   PaymentMethod
	Items           []ItemInput
	TotalAmount     int
}

type PlaceOrderResult struct {
	OrderNumber string `json:"order_number"`
	OrderID     int    `json:"order_id"`
	DeliveryFee int    `json:"delivery_fee"`
	FinalAmount int    `json:"final_amount"`
}

// Stats is the admin dashboard aggregate. Field names match the original
// dashboard payload.
type Stats struct {
	TodayOrders int `json:"todayOrders"`
	TodaySales  int `json:"todaySales"`
	WeekSales   int `json:"weekSales"`
	NewOrders   int `json:"newOrders"`
}

// deliveryFeeFor computes the fee from the declared subtotal. Pickup is
// always free; delivery is free at or above the threshold.
func deliveryFeeFor(t DeliveryType, subtotal int) int {
	if t == DeliveryTypeDelivery && subtotal < FreeDeliveryThreshold {
		return DeliveryFeeAmount
	}
	return 0
}
