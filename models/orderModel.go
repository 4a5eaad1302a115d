package models

import "time"

const (
	OrderStatusPendingPayment = "Pending Payment"
	OrderStatusPaid           = "Paid"
	OrderStatusProcessing     = "Processing"
	OrderStatusShipped        = "Shipped"
	OrderStatusCancelled      = "Cancelled"
)

var orderStatuses = map[string]bool{
	OrderStatusPendingPayment: true,
	OrderStatusPaid:           true,
	OrderStatusProcessing:     true,
	OrderStatusShipped:        true,
	OrderStatusCancelled:      true,
}

func IsValidOrderStatus(status string) bool {
	return orderStatuses[status]
}

type Customer struct {
	Name  string `bson:"name" json:"name" validate:"required"`
	Email string `bson:"email" json:"email" validate:"required,email"`
}

// OrderInput is the checkout form payload. Status is optional and defaults
// to "Pending Payment" when the flow persists the order.
type OrderInput struct {
	Customer           Customer `bson:"customer" json:"customer" validate:"required"`
	Plan               string   `bson:"plan" json:"plan" validate:"required"`
	TotalPrice         string   `bson:"total_price" json:"totalPrice" validate:"required"`
	Status             string   `bson:"status" json:"status"`
	Addons             []string `bson:"addons" json:"addons"`
	PharmacyName       string   `bson:"pharmacy_name" json:"pharmacyName" validate:"required"`
	Mobile             string   `bson:"mobile" json:"mobile" validate:"required"`
	Address            string   `bson:"address" json:"address" validate:"required"`
	PosDeliveryAddress string   `bson:"pos_delivery_address,omitempty" json:"posDeliveryAddress,omitempty"`
}

// Order is the persisted record. ID is the store document id, Order_id the
// human-facing "OC-" number printed on the confirmation and in the payment SMS.
type Order struct {
	ID         string `bson:"id,omitempty" json:"id"`
	Order_id   string `bson:"order_id" json:"orderId"`
	OrderInput `bson:",inline"`
	Date       string    `bson:"date" json:"date"`
	Created_at time.Time `bson:"created_at" json:"created_at"`
}
