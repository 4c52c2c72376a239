package models

import "gorm.io/gorm"

// Order lifecycle statuses. Only pending -> confirmed happens inside
// this service; the rest are driven by fulfillment.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Supported payment methods.
const (
	PaymentMethodPhonePe = "phonepe"
	PaymentMethodPayPal  = "paypal"
	PaymentMethodCOD     = "cod"
)

// ValidOrderStatuses lists every status an order may hold.
var ValidOrderStatuses = map[string]bool{
	OrderStatusPending:    true,
	OrderStatusConfirmed:  true,
	OrderStatusProcessing: true,
	OrderStatusShipped:    true,
	OrderStatusDelivered:  true,
	OrderStatusCancelled:  true,
}

// ValidPaymentMethods lists every accepted payment method.
var ValidPaymentMethods = map[string]bool{
	PaymentMethodPhonePe: true,
	PaymentMethodPayPal:  true,
	PaymentMethodCOD:     true,
}

// OrderItem is an immutable snapshot of a purchased line. Price is the
// product price at the time of purchase, decoupled from the live catalog.
type OrderItem struct {
	ID        string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string   `json:"order_id" gorm:"type:varchar(36);index"`
	ProductID string   `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	gorm.Model
}

// Order represents a customer order with its shipping snapshot.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string      `json:"user_id" gorm:"type:varchar(36);index"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status" gorm:"type:varchar(20)"`
	PaymentStatus   string      `json:"payment_status" gorm:"type:varchar(20)"`
	PaymentMethod   string      `json:"payment_method" gorm:"type:varchar(20)"`
	PaymentID       string      `json:"payment_id" gorm:"type:varchar(100)"`
	ShippingAddress string      `json:"shipping_address"`
	ShippingCity    string      `json:"shipping_city" gorm:"type:varchar(100)"`
	ShippingState   string      `json:"shipping_state" gorm:"type:varchar(100)"`
	ShippingPincode string      `json:"shipping_pincode" gorm:"type:varchar(10)"`
	Phone           string      `json:"phone" gorm:"type:varchar(20)"`
	gorm.Model
}
