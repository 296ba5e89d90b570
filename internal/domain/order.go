package domain

import (
	"math"
	"math/rand"

	"github.com/AshleyKendi786/Delivery-App/internal/errors"
)

// Status literals as stored and sent over the wire. "start delivery" is the
// in-transit state; the intended progression is pending -> start delivery ->
// delivered.
const (
	StatusPending   = "pending"
	StatusInTransit = "start delivery"
	StatusDelivered = "delivered"
)

const (
	MinPrice = 10.0
	MaxPrice = 100.0
)

type Order struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	CustomerID   uint    `json:"customerId" gorm:"not null;index"`
	ProductName  string  `json:"productName" gorm:"size:100;not null"`
	Address      string  `json:"address" gorm:"size:100;not null"`
	Price        float64 `json:"price" gorm:"not null"`
	Status       string  `json:"status" gorm:"size:50;default:pending"`
	CustomerName string  `json:"customerName" gorm:"->;-:migration"` // joined from users, not a column
}

// OrderDraft carries the customer-supplied fields of a new or edited order.
type OrderDraft struct {
	ProductName string  `json:"productName"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
}

// OrderPatch is a partial update. Nil fields are left unchanged; the json
// tags keep absent fields off the wire.
type OrderPatch struct {
	ProductName *string  `json:"productName,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// EditsFields reports whether the patch touches the customer-editable fields
// rather than just the status.
func (p OrderPatch) EditsFields() bool {
	return p.ProductName != nil || p.Address != nil || p.Price != nil
}

func (d OrderDraft) Validate() error {
	var details []errors.ValidationDetail

	if d.ProductName == "" {
		details = append(details, errors.ValidationDetail{
			Field:   "productName",
			Message: "product name is required",
		})
	}

	if d.Address == "" {
		details = append(details, errors.ValidationDetail{
			Field:   "address",
			Message: "address is required",
		})
	}

	if d.Price < MinPrice || d.Price > MaxPrice {
		details = append(details, errors.ValidationDetail{
			Field:   "price",
			Message: "price must be between 10 and 100",
		})
	}

	if len(details) > 0 {
		return errors.NewValidationError("validation failed", details...)
	}

	return nil
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInTransit, StatusDelivered:
		return true
	}
	return false
}

// Editable reports whether the customer may still change the order's fields.
func (o Order) Editable() bool {
	return o.Status == StatusPending
}

// StatusOptions returns the statuses an admin may move an order to. The
// current status is excluded; no further ordering is enforced client-side.
func StatusOptions(current string) []string {
	all := []string{StatusPending, StatusInTransit, StatusDelivered}
	options := make([]string, 0, len(all)-1)
	for _, s := range all {
		if s != current {
			options = append(options, s)
		}
	}
	return options
}

// SuggestPrice picks a pseudo-random price in [10,100) rounded to two
// decimals. A UX convenience only; the server still requires an explicit
// price within bounds.
func SuggestPrice() float64 {
	p := MinPrice + rand.Float64()*(MaxPrice-MinPrice)
	return math.Round(p*100) / 100
}
