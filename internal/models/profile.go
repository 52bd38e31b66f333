package models

import "time"

// Profile maps an identity-provider user to their Square customer.
type Profile struct {
	ID               string `gorm:"type:uuid;primaryKey" json:"id"` // user id from the identity provider
	SquareCustomerID string `gorm:"size:64" json:"square_customer_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
