package domain

import "time"

// Tenant is an isolated customer organization; every other entity belongs to
// exactly one tenant. Tenants are never deleted through the API, only
// deactivated.
type Tenant struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Domain    string    `json:"domain,omitempty" bson:"domain,omitempty"`
	Plan      string    `json:"plan" bson:"plan"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

const PlanFree = "free"
