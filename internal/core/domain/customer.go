package domain

// Customer is a tenant's client record. Customers are hard-deleted.
type Customer struct {
	ID       string `json:"id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	TenantID string `json:"tenant_id" bson:"tenant_id"`
}
