package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an authenticated actor. TenantID is required and immutable
// after creation; the first user of a freshly created tenant gets RoleAdmin,
// later joiners get RoleUser. Role carries no enforced capabilities yet.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	FullName     string    `json:"full_name" bson:"full_name"`
	Role         string    `json:"role" bson:"role"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	TenantID     string    `json:"tenant_id" bson:"tenant_id"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
