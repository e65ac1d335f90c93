package domain

import "time"

// Role is a closed set; authorization checks go through Identity
// rather than scattered string comparisons.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Identity is the authenticated principal carried in request context.
type Identity struct {
	UserID string
	Role   Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanAccessOrder reports whether the identity may read an order owned
// by ownerID.
func (i Identity) CanAccessOrder(ownerID string) bool {
	return i.UserID == ownerID || i.IsAdmin()
}
