package domain

import "time"

// Role enumerates account roles. Assigned server-side; registration always
// produces a customer and no endpoint can change it afterwards.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleAdmin     Role = "admin"
	RolePickupMan Role = "pickup_man"
)

// User is the credential document stored in the users collection. The string
// ID field is the lookup key and token subject, not the store's native _id.
// The bcrypt hash is stored under the legacy "password" field name.
type User struct {
	ID           string    `bson:"id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	FirstName    string    `bson:"first_name"`
	LastName     string    `bson:"last_name"`
	MobileNumber string    `bson:"mobile_number"`
	Role         Role      `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}
