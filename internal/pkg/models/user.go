package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
)

// User represents a marketplace user (customer or service provider)
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Avatar       string    `json:"avatar,omitempty" db:"avatar"`
	Longitude    float64   `json:"longitude" db:"longitude"`
	Latitude     float64   `json:"latitude" db:"latitude"`
	Address      string    `json:"address,omitempty" db:"address"`
	Availability bool      `json:"availability" db:"availability"`
	Rating       float64   `json:"rating" db:"rating"`
	ReviewCount  int       `json:"review_count" db:"review_count"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	// Catalog is populated for providers only
	Catalog []ServicePair `json:"catalog,omitempty" db:"-"`
}

// ServicePair is one priced catalog entry of a provider.
// The pair replaces the parallel servicesOffered/pricing arrays of the
// legacy data model; Position keeps the list ordered and dense.
type ServicePair struct {
	ProviderID uuid.UUID `json:"-" db:"provider_id"`
	Position   int       `json:"position" db:"position"`
	Name       string    `json:"name" db:"name"`
	Price      float64   `json:"price" db:"price"`
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	Avatar    string   `json:"avatar"`
	Longitude float64  `json:"longitude"`
	Latitude  float64  `json:"latitude"`
	Address   string   `json:"address"`
	Services  []string `json:"services"`
	Pricing   []float64 `json:"pricing"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token back to the client
type AuthResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
}

// ProfileUpdateRequest is the payload for customer/provider profile updates
type ProfileUpdateRequest struct {
	Name      string   `json:"name"`
	Avatar    string   `json:"avatar"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
	Address   string   `json:"address"`
}

// ServicePairRequest is the payload for catalog mutations
type ServicePairRequest struct {
	Position *int    `json:"position"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

// ContactRequest is the payload for the public contact form
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
