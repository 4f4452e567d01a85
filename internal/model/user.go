package model

// User is carried over from the storefront schema. No routed feature
// exercises it yet.
type User struct {
	ID       string
	Username string
	Password string
}
