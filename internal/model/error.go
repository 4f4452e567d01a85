package model

import "errors"

var (
	ErrValidation       = errors.New("validation error")    // 400
	ErrUnauthorized     = errors.New("unauthorized")        // 401
	ErrProductNotFound  = errors.New("product not found")   // 404
	ErrCartItemNotFound = errors.New("cart item not found") // 404
	ErrUserNotFound     = errors.New("user not found")      // 404
)
