package model

import "time"

type QuoteRequest struct {
	// Unique identifier of the quote request.
	ID string
	// Contact name.
	Name string
	// Contact email address.
	Email string
	// Contact phone number.
	Phone string
	// Optional company name.
	Company string
	// Vehicle the batteries are for, e.g. "golf-cart".
	VehicleType string
	// Free-form description of the battery requirement.
	BatteryNeeds string
	// Requested number of batteries.
	Quantity int
	// Optional free-form message.
	Message string
	// Timestamp when the request was submitted.
	CreatedAt time.Time
}

type CreateQuoteRequestParams struct {
	Name         string
	Email        string
	Phone        string
	Company      string
	VehicleType  string
	BatteryNeeds string
	Quantity     int
	Message      string
}
