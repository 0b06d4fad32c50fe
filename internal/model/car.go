package model

import "time"

// Car represents a vehicle owned by a user.
type Car struct {
	ID        string
	UserID    string
	Brand     string
	Model     string
	Year      int
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Response maps a stored car to its API shape.
func (c *Car) Response() CarResponse {
	return CarResponse{
		ID:        c.ID,
		Brand:     c.Brand,
		Model:     c.Model,
		Year:      c.Year,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CarRequest is the wire form for creating or replacing a car. The client
// sends the model name as carModel; it is stored and returned as model.
type CarRequest struct {
	Brand    string `json:"brand"`
	CarModel string `json:"carModel"`
	Year     int    `json:"year"`
	Color    string `json:"color"`
}

// CarResponse represents a car exposed over the API.
type CarResponse struct {
	ID        string    `json:"id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CarListResponse is the list envelope for GET /cars.
type CarListResponse struct {
	Count int           `json:"count"`
	Cars  []CarResponse `json:"cars"`
}

// CarEnvelope wraps a single car, with an optional message on mutations.
type CarEnvelope struct {
	Message string      `json:"message,omitempty"`
	Car     CarResponse `json:"car"`
}
