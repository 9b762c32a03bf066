package dto

// HealthResponse is returned by the ping endpoint
type HealthResponse struct {
	Message string `json:"message" example:"pong"`
	Status  string `json:"status" example:"success"`
	Courses int    `json:"courses" example:"3"`
}
