package response

// Envelope is the JSON wrapper every backend endpoint answers with.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}
