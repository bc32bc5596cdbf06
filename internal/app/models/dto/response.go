package dto

// SuccessResponse is the body returned by mutations that have no payload,
// such as deletes and password resets.
type SuccessResponse struct {
	Message string `json:"message"`
}
