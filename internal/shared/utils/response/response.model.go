package response

// Envelope is the JSON shape every endpoint returns. Validation failures carry
// a field -> message map; other errors carry at most a short detail string.
type Envelope struct {
	Status      string            `json:"status"`                 // "success" or "error"
	StatusCode  int               `json:"status_code"`            // HTTP status code
	Message     string            `json:"message"`                // Human-readable message
	Data        interface{}       `json:"data,omitempty"`         // Payload for success
	FieldErrors map[string]string `json:"field_errors,omitempty"` // Per-field validation messages
	Detail      string            `json:"detail,omitempty"`       // Diagnostic detail for request errors
}
