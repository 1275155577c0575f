package payments

// CheckoutRequest asks for a deposit checkout session on a quoted booking.
type CheckoutRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	Tier      string `json:"tier" binding:"omitempty,oneof=lead team"`
}

// CheckoutSessionResponse carries the hosted checkout redirect.
type CheckoutSessionResponse struct {
	SessionID   string  `json:"session_id"`
	CheckoutURL string  `json:"checkout_url"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}
