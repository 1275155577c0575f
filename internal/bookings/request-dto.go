package bookings

// SubmitQuoteRequest is the full booking form submission. Structural binding
// only checks JSON shape; field-level rules live in validate.go so the client
// gets one map of every problem instead of the first binding failure.
type SubmitQuoteRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Days        []BookingDayRequest `json:"days"`
	BridalTrial *BridalTrialRequest `json:"bridal_trial,omitempty"`
	BridalParty *BridalPartyRequest `json:"bridal_party,omitempty"`
}

// BookingDayRequest is one day of service as submitted by the form.
type BookingDayRequest struct {
	Date             string `json:"date"`       // YYYY-MM-DD
	ReadyTime        string `json:"ready_time"` // HH:MM
	ServiceID        string `json:"service_id"`
	Option           string `json:"option,omitempty"`
	HairExtensions   int    `json:"hair_extensions"`
	JewellerySetting bool   `json:"jewellery_setting"`
	SareeDraping     bool   `json:"saree_draping"`
	HijabSetting     bool   `json:"hijab_setting"`
	DeliveryMode     string `json:"delivery_mode"`
	TravelLocationID string `json:"travel_location_id,omitempty"`
}

// BridalTrialRequest is the optional pre-event trial section of the form.
type BridalTrialRequest struct {
	Enabled bool   `json:"enabled"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
}

// BridalPartyRequest is the optional bridal-party section of the form.
type BridalPartyRequest struct {
	Enabled               bool `json:"enabled"`
	HairAndMakeup         int  `json:"hair_and_makeup"`
	MakeupOnly            int  `json:"makeup_only"`
	HairOnly              int  `json:"hair_only"`
	DupattaSetting        int  `json:"dupatta_setting"`
	ExtensionInstallation int  `json:"extension_installation"`
	SareeDraping          int  `json:"saree_draping"`
	HijabSetting          int  `json:"hijab_setting"`
	Airbrush              int  `json:"airbrush"`
}

// UpdateStatusRequest is the admin status-change payload.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=CONFIRMED CANCELLED"`
}

// BookingListQuery holds admin listing filters.
type BookingListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
}
