package pricing

import "glambook/internal/catalog"

// BookingDay is one unit of service for one date, already validated upstream.
// The calculator treats it as data: unknown service ids contribute nothing.
type BookingDay struct {
	Date             string                 `json:"date"`       // YYYY-MM-DD
	ReadyTime        string                 `json:"ready_time"` // HH:MM, client ready-by time
	ServiceID        string                 `json:"service_id"`
	Option           *catalog.ServiceOption `json:"option,omitempty"`
	HairExtensions   int                    `json:"hair_extensions"`
	JewellerySetting bool                   `json:"jewellery_setting"`
	SareeDraping     bool                   `json:"saree_draping"`
	HijabSetting     bool                   `json:"hijab_setting"`
	DeliveryMode     catalog.DeliveryMode   `json:"delivery_mode"`
	TravelLocationID string                 `json:"travel_location_id,omitempty"`
}

// BridalTrial is an optional pre-event trial session.
type BridalTrial struct {
	Enabled bool   `json:"enabled"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
}

// BridalPartyServices holds the non-bride party member quantities.
type BridalPartyServices struct {
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

// LineItem is one priced entry in a quote breakdown.
type LineItem struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Quote is a fully itemized price quote for one tier.
type Quote struct {
	Tier      catalog.Tier `json:"tier"`
	LineItems []LineItem   `json:"line_items"`
	Subtotal  float64      `json:"subtotal"`
	Tax       float64      `json:"tax"`
	Total     float64      `json:"total"`
}

func (q *Quote) add(description string, price float64) {
	q.LineItems = append(q.LineItems, LineItem{Description: description, Price: price})
	q.Subtotal += price
}
