package catalog

// Tier identifies the pricing/staffing level for a booking.
type Tier string

const (
	TierLead Tier = "lead"
	TierTeam Tier = "team"
)

// IsValid checks if the tier is a known pricing tier
func (t Tier) IsValid() bool {
	return t == TierLead || t == TierTeam
}

// String returns the string representation of Tier
func (t Tier) String() string {
	return string(t)
}

// TierPrice holds one price per tier.
type TierPrice struct {
	Lead float64 `json:"lead"`
	Team float64 `json:"team"`
}

// For returns the price for the given tier. Unknown tiers fall back to lead.
func (p TierPrice) For(tier Tier) float64 {
	if tier == TierTeam {
		return p.Team
	}
	return p.Lead
}

// ServiceOption is a client-selectable variant of a service.
type ServiceOption string

const (
	OptionMakeupAndHair ServiceOption = "makeup-hair"
	OptionMakeupOnly    ServiceOption = "makeup-only"
	OptionHairOnly      ServiceOption = "hair-only"
)

// DefaultOption is applied when a service does not expose the choice.
const DefaultOption = OptionMakeupAndHair

// OptionModifier maps a sub-option to its price multipliers. Team is optional;
// when nil the lead multiplier applies to both tiers.
type OptionModifier struct {
	Option ServiceOption `json:"option"`
	Label  string        `json:"label"`
	Lead   float64       `json:"lead"`
	Team   *float64      `json:"team,omitempty"`
}

// For returns the multiplier for the given tier.
func (m OptionModifier) For(tier Tier) float64 {
	if tier == TierTeam && m.Team != nil {
		return *m.Team
	}
	return m.Lead
}

// Service is one bookable service in the static catalog.
type Service struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	BasePrice       TierPrice `json:"base_price"`
	DurationMinutes int       `json:"duration_minutes"`
	AllowsOption    bool      `json:"allows_option"`
}

// DeliveryMode is where the service is performed.
type DeliveryMode string

const (
	DeliveryStudio DeliveryMode = "studio"
	DeliveryMobile DeliveryMode = "mobile"
)

// IsValid checks if the delivery mode is known
func (d DeliveryMode) IsValid() bool {
	return d == DeliveryStudio || d == DeliveryMobile
}

// TravelLocation is a mobile-service travel tier with a per-tier surcharge.
type TravelLocation struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Surcharge TierPrice `json:"surcharge"`
}

// PartyService is one bridal-party add-on service with a per-unit price.
// The catalog slice order is the fixed order party line items appear in quotes.
type PartyService struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	UnitPrice TierPrice `json:"unit_price"`
}

// Party service keys, in quote line-item order.
const (
	PartyHairAndMakeup    = "hair_and_makeup"
	PartyMakeupOnly       = "makeup_only"
	PartyHairOnly         = "hair_only"
	PartyDupattaSetting   = "dupatta_setting"
	PartyExtensionInstall = "extension_installation"
	PartySareeDraping     = "saree_draping"
	PartyHijabSetting     = "hijab_setting"
	PartyAirbrush         = "airbrush"
)
