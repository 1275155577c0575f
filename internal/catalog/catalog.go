package catalog

// GSTRate is the fixed tax multiplier applied to quote subtotals (HST, Ontario).
const GSTRate = 0.13

// Catalog is the immutable price/service reference data. It is built once at
// process start and passed explicitly into the pricing calculator, never
// mutated afterwards.
type Catalog struct {
	Services        []Service        `json:"services"`
	Options         []OptionModifier `json:"options"`
	TravelLocations []TravelLocation `json:"travel_locations"`
	PartyServices   []PartyService   `json:"party_services"`

	// Fixed per-tier add-on prices
	HairExtensionUnit TierPrice `json:"hair_extension_unit"`
	JewellerySetting  TierPrice `json:"jewellery_setting"`
	SareeDraping      TierPrice `json:"saree_draping"`
	HijabSetting      TierPrice `json:"hijab_setting"`
	BridalTrial       TierPrice `json:"bridal_trial"`

	GSTRate float64 `json:"gst_rate"`
}

// Service ids with bridal semantics; saree draping and hijab setting add-ons
// are priced only for these services.
const (
	ServiceBridal     = "bridal"
	ServiceSemiBridal = "semi-bridal"
)

func teamMul(v float64) *float64 { return &v }

// Default returns the studio's standard catalog.
func Default() *Catalog {
	return &Catalog{
		Services: []Service{
			{ID: ServiceBridal, Name: "Bridal", BasePrice: TierPrice{Lead: 350, Team: 250}, DurationMinutes: 180, AllowsOption: true},
			{ID: ServiceSemiBridal, Name: "Semi-Bridal", BasePrice: TierPrice{Lead: 300, Team: 220}, DurationMinutes: 150, AllowsOption: true},
			{ID: "glam", Name: "Glam Makeup", BasePrice: TierPrice{Lead: 180, Team: 140}, DurationMinutes: 90, AllowsOption: true},
			{ID: "photoshoot", Name: "Photoshoot", BasePrice: TierPrice{Lead: 250, Team: 190}, DurationMinutes: 120, AllowsOption: false},
		},
		Options: []OptionModifier{
			{Option: OptionMakeupAndHair, Label: "Makeup & Hair", Lead: 1},
			{Option: OptionMakeupOnly, Label: "Makeup Only", Lead: 0.61, Team: teamMul(0.65)},
			{Option: OptionHairOnly, Label: "Hair Only", Lead: 0.5, Team: teamMul(0.55)},
		},
		TravelLocations: []TravelLocation{
			{ID: "toronto", Label: "Toronto", Surcharge: TierPrice{Lead: 0, Team: 0}},
			{ID: "gta", Label: "Greater Toronto Area", Surcharge: TierPrice{Lead: 50, Team: 40}},
			{ID: "outside-gta", Label: "Outside GTA", Surcharge: TierPrice{Lead: 100, Team: 80}},
		},
		PartyServices: []PartyService{
			{Key: PartyHairAndMakeup, Label: "Hair & Makeup", UnitPrice: TierPrice{Lead: 120, Team: 95}},
			{Key: PartyMakeupOnly, Label: "Makeup Only", UnitPrice: TierPrice{Lead: 85, Team: 70}},
			{Key: PartyHairOnly, Label: "Hair Only", UnitPrice: TierPrice{Lead: 75, Team: 60}},
			{Key: PartyDupattaSetting, Label: "Dupatta Setting", UnitPrice: TierPrice{Lead: 40, Team: 30}},
			{Key: PartyExtensionInstall, Label: "Extension Installation", UnitPrice: TierPrice{Lead: 20, Team: 15}},
			{Key: PartySareeDraping, Label: "Saree Draping", UnitPrice: TierPrice{Lead: 45, Team: 40}},
			{Key: PartyHijabSetting, Label: "Hijab Setting", UnitPrice: TierPrice{Lead: 30, Team: 25}},
			{Key: PartyAirbrush, Label: "Airbrush", UnitPrice: TierPrice{Lead: 50, Team: 40}},
		},
		HairExtensionUnit: TierPrice{Lead: 20, Team: 20},
		JewellerySetting:  TierPrice{Lead: 30, Team: 25},
		SareeDraping:      TierPrice{Lead: 45, Team: 40},
		HijabSetting:      TierPrice{Lead: 30, Team: 25},
		BridalTrial:       TierPrice{Lead: 120, Team: 90},
		GSTRate:           GSTRate,
	}
}

// ServiceByID resolves a service by its identifier.
func (c *Catalog) ServiceByID(id string) (Service, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// OptionByID resolves a sub-option modifier.
func (c *Catalog) OptionByID(opt ServiceOption) (OptionModifier, bool) {
	for _, m := range c.Options {
		if m.Option == opt {
			return m, true
		}
	}
	return OptionModifier{}, false
}

// LocationByID resolves a travel-location tier.
func (c *Catalog) LocationByID(id string) (TravelLocation, bool) {
	for _, l := range c.TravelLocations {
		if l.ID == id {
			return l, true
		}
	}
	return TravelLocation{}, false
}

// PartyServiceByKey resolves a bridal-party service by its key.
func (c *Catalog) PartyServiceByKey(key string) (PartyService, bool) {
	for _, p := range c.PartyServices {
		if p.Key == key {
			return p, true
		}
	}
	return PartyService{}, false
}

// IsBridalService reports whether the id carries bridal semantics.
func IsBridalService(id string) bool {
	return id == ServiceBridal || id == ServiceSemiBridal
}
