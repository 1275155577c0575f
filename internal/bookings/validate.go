package bookings

import (
	"fmt"
	"regexp"
	"time"

	"glambook/internal/catalog"

	"github.com/go-playground/validator/v10"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{6,19}$`)

var validate = validator.New()

// ValidateSubmitRequest checks every field of a booking submission against the
// catalog and returns a field -> message map. An empty map means the request
// is structurally complete and may reach the calculator.
func ValidateSubmitRequest(cat *catalog.Catalog, req *SubmitQuoteRequest) map[string]string {
	fields := make(map[string]string)

	if len(req.Name) < 2 || len(req.Name) > 120 {
		fields["name"] = "name must be between 2 and 120 characters"
	}
	if err := validate.Var(req.Email, "required,email"); err != nil {
		fields["email"] = "a valid email address is required"
	}
	if !phonePattern.MatchString(req.Phone) {
		fields["phone"] = "a valid phone number is required"
	}

	if len(req.Days) == 0 {
		fields["days"] = "at least one booking day is required"
	}

	var earliestBridal *time.Time
	for i, day := range req.Days {
		prefix := fmt.Sprintf("days[%d]", i)

		dayDate, err := time.Parse(dateLayout, day.Date)
		if day.Date == "" {
			fields[prefix+".date"] = "date is required"
		} else if err != nil {
			fields[prefix+".date"] = "date must be in YYYY-MM-DD format"
		}

		if day.ReadyTime == "" {
			fields[prefix+".ready_time"] = "ready time is required"
		} else if _, err := time.Parse(timeLayout, day.ReadyTime); err != nil {
			fields[prefix+".ready_time"] = "ready time must be in HH:MM format"
		}

		svc, known := cat.ServiceByID(day.ServiceID)
		if day.ServiceID == "" {
			fields[prefix+".service_id"] = "a service must be selected"
		} else if !known {
			fields[prefix+".service_id"] = "unknown service"
		}

		if day.Option != "" {
			if !known || !svc.AllowsOption {
				fields[prefix+".option"] = "this service does not offer sub-options"
			} else if _, ok := cat.OptionByID(catalog.ServiceOption(day.Option)); !ok {
				fields[prefix+".option"] = "unknown service option"
			}
		}

		if day.HairExtensions < 0 {
			fields[prefix+".hair_extensions"] = "hair extension count cannot be negative"
		}

		mode := catalog.DeliveryMode(day.DeliveryMode)
		if !mode.IsValid() {
			fields[prefix+".delivery_mode"] = "delivery mode must be studio or mobile"
		} else if mode == catalog.DeliveryMobile {
			if day.TravelLocationID == "" {
				fields[prefix+".travel_location_id"] = "a travel location is required for mobile service"
			} else if _, ok := cat.LocationByID(day.TravelLocationID); !ok {
				fields[prefix+".travel_location_id"] = "unknown travel location"
			}
		}

		if known && svc.ID == catalog.ServiceBridal && err == nil {
			if earliestBridal == nil || dayDate.Before(*earliestBridal) {
				earliestBridal = &dayDate
			}
		}
	}

	if trial := req.BridalTrial; trial != nil && trial.Enabled {
		trialDate, err := time.Parse(dateLayout, trial.Date)
		if trial.Date == "" {
			fields["bridal_trial.date"] = "trial date is required"
		} else if err != nil {
			fields["bridal_trial.date"] = "trial date must be in YYYY-MM-DD format"
		}

		if trial.Time == "" {
			fields["bridal_trial.time"] = "trial time is required"
		} else if _, err := time.Parse(timeLayout, trial.Time); err != nil {
			fields["bridal_trial.time"] = "trial time must be in HH:MM format"
		}

		if err == nil && earliestBridal != nil && !trialDate.Before(*earliestBridal) {
			fields["bridal_trial.date"] = "the trial must be scheduled before the bridal event date"
		}
	}

	if party := req.BridalParty; party != nil && party.Enabled {
		for key, qty := range map[string]int{
			"hair_and_makeup":        party.HairAndMakeup,
			"makeup_only":            party.MakeupOnly,
			"hair_only":              party.HairOnly,
			"dupatta_setting":        party.DupattaSetting,
			"extension_installation": party.ExtensionInstallation,
			"saree_draping":          party.SareeDraping,
			"hijab_setting":          party.HijabSetting,
			"airbrush":               party.Airbrush,
		} {
			if qty < 0 {
				fields["bridal_party."+key] = "quantity cannot be negative"
			}
		}
	}

	return fields
}
