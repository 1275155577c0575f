package bookings

import (
	"testing"

	"glambook/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func validRequest() *SubmitQuoteRequest {
	return &SubmitQuoteRequest{
		Name:  "Priya Sharma",
		Email: "priya@example.com",
		Phone: "+1-416-555-0134",
		Days: []BookingDayRequest{{
			Date:         "2026-10-10",
			ReadyTime:    "09:00",
			ServiceID:    catalog.ServiceBridal,
			Option:       string(catalog.OptionMakeupAndHair),
			DeliveryMode: "studio",
		}},
	}
}

func TestValidateSubmitRequestAccepts(t *testing.T) {
	cat := catalog.Default()
	fields := ValidateSubmitRequest(cat, validRequest())
	assert.Empty(t, fields)
}

func TestValidateSubmitRequestContactFields(t *testing.T) {
	cat := catalog.Default()

	req := validRequest()
	req.Name = "A"
	req.Email = "not-an-email"
	req.Phone = "abc"

	fields := ValidateSubmitRequest(cat, req)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
}

func TestValidateSubmitRequestRequiresDays(t *testing.T) {
	cat := catalog.Default()

	req := validRequest()
	req.Days = nil

	fields := ValidateSubmitRequest(cat, req)
	assert.Contains(t, fields, "days")
}

func TestValidateSubmitRequestDayFields(t *testing.T) {
	cat := catalog.Default()

	req := validRequest()
	req.Days = []BookingDayRequest{{
		Date:           "10/10/2026",
		ReadyTime:      "9am",
		ServiceID:      "nonexistent",
		HairExtensions: -1,
		DeliveryMode:   "teleport",
	}}

	fields := ValidateSubmitRequest(cat, req)
	assert.Equal(t, "date must be in YYYY-MM-DD format", fields["days[0].date"])
	assert.Equal(t, "ready time must be in HH:MM format", fields["days[0].ready_time"])
	assert.Equal(t, "unknown service", fields["days[0].service_id"])
	assert.Contains(t, fields, "days[0].hair_extensions")
	assert.Contains(t, fields, "days[0].delivery_mode")
}

func TestValidateSubmitRequestOptionOnNonOptionService(t *testing.T) {
	cat := catalog.Default()

	req := validRequest()
	req.Days[0].ServiceID = "photoshoot"
	req.Days[0].Option = string(catalog.OptionMakeupOnly)

	fields := ValidateSubmitRequest(cat, req)
	assert.Equal(t, "this service does not offer sub-options", fields["days[0].option"])
}

func TestValidateSubmitRequestMobileNeedsLocation(t *testing.T) {
	cat := catalog.Default()

	req := validRequest()
	req.Days[0].DeliveryMode = "mobile"
	req.Days[0].TravelLocationID = ""

	fields := ValidateSubmitRequest(cat, req)
	assert.Equal(t, "a travel location is required for mobile service", fields["days[0].travel_location_id"])

	req.Days[0].TravelLocationID = "mars"
	fields = ValidateSubmitRequest(cat, req)
	assert.Equal(t, "unknown travel location", fields["days[0].travel_location_id"])

	req.Days[0].TravelLocationID = "gta"
	fields = ValidateSubmitRequest(cat, req)
	assert.Empty(t, fields)
}

func TestValidateSubmitRequestTrialMustPrecedeBridalDay(t *testing.T) {
	cat := catalog.Default()

	req := validRequest()
	req.BridalTrial = &BridalTrialRequest{Enabled: true, Date: "2026-10-10", Time: "14:00"}

	fields := ValidateSubmitRequest(cat, req)
	assert.Equal(t, "the trial must be scheduled before the bridal event date", fields["bridal_trial.date"])

	req.BridalTrial.Date = "2026-09-26"
	fields = ValidateSubmitRequest(cat, req)
	assert.Empty(t, fields)
}

func TestValidateSubmitRequestTrialDisabledSkipsChecks(t *testing.T) {
	cat := catalog.Default()

	req := validRequest()
	req.BridalTrial = &BridalTrialRequest{Enabled: false}

	fields := ValidateSubmitRequest(cat, req)
	assert.Empty(t, fields)
}

func TestValidateSubmitRequestNegativePartyQuantities(t *testing.T) {
	cat := catalog.Default()

	req := validRequest()
	req.BridalParty = &BridalPartyRequest{
		Enabled:    true,
		MakeupOnly: -2,
		Airbrush:   1,
	}

	fields := ValidateSubmitRequest(cat, req)
	assert.Equal(t, "quantity cannot be negative", fields["bridal_party.makeup_only"])
	assert.NotContains(t, fields, "bridal_party.airbrush")
}
