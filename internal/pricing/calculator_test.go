package pricing

import (
	"testing"

	"glambook/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opt(o catalog.ServiceOption) *catalog.ServiceOption { return &o }

func sumLineItems(q Quote) float64 {
	var sum float64
	for _, li := range q.LineItems {
		sum += li.Price
	}
	return sum
}

func TestComputeQuoteBridalMakeupOnlyExample(t *testing.T) {
	cat := catalog.Default()
	days := []BookingDay{{
		Date:           "2026-10-10",
		ReadyTime:      "09:00",
		ServiceID:      catalog.ServiceBridal,
		Option:         opt(catalog.OptionMakeupOnly),
		HairExtensions: 2,
	}}

	q := ComputeQuote(cat, catalog.TierLead, days, BridalTrial{}, BridalPartyServices{})

	require.Len(t, q.LineItems, 2)
	assert.Equal(t, "Day 1: Bridal (Makeup Only)", q.LineItems[0].Description)
	assert.InDelta(t, 213.5, q.LineItems[0].Price, 1e-9) // 350 * 0.61
	assert.Equal(t, "  - Bride's Hair Extensions (x2)", q.LineItems[1].Description)
	assert.InDelta(t, 40.0, q.LineItems[1].Price, 1e-9)
	assert.InDelta(t, 253.5, q.Subtotal, 1e-9)
	assert.InDelta(t, 32.955, q.Tax, 1e-9)
	assert.InDelta(t, 286.455, q.Total, 1e-9)
}

func TestComputeQuoteSubtotalEqualsLineItemSum(t *testing.T) {
	cat := catalog.Default()
	days := []BookingDay{
		{
			Date:             "2026-10-10",
			ServiceID:        catalog.ServiceBridal,
			Option:           opt(catalog.OptionMakeupAndHair),
			HairExtensions:   3,
			JewellerySetting: true,
			SareeDraping:     true,
			DeliveryMode:     catalog.DeliveryMobile,
			TravelLocationID: "gta",
		},
		{
			Date:      "2026-10-11",
			ServiceID: "glam",
			Option:    opt(catalog.OptionHairOnly),
		},
	}
	trial := BridalTrial{Enabled: true, Date: "2026-10-01", Time: "10:00"}
	party := BridalPartyServices{Enabled: true, HairAndMakeup: 2, Airbrush: 1}

	for _, tier := range []catalog.Tier{catalog.TierLead, catalog.TierTeam} {
		q := ComputeQuote(cat, tier, days, trial, party)
		assert.Equal(t, sumLineItems(q), q.Subtotal, "tier %s", tier)
		assert.Equal(t, q.Subtotal*cat.GSTRate, q.Tax, "tier %s", tier)
		assert.Equal(t, q.Subtotal+q.Tax, q.Total, "tier %s", tier)
	}
}

func TestComputeQuoteSareeHijabOnlyForBridalServices(t *testing.T) {
	cat := catalog.Default()
	day := BookingDay{
		Date:         "2026-10-10",
		ServiceID:    "glam",
		SareeDraping: true,
		HijabSetting: true,
	}

	q := ComputeQuote(cat, catalog.TierLead, []BookingDay{day}, BridalTrial{}, BridalPartyServices{})
	require.Len(t, q.LineItems, 1, "flags must be ignored for non-bridal services")

	day.ServiceID = catalog.ServiceSemiBridal
	q = ComputeQuote(cat, catalog.TierLead, []BookingDay{day}, BridalTrial{}, BridalPartyServices{})
	require.Len(t, q.LineItems, 3)
	assert.Equal(t, "  - Saree Draping", q.LineItems[1].Description)
	assert.Equal(t, "  - Hijab Setting", q.LineItems[2].Description)
}

func TestComputeQuoteDisabledSectionsContributeNothing(t *testing.T) {
	cat := catalog.Default()
	days := []BookingDay{{Date: "2026-10-10", ServiceID: catalog.ServiceBridal}}

	base := ComputeQuote(cat, catalog.TierTeam, days, BridalTrial{}, BridalPartyServices{})
	withZeroParty := ComputeQuote(cat, catalog.TierTeam, days,
		BridalTrial{Enabled: false, Date: "2026-10-01", Time: "10:00"},
		BridalPartyServices{Enabled: true})

	// Enabled party with all-zero quantities still yields no party lines.
	assert.Equal(t, base.LineItems, withZeroParty.LineItems)
	assert.Equal(t, base.Subtotal, withZeroParty.Subtotal)
}

func TestComputeQuoteTierIndependence(t *testing.T) {
	cat := catalog.Default()
	days := []BookingDay{
		{
			Date:             "2026-10-10",
			ServiceID:        catalog.ServiceBridal,
			Option:           opt(catalog.OptionMakeupOnly),
			HairExtensions:   1,
			JewellerySetting: true,
			DeliveryMode:     catalog.DeliveryMobile,
			TravelLocationID: "outside-gta",
		},
	}
	trial := BridalTrial{Enabled: true}
	party := BridalPartyServices{Enabled: true, MakeupOnly: 3, HijabSetting: 1}

	lead, team := ComputeQuotes(cat, days, trial, party)

	require.Equal(t, len(lead.LineItems), len(team.LineItems))
	for i := range lead.LineItems {
		assert.Equal(t, lead.LineItems[i].Description, team.LineItems[i].Description)
	}
	// Team modifier for makeup-only differs from lead, so the day line diverges.
	assert.InDelta(t, 350*0.61, lead.LineItems[0].Price, 1e-9)
	assert.InDelta(t, 250*0.65, team.LineItems[0].Price, 1e-9)
}

func TestComputeQuoteTravelSurcharge(t *testing.T) {
	cat := catalog.Default()

	day := BookingDay{
		Date:             "2026-10-10",
		ServiceID:        "glam",
		DeliveryMode:     catalog.DeliveryMobile,
		TravelLocationID: "toronto",
	}
	q := ComputeQuote(cat, catalog.TierLead, []BookingDay{day}, BridalTrial{}, BridalPartyServices{})
	require.Len(t, q.LineItems, 1, "zero surcharge must not produce a line item")

	day.TravelLocationID = "gta"
	q = ComputeQuote(cat, catalog.TierLead, []BookingDay{day}, BridalTrial{}, BridalPartyServices{})
	require.Len(t, q.LineItems, 2)
	assert.Equal(t, "  - Travel Surcharge (Greater Toronto Area)", q.LineItems[1].Description)
	assert.InDelta(t, 50.0, q.LineItems[1].Price, 1e-9)

	// Studio days never get a surcharge, even with a location set.
	day.DeliveryMode = catalog.DeliveryStudio
	q = ComputeQuote(cat, catalog.TierLead, []BookingDay{day}, BridalTrial{}, BridalPartyServices{})
	require.Len(t, q.LineItems, 1)
}

func TestComputeQuoteUnknownServiceSkipped(t *testing.T) {
	cat := catalog.Default()
	days := []BookingDay{
		{Date: "2026-10-10", ServiceID: "does-not-exist", HairExtensions: 5},
		{Date: "2026-10-11", ServiceID: "photoshoot", Option: opt(catalog.OptionMakeupOnly)},
	}

	q := ComputeQuote(cat, catalog.TierLead, days, BridalTrial{}, BridalPartyServices{})

	// The unknown day contributes nothing at all, add-ons included. The
	// photoshoot service does not allow options, so full base price applies
	// and the label stays Standard.
	require.Len(t, q.LineItems, 1)
	assert.Equal(t, "Day 2: Photoshoot (Standard)", q.LineItems[0].Description)
	assert.InDelta(t, 250.0, q.LineItems[0].Price, 1e-9)
}

func TestComputeQuotePartyLinesInFixedOrder(t *testing.T) {
	cat := catalog.Default()
	party := BridalPartyServices{
		Enabled:               true,
		Airbrush:              2,
		HairAndMakeup:         1,
		ExtensionInstallation: 4,
	}

	q := ComputeQuote(cat, catalog.TierTeam,
		[]BookingDay{{Date: "2026-10-10", ServiceID: "glam"}}, BridalTrial{}, party)

	require.Len(t, q.LineItems, 4)
	assert.Equal(t, "Party: Hair & Makeup (x1)", q.LineItems[1].Description)
	assert.InDelta(t, 95.0, q.LineItems[1].Price, 1e-9)
	assert.Equal(t, "Party: Extension Installation (x4)", q.LineItems[2].Description)
	assert.InDelta(t, 60.0, q.LineItems[2].Price, 1e-9)
	assert.Equal(t, "Party: Airbrush (x2)", q.LineItems[3].Description)
	assert.InDelta(t, 80.0, q.LineItems[3].Price, 1e-9)
}

func TestComputeQuoteDeterministic(t *testing.T) {
	cat := catalog.Default()
	days := []BookingDay{
		{Date: "2026-10-10", ServiceID: catalog.ServiceBridal, Option: opt(catalog.OptionMakeupAndHair), HairExtensions: 2, JewellerySetting: true},
		{Date: "2026-10-11", ServiceID: "glam"},
	}
	trial := BridalTrial{Enabled: true, Date: "2026-10-01", Time: "11:00"}
	party := BridalPartyServices{Enabled: true, HairOnly: 2, DupattaSetting: 1, SareeDraping: 1}

	first := ComputeQuote(cat, catalog.TierLead, days, trial, party)
	second := ComputeQuote(cat, catalog.TierLead, days, trial, party)

	assert.Equal(t, first, second)
}
