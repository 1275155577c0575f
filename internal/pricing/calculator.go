package pricing

import (
	"fmt"

	"glambook/internal/catalog"
)

// ComputeQuote produces one itemized quote for a single tier. It is pure and
// deterministic: same input, same line items in the same order. Days are priced
// in input order with their add-ons nested directly underneath, then the bridal
// trial, then party services in catalog order. Prices are plain float64 sums;
// rounding happens only at display time.
func ComputeQuote(cat *catalog.Catalog, tier catalog.Tier, days []BookingDay, trial BridalTrial, party BridalPartyServices) Quote {
	q := Quote{Tier: tier}

	for i, day := range days {
		svc, ok := cat.ServiceByID(day.ServiceID)
		if !ok {
			// Unknown service ids are a defined skip, not an error. Upstream
			// validation rejects incomplete days before they get here.
			continue
		}

		label := "Standard"
		modifier := 1.0
		if svc.AllowsOption && day.Option != nil && *day.Option != "" {
			if m, found := cat.OptionByID(*day.Option); found {
				modifier = m.For(tier)
				label = m.Label
			}
		}

		q.add(fmt.Sprintf("Day %d: %s (%s)", i+1, svc.Name, label), svc.BasePrice.For(tier)*modifier)

		if day.HairExtensions > 0 {
			q.add(fmt.Sprintf("  - Bride's Hair Extensions (x%d)", day.HairExtensions),
				float64(day.HairExtensions)*cat.HairExtensionUnit.For(tier))
		}
		if day.JewellerySetting {
			q.add("  - Jewellery Setting", cat.JewellerySetting.For(tier))
		}
		// Saree draping and hijab setting apply only to bridal-class services,
		// even if the flags arrive set for something else.
		if catalog.IsBridalService(svc.ID) {
			if day.SareeDraping {
				q.add("  - Saree Draping", cat.SareeDraping.For(tier))
			}
			if day.HijabSetting {
				q.add("  - Hijab Setting", cat.HijabSetting.For(tier))
			}
		}
		if day.DeliveryMode == catalog.DeliveryMobile && day.TravelLocationID != "" {
			if loc, found := cat.LocationByID(day.TravelLocationID); found {
				if surcharge := loc.Surcharge.For(tier); surcharge > 0 {
					q.add(fmt.Sprintf("  - Travel Surcharge (%s)", loc.Label), surcharge)
				}
			}
		}
	}

	if trial.Enabled {
		q.add("Bridal Trial", cat.BridalTrial.For(tier))
	}

	if party.Enabled {
		for _, entry := range partyQuantities(party) {
			if entry.qty <= 0 {
				continue
			}
			if ps, found := cat.PartyServiceByKey(entry.key); found {
				q.add(fmt.Sprintf("Party: %s (x%d)", ps.Label, entry.qty),
					float64(entry.qty)*ps.UnitPrice.For(tier))
			}
		}
	}

	q.Tax = q.Subtotal * cat.GSTRate
	q.Total = q.Subtotal + q.Tax
	return q
}

// ComputeQuotes runs the calculator once per tier over the same input.
func ComputeQuotes(cat *catalog.Catalog, days []BookingDay, trial BridalTrial, party BridalPartyServices) (lead Quote, team Quote) {
	lead = ComputeQuote(cat, catalog.TierLead, days, trial, party)
	team = ComputeQuote(cat, catalog.TierTeam, days, trial, party)
	return lead, team
}

type partyQuantity struct {
	key string
	qty int
}

// partyQuantities flattens the party struct into the fixed line-item order.
func partyQuantities(p BridalPartyServices) []partyQuantity {
	return []partyQuantity{
		{catalog.PartyHairAndMakeup, p.HairAndMakeup},
		{catalog.PartyMakeupOnly, p.MakeupOnly},
		{catalog.PartyHairOnly, p.HairOnly},
		{catalog.PartyDupattaSetting, p.DupattaSetting},
		{catalog.PartyExtensionInstall, p.ExtensionInstallation},
		{catalog.PartySareeDraping, p.SareeDraping},
		{catalog.PartyHijabSetting, p.HijabSetting},
		{catalog.PartyAirbrush, p.Airbrush},
	}
}
