package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLookups(t *testing.T) {
	cat := Default()

	svc, ok := cat.ServiceByID(ServiceBridal)
	require.True(t, ok)
	assert.True(t, svc.AllowsOption)
	assert.Equal(t, 350.0, svc.BasePrice.For(TierLead))
	assert.Equal(t, 250.0, svc.BasePrice.For(TierTeam))

	_, ok = cat.ServiceByID("nope")
	assert.False(t, ok)

	mod, ok := cat.OptionByID(OptionMakeupOnly)
	require.True(t, ok)
	assert.Equal(t, 0.61, mod.For(TierLead))
	assert.Equal(t, 0.65, mod.For(TierTeam))

	// Makeup & hair has no team-specific multiplier, lead value applies to both.
	mod, ok = cat.OptionByID(OptionMakeupAndHair)
	require.True(t, ok)
	assert.Equal(t, mod.For(TierLead), mod.For(TierTeam))
}

func TestPartyServicesOrderIsStable(t *testing.T) {
	cat := Default()
	require.Len(t, cat.PartyServices, 8)
	assert.Equal(t, PartyHairAndMakeup, cat.PartyServices[0].Key)
	assert.Equal(t, PartyAirbrush, cat.PartyServices[7].Key)
}

func TestIsBridalService(t *testing.T) {
	assert.True(t, IsBridalService(ServiceBridal))
	assert.True(t, IsBridalService(ServiceSemiBridal))
	assert.False(t, IsBridalService("glam"))
	assert.False(t, IsBridalService("photoshoot"))
}
