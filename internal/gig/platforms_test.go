package gig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantKey   string
		wantFound bool
	}{
		{name: "uber", text: "Made $250 driving for Uber this weekend", wantKey: "uber", wantFound: true},
		{name: "uber eats maps to uber", text: "UberEats delivery earnings", wantKey: "uber", wantFound: true},
		{name: "doordash spaced", text: "door dash payout deposited", wantKey: "doordash", wantFound: true},
		{name: "etsy", text: "Etsy shop sales for March", wantKey: "etsy", wantFound: true},
		{name: "airbnb spaced", text: "air bnb host payment", wantKey: "airbnb", wantFound: true},
		{name: "no platform", text: "sold crafts at the farmers market", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform, found := Detect(tt.text)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantKey, platform.Key)
			}
		})
	}
}

func TestPlatformMetadata(t *testing.T) {
	platform, found := Detect("lyft earnings")
	require.True(t, found)
	assert.Equal(t, "1099-K", platform.TaxForm)
	assert.Equal(t, "rideshare", platform.Category)
	assert.True(t, platform.IsDriver)

	platform, found = Detect("upwork contract payment")
	require.True(t, found)
	assert.Equal(t, "1099-NEC", platform.TaxForm)
	assert.False(t, platform.IsDriver)
}

func TestIsIncome(t *testing.T) {
	assert.True(t, IsIncome("Made $500 on DoorDash"))
	assert.True(t, IsIncome("client paid me for the logo"))
	assert.True(t, IsIncome("tips collected at the bar"))
	assert.False(t, IsIncome("bought new tires for deliveries"))
}

func TestNetEarnings(t *testing.T) {
	uber, found := Detect("uber")
	require.True(t, found)

	assert.InDelta(t, 750.0, uber.NetEarnings(1000), 0.001)
	assert.Zero(t, uber.NetEarnings(0))
	assert.Zero(t, uber.NetEarnings(-50))
}

func TestMileage(t *testing.T) {
	assert.InDelta(t, 0.67, MileageRate(2024), 0.001)
	assert.InDelta(t, 0.70, MileageRate(2025), 0.001)
	// Years outside the table use the latest known rate.
	assert.InDelta(t, 0.70, MileageRate(2030), 0.001)

	assert.InDelta(t, 670.0, MileageDeduction(1000, 2024), 0.001)
	assert.Zero(t, MileageDeduction(-10, 2024))
}
