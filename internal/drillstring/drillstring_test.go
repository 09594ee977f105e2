package drillstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testString() *String {
	return &String{Sections: []Section{
		{Ordinal: 0, Label: "8in DC", OD: 8.0, ID: 2.8125, LinearWeight: 147.0, Length: 280},
		{Ordinal: 1, Label: "5in HWDP", OD: 5.0, ID: 3.0, LinearWeight: 49.3, Length: 400},
		{Ordinal: 2, Label: "5in DP", OD: 5.0, ID: 4.276, LinearWeight: 19.5, Length: 6320},
	}}
}

func TestStringValidate(t *testing.T) {
	t.Run("should accept a well-formed string", func(t *testing.T) {
		assert.NoError(t, testString().Validate())
	})

	t.Run("should reject empty string", func(t *testing.T) {
		s := &String{}
		assert.Error(t, s.Validate())
	})

	t.Run("should reject non-contiguous ordinals", func(t *testing.T) {
		s := testString()
		s.Sections[1].Ordinal = 5
		assert.Error(t, s.Validate())
	})

	t.Run("should reject ID >= OD", func(t *testing.T) {
		s := testString()
		s.Sections[0].ID = 9.0
		assert.Error(t, s.Validate())
	})
}

func TestSectionAt(t *testing.T) {
	s := testString()

	t.Run("should find collars at the bit", func(t *testing.T) {
		assert.Equal(t, "8in DC", s.SectionAt(0).Label)
		assert.Equal(t, "8in DC", s.SectionAt(280).Label)
	})

	t.Run("should cross boundaries in order", func(t *testing.T) {
		assert.Equal(t, "5in HWDP", s.SectionAt(281).Label)
		assert.Equal(t, "5in DP", s.SectionAt(1000).Label)
	})

	t.Run("should clamp beyond string top", func(t *testing.T) {
		assert.Equal(t, "5in DP", s.SectionAt(1e9).Label)
	})
}

func TestStringTotals(t *testing.T) {
	s := testString()
	assert.InDelta(t, 7000.0, s.TotalLength(), 1e-9)
	assert.InDelta(t, 280*147.0+400*49.3+6320*19.5, s.AirWeight(), 1e-6)
}

func TestBuoyancyFactor(t *testing.T) {
	t.Run("should lie in (0,1) for field mud weights", func(t *testing.T) {
		for _, mw := range []float64{8.33, 10, 12, 16, 19} {
			bf := BuoyancyFactor(mw)
			assert.Greater(t, bf, 0.0, "MW %.2f", mw)
			assert.Less(t, bf, 1.0, "MW %.2f", mw)
		}
	})

	t.Run("should clamp at steel density", func(t *testing.T) {
		assert.Zero(t, BuoyancyFactor(70))
	})

	t.Run("should match the 10 ppg handbook value", func(t *testing.T) {
		assert.InDelta(t, 0.8473, BuoyancyFactor(10), 1e-4)
	})
}

func TestCasingID(t *testing.T) {
	id, ok := CasingID(9.625)
	require.True(t, ok)
	assert.InDelta(t, 8.835, id, 1e-9)

	_, ok = CasingID(6.125)
	assert.False(t, ok)
}
