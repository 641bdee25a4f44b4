package epi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openepi/mpox-analytics-api/schema"
)

func TestDenseRanks(t *testing.T) {
	cases := []struct {
		name   string
		sorted []*float64
		want   []int
	}{
		{"distinct", []*float64{ptr(30), ptr(20), ptr(10)}, []int{1, 2, 3}},
		{"ties share rank", []*float64{ptr(30), ptr(30), ptr(10)}, []int{1, 1, 2}},
		{"ties at display precision", []*float64{ptr(10.001), ptr(10.004), ptr(9)}, []int{1, 1, 2}},
		{"nil block last", []*float64{ptr(5), nil, nil}, []int{1, 2, 2}},
		{"all nil", []*float64{nil, nil}, []int{1, 1}},
		{"empty", nil, nil},
	}
	for _, c := range cases {
		got := DenseRanks(c.sorted)
		if len(c.want) == 0 {
			assert.Empty(t, got, c.name)
			continue
		}
		assert.Equal(t, c.want, got, c.name)
	}
}

func TestOrderUndefinedLast(t *testing.T) {
	keys := []*float64{nil, ptr(2), ptr(9), nil, ptr(5)}
	key := func(i int) *float64 { return keys[i] }

	desc := Order(len(keys), key, true)
	assert.Equal(t, []int{2, 4, 1, 0, 3}, desc)

	asc := Order(len(keys), key, false)
	assert.Equal(t, []int{1, 4, 2, 0, 3}, asc, "nil keys stay last even ascending")
}

func TestRankCountries(t *testing.T) {
	sums := []schema.CountrySummary{
		{Country: "A", ConfirmedCases: ptr(10)},
		{Country: "B", ConfirmedCases: ptr(30)},
		{Country: "C", ConfirmedCases: ptr(30)},
		{Country: "D", ConfirmedCases: nil},
	}
	key, ok := CountrySortKey("confirmed_cases")
	assert.True(t, ok)

	ranked := RankCountries(sums, key, true, 0)
	assert.Equal(t, "B", ranked[0].Country)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "C", ranked[1].Country)
	assert.Equal(t, 1, ranked[1].Rank, "equal keys share a dense rank")
	assert.Equal(t, "A", ranked[2].Country)
	assert.Equal(t, 2, ranked[2].Rank)
	assert.Equal(t, "D", ranked[3].Country, "undefined key placed last")
	assert.Equal(t, 3, ranked[3].Rank)

	top2 := RankCountries(sums, key, true, 2)
	assert.Len(t, top2, 2)
	assert.Equal(t, "B", top2[0].Country)
}

func TestCountrySortKeyUnknown(t *testing.T) {
	_, ok := CountrySortKey("nope")
	assert.False(t, ok)
}

func TestRankCountryClades(t *testing.T) {
	pairs := []schema.CountryCladeSummary{
		{Country: "A", Clade: "Ia", CFRPct: ptr(2)},
		{Country: "B", Clade: "IIb", CFRPct: ptr(8)},
		{Country: "C", Clade: "Ia", CFRPct: nil},
	}
	top := RankCountryClades(pairs, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Country)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, "A", top[1].Country)
	assert.Equal(t, 2, top[1].Rank)
}
