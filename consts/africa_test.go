package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openepi/mpox-analytics-api/consts"
)

func TestCountryName(t *testing.T) {
	mapping := map[string]string{
		"Nigeria":                          "Nigeria",
		"nigeria":                          "Nigeria",
		"SOUTH africa":                     "South Africa",
		" Uganda ":                         "Uganda",
		"DRC":                              "Democratic Republic of the Congo",
		"DR Congo":                         "Democratic Republic of the Congo",
		"Democratic Republic of the Congo": "Democratic Republic of the Congo",
		"Congo-Brazzaville":                "Congo",
		"Ivory Coast":                      "Cote d'Ivoire",
		"Côte d'Ivoire":                    "Cote d'Ivoire",
		"Cape Verde":                       "Cabo Verde",
		"Swaziland":                        "Eswatini",
		"United Republic of Tanzania":      "Tanzania",
	}

	for raw, expected := range mapping {
		actual, err := consts.CountryName(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, expected, actual, "wrong canonical name")
	}

	_, err := consts.CountryName("Atlantis")
	assert.Error(t, err)
}

func TestCountryISO3(t *testing.T) {
	mapping := map[string]string{
		"Nigeria":      "NGA",
		"drc":          "COD",
		"Burkina Faso": "BFA",
		"ivory coast":  "CIV",
		"Atlantis":     "",
	}

	for raw, expected := range mapping {
		assert.Equal(t, expected, consts.CountryISO3(raw), raw)
	}
}
