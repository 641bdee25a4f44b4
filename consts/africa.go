package consts

import (
	"fmt"
	"strings"
)

var AfricaISO3 map[string]string

var africaAlias map[string]string

// africaLower maps lowercased canonical names back to the canonical spelling.
var africaLower map[string]string

func init() {
	AfricaISO3 = make(map[string]string)

	AfricaISO3["Algeria"] = "DZA"
	AfricaISO3["Angola"] = "AGO"
	AfricaISO3["Benin"] = "BEN"
	AfricaISO3["Botswana"] = "BWA"
	AfricaISO3["Burkina Faso"] = "BFA"
	AfricaISO3["Burundi"] = "BDI"
	AfricaISO3["Cabo Verde"] = "CPV"
	AfricaISO3["Cameroon"] = "CMR"
	AfricaISO3["Central African Republic"] = "CAF"
	AfricaISO3["Chad"] = "TCD"
	AfricaISO3["Comoros"] = "COM"
	AfricaISO3["Congo"] = "COG"
	AfricaISO3["Cote d'Ivoire"] = "CIV"
	AfricaISO3["Democratic Republic of the Congo"] = "COD"
	AfricaISO3["Djibouti"] = "DJI"
	AfricaISO3["Egypt"] = "EGY"
	AfricaISO3["Equatorial Guinea"] = "GNQ"
	AfricaISO3["Eritrea"] = "ERI"
	AfricaISO3["Eswatini"] = "SWZ"
	AfricaISO3["Ethiopia"] = "ETH"
	AfricaISO3["Gabon"] = "GAB"
	AfricaISO3["Gambia"] = "GMB"
	AfricaISO3["Ghana"] = "GHA"
	AfricaISO3["Guinea"] = "GIN"
	AfricaISO3["Guinea-Bissau"] = "GNB"
	AfricaISO3["Kenya"] = "KEN"
	AfricaISO3["Lesotho"] = "LSO"
	AfricaISO3["Liberia"] = "LBR"
	AfricaISO3["Libya"] = "LBY"
	AfricaISO3["Madagascar"] = "MDG"
	AfricaISO3["Malawi"] = "MWI"
	AfricaISO3["Mali"] = "MLI"
	AfricaISO3["Mauritania"] = "MRT"
	AfricaISO3["Mauritius"] = "MUS"
	AfricaISO3["Morocco"] = "MAR"
	AfricaISO3["Mozambique"] = "MOZ"
	AfricaISO3["Namibia"] = "NAM"
	AfricaISO3["Niger"] = "NER"
	AfricaISO3["Nigeria"] = "NGA"
	AfricaISO3["Rwanda"] = "RWA"
	AfricaISO3["Sao Tome and Principe"] = "STP"
	AfricaISO3["Senegal"] = "SEN"
	AfricaISO3["Seychelles"] = "SYC"
	AfricaISO3["Sierra Leone"] = "SLE"
	AfricaISO3["Somalia"] = "SOM"
	AfricaISO3["South Africa"] = "ZAF"
	AfricaISO3["South Sudan"] = "SSD"
	AfricaISO3["Sudan"] = "SDN"
	AfricaISO3["Tanzania"] = "TZA"
	AfricaISO3["Togo"] = "TGO"
	AfricaISO3["Tunisia"] = "TUN"
	AfricaISO3["Uganda"] = "UGA"
	AfricaISO3["Zambia"] = "ZMB"
	AfricaISO3["Zimbabwe"] = "ZWE"

	africaAlias = make(map[string]string)
	africaAlias["drc"] = "Democratic Republic of the Congo"
	africaAlias["dr congo"] = "Democratic Republic of the Congo"
	africaAlias["democratic republic of congo"] = "Democratic Republic of the Congo"
	africaAlias["congo, dem. rep."] = "Democratic Republic of the Congo"
	africaAlias["congo-kinshasa"] = "Democratic Republic of the Congo"
	africaAlias["republic of the congo"] = "Congo"
	africaAlias["congo-brazzaville"] = "Congo"
	africaAlias["congo, rep."] = "Congo"
	africaAlias["côte d'ivoire"] = "Cote d'Ivoire"
	africaAlias["ivory coast"] = "Cote d'Ivoire"
	africaAlias["cape verde"] = "Cabo Verde"
	africaAlias["swaziland"] = "Eswatini"
	africaAlias["the gambia"] = "Gambia"
	africaAlias["united republic of tanzania"] = "Tanzania"
	africaAlias["são tomé and príncipe"] = "Sao Tome and Principe"
	africaAlias["car"] = "Central African Republic"

	africaLower = make(map[string]string)
	for canonical := range AfricaISO3 {
		africaLower[strings.ToLower(canonical)] = canonical
	}
}

// CountryName resolves a raw sheet spelling into the gazetteer's canonical
// English name. Lookup is case-insensitive and alias-aware.
func CountryName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	key := strings.ToLower(name)
	if canonical, ok := africaAlias[key]; ok {
		return canonical, nil
	}
	if canonical, ok := africaLower[key]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("%s not exist", raw)
}

// CountryISO3 returns the ISO 3166-1 alpha-3 code for a country. Unresolved
// names return an empty code so callers can keep the row in tabular output.
func CountryISO3(raw string) string {
	canonical, err := CountryName(raw)
	if err != nil {
		return ""
	}
	return AfricaISO3[canonical]
}
