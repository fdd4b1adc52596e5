package catalog

// Static reference data served by the institution and credit-score resources.
// This is not fetched from the backend; it is the platform's own directory.

// Institution is one bank or insurer operating in Uruguay.
type Institution struct {
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Type     string `json:"type"`
}

// Institutions groups banks, insurers, and payment networks.
type Institutions struct {
	Banks    []Institution `json:"banks"`
	Insurers []Institution `json:"insurers"`
	Networks []string      `json:"networks"`
}

// CreditScoreRange is one band of the 300-850 credit score scale.
type CreditScoreRange struct {
	Min    int    `json:"min"`
	Max    int    `json:"max"`
	Rating string `json:"rating"`
	Color  string `json:"color"`
}

// UruguayanInstitutions lists the financial institutions covered by the
// catalog.
var UruguayanInstitutions = Institutions{
	Banks: []Institution{
		{Name: "BROU", FullName: "Banco República Oriental del Uruguay", Type: "public"},
		{Name: "Santander", FullName: "Santander Uruguay", Type: "private"},
		{Name: "Itaú", FullName: "Itaú Uruguay", Type: "private"},
		{Name: "Scotiabank", FullName: "Scotiabank Uruguay", Type: "private"},
		{Name: "BBVA", FullName: "BBVA Uruguay", Type: "private"},
	},
	Insurers: []Institution{
		{Name: "BSE", FullName: "Banco de Seguros del Estado", Type: "public"},
		{Name: "Sura", FullName: "Sura Uruguay", Type: "private"},
		{Name: "Mapfre", FullName: "Mapfre Uruguay", Type: "private"},
	},
	Networks: []string{"OCA", "Visa", "Mastercard"},
}

// CreditScoreRanges maps score bands to their classification.
var CreditScoreRanges = []CreditScoreRange{
	{Min: 800, Max: 850, Rating: "Excelente", Color: "green"},
	{Min: 740, Max: 799, Rating: "Muy Bueno", Color: "lightgreen"},
	{Min: 670, Max: 739, Rating: "Bueno", Color: "yellow"},
	{Min: 580, Max: 669, Rating: "Regular", Color: "orange"},
	{Min: 300, Max: 579, Rating: "Malo", Color: "red"},
}
