package sharding

import "strings"

// Country - ключ страны из закрытого справочника.
// Хранится в БД как есть (имя ключа, не ISO-код).
type Country string

const (
	// Southeast Asia
	Vietnam     Country = "VIETNAM"
	Thailand    Country = "THAILAND"
	Singapore   Country = "SINGAPORE"
	Malaysia    Country = "MALAYSIA"
	Indonesia   Country = "INDONESIA"
	Philippines Country = "PHILIPPINES"
	Myanmar     Country = "MYANMAR"
	Cambodia    Country = "CAMBODIA"
	Laos        Country = "LAOS"
	Brunei      Country = "BRUNEI"

	// East Asia
	China      Country = "CHINA"
	Japan      Country = "JAPAN"
	SouthKorea Country = "SOUTH_KOREA"
	Taiwan     Country = "TAIWAN"
	HongKong   Country = "HONG_KONG"
	Mongolia   Country = "MONGOLIA"

	// South Asia
	India      Country = "INDIA"
	Pakistan   Country = "PAKISTAN"
	Bangladesh Country = "BANGLADESH"
	SriLanka   Country = "SRI_LANKA"
	Nepal      Country = "NEPAL"

	// Middle East
	UAE         Country = "UAE"
	SaudiArabia Country = "SAUDI_ARABIA"
	Qatar       Country = "QATAR"
	Israel      Country = "ISRAEL"
	Turkey      Country = "TURKEY"
	Egypt       Country = "EGYPT"

	// Europe
	Germany     Country = "GERMANY"
	France      Country = "FRANCE"
	UK          Country = "UK"
	Italy       Country = "ITALY"
	Spain       Country = "SPAIN"
	Netherlands Country = "NETHERLANDS"
	Poland      Country = "POLAND"
	Sweden      Country = "SWEDEN"
	Norway      Country = "NORWAY"
	Finland     Country = "FINLAND"
	Denmark     Country = "DENMARK"
	Switzerland Country = "SWITZERLAND"
	Austria     Country = "AUSTRIA"
	Belgium     Country = "BELGIUM"
	Portugal    Country = "PORTUGAL"
	Czechia     Country = "CZECHIA"
	Ireland     Country = "IRELAND"
	Ukraine     Country = "UKRAINE"
	Romania     Country = "ROMANIA"

	// North America
	USA    Country = "USA"
	Canada Country = "CANADA"
	Mexico Country = "MEXICO"

	// Latin America
	Brazil    Country = "BRAZIL"
	Argentina Country = "ARGENTINA"
	Chile     Country = "CHILE"
	Colombia  Country = "COLOMBIA"
	Peru      Country = "PERU"
	Uruguay   Country = "URUGUAY"

	// Africa
	Nigeria     Country = "NIGERIA"
	SouthAfrica Country = "SOUTH_AFRICA"
	Kenya       Country = "KENYA"
	Ghana       Country = "GHANA"
	Morocco     Country = "MOROCCO"
	Ethiopia    Country = "ETHIOPIA"

	// Oceania
	Australia  Country = "AUSTRALIA"
	NewZealand Country = "NEW_ZEALAND"
	Fiji       Country = "FIJI"
)

type countryInfo struct {
	Code        string
	DisplayName string
}

// countryCatalog - справочник стран: ISO-код и отображаемое имя.
// У каждой страны ровно один канонический код.
var countryCatalog = map[Country]countryInfo{
	Vietnam:     {"VN", "Vietnam"},
	Thailand:    {"TH", "Thailand"},
	Singapore:   {"SG", "Singapore"},
	Malaysia:    {"MY", "Malaysia"},
	Indonesia:   {"ID", "Indonesia"},
	Philippines: {"PH", "Philippines"},
	Myanmar:     {"MM", "Myanmar"},
	Cambodia:    {"KH", "Cambodia"},
	Laos:        {"LA", "Laos"},
	Brunei:      {"BN", "Brunei"},

	China:      {"CN", "China"},
	Japan:      {"JP", "Japan"},
	SouthKorea: {"KR", "South Korea"},
	Taiwan:     {"TW", "Taiwan"},
	HongKong:   {"HK", "Hong Kong"},
	Mongolia:   {"MN", "Mongolia"},

	India:      {"IN", "India"},
	Pakistan:   {"PK", "Pakistan"},
	Bangladesh: {"BD", "Bangladesh"},
	SriLanka:   {"LK", "Sri Lanka"},
	Nepal:      {"NP", "Nepal"},

	UAE:         {"AE", "United Arab Emirates"},
	SaudiArabia: {"SA", "Saudi Arabia"},
	Qatar:       {"QA", "Qatar"},
	Israel:      {"IL", "Israel"},
	Turkey:      {"TR", "Turkey"},
	Egypt:       {"EG", "Egypt"},

	Germany:     {"DE", "Germany"},
	France:      {"FR", "France"},
	UK:          {"GB", "United Kingdom"},
	Italy:       {"IT", "Italy"},
	Spain:       {"ES", "Spain"},
	Netherlands: {"NL", "Netherlands"},
	Poland:      {"PL", "Poland"},
	Sweden:      {"SE", "Sweden"},
	Norway:      {"NO", "Norway"},
	Finland:     {"FI", "Finland"},
	Denmark:     {"DK", "Denmark"},
	Switzerland: {"CH", "Switzerland"},
	Austria:     {"AT", "Austria"},
	Belgium:     {"BE", "Belgium"},
	Portugal:    {"PT", "Portugal"},
	Czechia:     {"CZ", "Czechia"},
	Ireland:     {"IE", "Ireland"},
	Ukraine:     {"UA", "Ukraine"},
	Romania:     {"RO", "Romania"},

	USA:    {"US", "United States"},
	Canada: {"CA", "Canada"},
	Mexico: {"MX", "Mexico"},

	Brazil:    {"BR", "Brazil"},
	Argentina: {"AR", "Argentina"},
	Chile:     {"CL", "Chile"},
	Colombia:  {"CO", "Colombia"},
	Peru:      {"PE", "Peru"},
	Uruguay:   {"UY", "Uruguay"},

	Nigeria:     {"NG", "Nigeria"},
	SouthAfrica: {"ZA", "South Africa"},
	Kenya:       {"KE", "Kenya"},
	Ghana:       {"GH", "Ghana"},
	Morocco:     {"MA", "Morocco"},
	Ethiopia:    {"ET", "Ethiopia"},

	Australia:  {"AU", "Australia"},
	NewZealand: {"NZ", "New Zealand"},
	Fiji:       {"FJ", "Fiji"},
}

// countryByCode - обратный индекс ISO-код -> страна (ключи в верхнем регистре)
var countryByCode = make(map[string]Country, len(countryCatalog))

func init() {
	for c, info := range countryCatalog {
		countryByCode[info.Code] = c
	}
}

// Valid сообщает, есть ли страна в справочнике
func (c Country) Valid() bool {
	_, ok := countryCatalog[c]
	return ok
}

// Code возвращает канонический ISO-код страны ("" для неизвестной)
func (c Country) Code() string {
	return countryCatalog[c].Code
}

// DisplayName возвращает отображаемое имя страны ("" для неизвестной)
func (c Country) DisplayName() string {
	return countryCatalog[c].DisplayName
}

// ParseCountry разбирает строку как ISO-код или как имя ключа справочника.
// Регистр не важен, пробелы по краям игнорируются. Неизвестный ввод - ok=false,
// ошибок и паник здесь не бывает.
func ParseCountry(s string) (Country, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if normalized == "" {
		return "", false
	}
	if c, ok := countryByCode[normalized]; ok {
		return c, true
	}
	if c := Country(normalized); c.Valid() {
		return c, true
	}
	return "", false
}

// AllCountries возвращает все страны справочника (порядок не гарантируется)
func AllCountries() []Country {
	countries := make([]Country, 0, len(countryCatalog))
	for c := range countryCatalog {
		countries = append(countries, c)
	}
	return countries
}
