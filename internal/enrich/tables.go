package enrich

// DefaultRoster is the 2024 F1 grid, in championship order. Reserve and
// mid-season replacement drivers come last so full-season drivers win
// ambiguous matches.
var DefaultRoster = []string{
	"Max Verstappen",
	"Lando Norris",
	"Charles Leclerc",
	"Oscar Piastri",
	"Carlos Sainz",
	"George Russell",
	"Lewis Hamilton",
	"Sergio Perez",
	"Fernando Alonso",
	"Pierre Gasly",
	"Nico Hulkenberg",
	"Yuki Tsunoda",
	"Lance Stroll",
	"Esteban Ocon",
	"Kevin Magnussen",
	"Alex Albon",
	"Daniel Ricciardo",
	"Valtteri Bottas",
	"Guanyu Zhou",
	"Logan Sargeant",
	"Oliver Bearman",
	"Franco Colapinto",
	"Liam Lawson",
	"Jack Doohan",
}

// DefaultLexicon maps 2024 race-name keywords to region labels, in calendar
// order. Keywords follow the official race names used in highlight titles
// ("Belgian Grand Prix", not "Spa") to avoid substring collisions such as
// spa/spain.
var DefaultLexicon = []RegionEntry{
	{Keyword: "Bahrain", Region: "Bahrein (Sakhir)"},
	{Keyword: "Saudi Arabian", Region: "Arábia Saudita (Jeddah)"},
	{Keyword: "Australian", Region: "Austrália (Melbourne)"},
	{Keyword: "Japanese", Region: "Japão (Suzuka)"},
	{Keyword: "Chinese", Region: "China (Xangai)"},
	{Keyword: "Miami", Region: "EUA (Miami)"},
	{Keyword: "Emilia Romagna", Region: "Itália (Ímola)"},
	{Keyword: "Monaco", Region: "Mônaco (Monte Carlo)"},
	{Keyword: "Canadian", Region: "Canadá (Montreal)"},
	{Keyword: "Spanish", Region: "Espanha (Barcelona)"},
	{Keyword: "Austrian", Region: "Áustria (Spielberg)"},
	{Keyword: "British", Region: "Reino Unido (Silverstone)"},
	{Keyword: "Hungarian", Region: "Hungria (Budapeste)"},
	{Keyword: "Belgian", Region: "Bélgica (Spa-Francorchamps)"},
	{Keyword: "Dutch", Region: "Holanda (Zandvoort)"},
	{Keyword: "Italian", Region: "Itália (Monza)"},
	{Keyword: "Azerbaijan", Region: "Azerbaijão (Baku)"},
	{Keyword: "Singapore", Region: "Singapura (Marina Bay)"},
	{Keyword: "United States", Region: "EUA (Austin)"},
	{Keyword: "Mexico City", Region: "México (Cidade do México)"},
	{Keyword: "Sao Paulo", Region: "Brasil (São Paulo)"},
	{Keyword: "Las Vegas", Region: "EUA (Las Vegas)"},
	{Keyword: "Qatar", Region: "Catar (Losail)"},
	{Keyword: "Abu Dhabi", Region: "Abu Dhabi (Yas Marina)"},
}

// DefaultExtractor returns an Extractor over the built-in 2024 tables.
func DefaultExtractor() *Extractor {
	return NewExtractor(DefaultRoster, DefaultLexicon)
}
