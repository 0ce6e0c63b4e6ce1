// Package teams provides the team registry: a built-in reference list,
// an optional Postgres-backed store, and fuzzy name resolution.
package teams

// Team is one registry entry. Rating is the historical strength and is
// nil for teams without enough match history; the prediction engine
// substitutes a bounded default for those.
type Team struct {
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
}

func rated(v float64) *float64 { return &v }

// Builtin is the static fallback list served when no database is
// configured or the store is unreachable. Ratings follow the observed
// 7.0-9.5 range; unrated entries go through the engine's default
// rating provider.
func Builtin() []Team {
	return []Team{
		{Name: "Man City", Abbreviation: "MCI", Rating: rated(9.5)},
		{Name: "Real Madrid", Abbreviation: "RMA", Rating: rated(9.4)},
		{Name: "Bayern Munich", Abbreviation: "BAY", Rating: rated(9.3)},
		{Name: "Liverpool", Abbreviation: "LIV", Rating: rated(9.2)},
		{Name: "Barcelona", Abbreviation: "BAR", Rating: rated(9.1)},
		{Name: "Arsenal", Abbreviation: "ARS", Rating: rated(9.0)},
		{Name: "PSG", Abbreviation: "PSG", Rating: rated(8.9)},
		{Name: "Inter", Abbreviation: "INT", Rating: rated(8.7)},
		{Name: "Chelsea", Abbreviation: "CHE", Rating: rated(8.5)},
		{Name: "Atletico Madrid", Abbreviation: "ATM", Rating: rated(8.4)},
		{Name: "Man United", Abbreviation: "MUN", Rating: rated(8.4)},
		{Name: "Juventus", Abbreviation: "JUV", Rating: rated(8.3)},
		{Name: "Napoli", Abbreviation: "NAP", Rating: rated(8.3)},
		{Name: "Dortmund", Abbreviation: "DOR", Rating: rated(8.2)},
		{Name: "Tottenham", Abbreviation: "TOT", Rating: rated(8.2)},
		{Name: "AC Milan", Abbreviation: "MIL", Rating: rated(8.1)},
		{Name: "Newcastle", Abbreviation: "NEW", Rating: rated(8.0)},
		{Name: "Aston Villa", Abbreviation: "AVL", Rating: rated(7.8)},
		{Name: "Roma", Abbreviation: "ROM", Rating: rated(7.7)},
		{Name: "Leverkusen", Abbreviation: "LEV", Rating: rated(7.6)},
		{Name: "Sevilla", Abbreviation: "SEV", Rating: rated(7.4)},
		{Name: "West Ham", Abbreviation: "WHU", Rating: rated(7.3)},
		{Name: "Everton", Abbreviation: "EVE", Rating: rated(7.1)},
		{Name: "Burnley", Abbreviation: "BUR"},
		{Name: "Luton Town", Abbreviation: "LUT"},
		{Name: "Sheffield United", Abbreviation: "SHU"},
	}
}

// Names returns just the team names, in registry order.
func Names(list []Team) []string {
	names := make([]string, len(list))
	for i, t := range list {
		names[i] = t.Name
	}
	return names
}
