package score

import "github.com/abelbrown/vantage/internal/match"

// Relevance keyword tiers. Every matching keyword contributes its tier
// weight; the summed score is clamped to 10.
var (
	highImpactKeywords = []string{
		"war", "invasion", "missile", "nuclear", "sanctions", "embargo",
		"blockade", "coup", "airstrike", "mobilization", "ceasefire",
		"oil supply", "opec", "pipeline", "strait of hormuz", "taiwan strait",
		"rate hike", "rate cut", "default", "currency crisis", "tariff",
		"export controls", "chip ban", "energy crisis",
	}
	mediumImpactKeywords = []string{
		"military", "troops", "border", "protest", "election", "inflation",
		"recession", "supply chain", "semiconductor", "wheat", "gas prices",
		"central bank", "diplomacy", "summit", "treaty", "refinery",
		"shipping", "drone", "cyberattack", "grid",
	}
	lowImpactKeywords = []string{
		"minister", "parliament", "trade", "economy", "agreement", "talks",
		"defense", "energy", "exports", "imports", "currency", "commodity",
		"security", "alliance",
	}
)

type weightedTier struct {
	keywords []string
	weight   float64
}

var relevanceTiers = []weightedTier{
	{highImpactKeywords, 3.0},
	{mediumImpactKeywords, 1.5},
	{lowImpactKeywords, 0.5},
}

// regionAlias maps a canonical region key to the name/alias substrings that
// detect it. Scanned in declaration order so detected-region output is
// deterministic for identical text.
type regionAlias struct {
	key     string
	aliases []string
}

var regionAliases = []regionAlias{
	{"united_states", []string{"united states", "u.s.", "washington", "pentagon", "white house"}},
	{"china", []string{"china", "chinese", "beijing"}},
	{"russia", []string{"russia", "russian", "moscow", "kremlin"}},
	{"ukraine", []string{"ukraine", "ukrainian", "kyiv"}},
	{"taiwan", []string{"taiwan", "taipei"}},
	{"israel", []string{"israel", "israeli", "jerusalem", "tel aviv"}},
	{"iran", []string{"iran", "iranian", "tehran"}},
	{"saudi_arabia", []string{"saudi arabia", "saudi", "riyadh"}},
	{"european_union", []string{"european union", "brussels", "eurozone"}},
	{"united_kingdom", []string{"united kingdom", "britain", "british", "london"}},
	{"germany", []string{"germany", "german", "berlin"}},
	{"france", []string{"france", "french", "paris"}},
	{"japan", []string{"japan", "japanese", "tokyo"}},
	{"india", []string{"india", "indian", "new delhi"}},
	{"north_korea", []string{"north korea", "pyongyang"}},
	{"south_korea", []string{"south korea", "seoul"}},
	{"turkey", []string{"turkey", "turkish", "ankara"}},
	{"venezuela", []string{"venezuela", "caracas"}},
	{"nigeria", []string{"nigeria", "nigerian"}},
	{"brazil", []string{"brazil", "brazilian", "brasilia"}},
	{"mexico", []string{"mexico", "mexican"}},
	{"egypt", []string{"egypt", "egyptian", "cairo", "suez"}},
	{"gulf", []string{"persian gulf", "strait of hormuz", "uae", "qatar", "bahrain"}},
	{"red_sea", []string{"red sea", "houthi", "bab el-mandeb"}},
	{"south_china_sea", []string{"south china sea", "spratly"}},
}

// regionKeywords is the secondary explicit keyword table merged on top of
// the alias scan: plain substring containment, no word boundary. Ordered so
// detection output stays deterministic.
var regionKeywords = []struct {
	keyword string
	key     string
}{
	{"opec", "gulf"},
	{"nato", "european_union"},
	{"hormuz", "gulf"},
	{"donbas", "ukraine"},
	{"gaza", "israel"},
	{"crimea", "ukraine"},
	{"bosphorus", "turkey"},
}

// regionMarkets maps a detected region to the market instruments exposed to
// it. The union over all detected regions is the item's exposure list.
var regionMarkets = map[string][]string{
	"united_states":   {"SPX", "DXY", "UST10Y"},
	"china":           {"FXI", "CNH", "COPPER"},
	"russia":          {"BRENT", "NATGAS", "WHEAT"},
	"ukraine":         {"WHEAT", "CORN", "NATGAS"},
	"taiwan":          {"TSM", "SOX", "FXI"},
	"israel":          {"BRENT", "GOLD"},
	"iran":            {"BRENT", "GOLD"},
	"saudi_arabia":    {"BRENT", "WTI"},
	"european_union":  {"STOXX", "EUR", "NATGAS"},
	"united_kingdom":  {"FTSE", "GBP"},
	"germany":         {"DAX", "EUR"},
	"france":          {"CAC", "EUR"},
	"japan":           {"NIKKEI", "JPY"},
	"india":           {"NIFTY", "INR"},
	"north_korea":     {"KOSPI", "GOLD"},
	"south_korea":     {"KOSPI", "KRW"},
	"turkey":          {"TRY", "WHEAT"},
	"venezuela":       {"WTI"},
	"nigeria":         {"BRENT"},
	"brazil":          {"SOYBEANS", "BRL"},
	"mexico":          {"MXN", "WTI"},
	"egypt":           {"BRENT", "SHIPPING"},
	"gulf":            {"BRENT", "WTI", "NATGAS"},
	"red_sea":         {"BRENT", "SHIPPING"},
	"south_china_sea": {"FXI", "SHIPPING"},
}

// transmissionChannels is scanned in declaration order; the first entry with
// a keyword hit names the item's causal chain.
var transmissionChannels = []match.Entry{
	{Keywords: []string{"war", "invasion", "airstrike", "missile", "conflict", "attack"}, Value: "Conflict → Supply Disruption → Commodity Price → Inflation"},
	{Keywords: []string{"sanctions", "embargo", "export controls", "tariff"}, Value: "Trade Restriction → Supply Reallocation → Input Costs → Margins"},
	{Keywords: []string{"oil", "opec", "pipeline", "refinery", "natgas", "lng"}, Value: "Energy Supply → Fuel Prices → Transport Costs → CPI"},
	{Keywords: []string{"rate hike", "rate cut", "central bank", "fed", "ecb"}, Value: "Policy Rate → Credit Conditions → Asset Prices → Growth"},
	{Keywords: []string{"chip", "semiconductor", "foundry"}, Value: "Chip Supply → Electronics Output → Capex Cycle → Equities"},
	{Keywords: []string{"wheat", "grain", "fertilizer", "harvest"}, Value: "Crop Supply → Food Prices → Social Stability → Policy Response"},
	{Keywords: []string{"shipping", "port", "canal", "strait", "freight"}, Value: "Chokepoint → Freight Rates → Delivery Delays → Inventory Costs"},
	{Keywords: []string{"election", "coup", "protest", "government"}, Value: "Political Shift → Policy Uncertainty → Risk Premium → Capital Flows"},
}

// genericChannel is the fallback when no channel keywords match.
const genericChannel = "Event → Sentiment → Risk Appetite → Asset Prices"

// Signal-strength language tiers, checked confirmed → building → early;
// first match wins, default building.
var (
	confirmedPatterns = []string{
		"confirmed", "announced", "official", "signed", "declared",
		"launched", "imposed", "approved",
	}
	buildingPatterns = []string{
		"planning", "expected", "preparing", "likely", "warns", "threatens",
		"considering", "proposed",
	}
	earlyPatterns = []string{
		"rumor", "reportedly", "sources say", "may", "could", "unconfirmed",
		"speculation",
	}
)
