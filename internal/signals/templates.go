package signals

import "fmt"

// Template is one entry of the fixed signal registry: a named keyword set
// plus the market/response metadata attached to any signal it produces.
type Template struct {
	ID                 string
	Name               string
	Description        string
	Keywords           []string
	AffectedMarkets    []string
	HistoricalResponse string
}

// Registry returns the fixed template set. Loaded once at startup and
// validated before the first cycle.
func Registry() []Template {
	return []Template{
		{
			ID:                 "energy-supply-shock",
			Name:               "Energy Supply Shock",
			Description:        "Disruption to oil or gas production, export routes, or refining capacity",
			Keywords:           []string{"oil supply", "opec", "pipeline", "refinery", "lng", "gas prices", "crude", "embargo"},
			AffectedMarkets:    []string{"BRENT", "WTI", "NATGAS", "XLE"},
			HistoricalResponse: "Crude spikes 5-15% on credible supply loss; energy equities follow with a lag",
		},
		{
			ID:                 "trade-restrictions",
			Name:               "Trade Restrictions",
			Description:        "New tariffs, export controls, or import bans between major economies",
			Keywords:           []string{"tariff", "export controls", "trade war", "import ban", "quota", "retaliation"},
			AffectedMarkets:    []string{"FXI", "SPX", "COPPER", "SOYBEANS"},
			HistoricalResponse: "Exposed-sector equities reprice within days; FX adjusts to terms-of-trade shift",
		},
		{
			ID:                 "conflict-escalation",
			Name:               "Armed Conflict Escalation",
			Description:        "Kinetic escalation or mobilization in an active or latent conflict zone",
			Keywords:           []string{"invasion", "airstrike", "missile", "mobilization", "offensive", "shelling", "troops"},
			AffectedMarkets:    []string{"GOLD", "BRENT", "DXY", "UST10Y"},
			HistoricalResponse: "Safe havens bid immediately; commodities follow where supply is exposed",
		},
		{
			ID:                 "sanctions-pressure",
			Name:               "Sanctions Pressure",
			Description:        "New or expanded sanctions regimes and enforcement actions",
			Keywords:           []string{"sanctions", "asset freeze", "blacklist", "swift", "secondary sanctions"},
			AffectedMarkets:    []string{"BRENT", "WHEAT", "DXY"},
			HistoricalResponse: "Targeted-economy assets gap lower; substitute suppliers benefit over weeks",
		},
		{
			ID:                 "central-bank-pivot",
			Name:               "Central Bank Pivot",
			Description:        "Shift in major central bank policy stance or unexpected rate action",
			Keywords:           []string{"rate hike", "rate cut", "central bank", "fed", "ecb", "quantitative", "hawkish", "dovish"},
			AffectedMarkets:    []string{"UST10Y", "DXY", "SPX", "GOLD"},
			HistoricalResponse: "Rates reprice first, FX second, equities over the following sessions",
		},
		{
			ID:                 "food-security",
			Name:               "Food Security Stress",
			Description:        "Grain export disruption, failed harvests, or fertilizer supply squeeze",
			Keywords:           []string{"wheat", "grain", "fertilizer", "harvest", "export ban", "food prices", "drought"},
			AffectedMarkets:    []string{"WHEAT", "CORN", "SOYBEANS"},
			HistoricalResponse: "Agricultural futures rally on export bans; import-dependent FX weakens",
		},
		{
			ID:                 "cyber-disruption",
			Name:               "Cyber Disruption",
			Description:        "Attacks on critical infrastructure, financial systems, or logistics",
			Keywords:           []string{"cyberattack", "ransomware", "hack", "breach", "outage", "malware"},
			AffectedMarkets:    []string{"CYBR", "SPX"},
			HistoricalResponse: "Sector-specific; systemic repricing only when payment or grid systems hit",
		},
		{
			ID:                 "maritime-chokepoint",
			Name:               "Maritime Chokepoint Risk",
			Description:        "Threats to shipping through straits, canals, and contested waters",
			Keywords:           []string{"strait", "canal", "shipping", "tanker", "freight", "blockade", "houthi", "hormuz"},
			AffectedMarkets:    []string{"BRENT", "SHIPPING", "NATGAS"},
			HistoricalResponse: "Freight rates and war-risk premia move within hours of credible threats",
		},
		{
			ID:                 "semiconductor-supply",
			Name:               "Semiconductor Supply Risk",
			Description:        "Chip export controls, foundry disruption, or materials bottlenecks",
			Keywords:           []string{"semiconductor", "chip ban", "foundry", "tsmc", "lithography", "wafer"},
			AffectedMarkets:    []string{"SOX", "TSM", "FXI"},
			HistoricalResponse: "Chip equities lead; downstream hardware reprices over the quarter",
		},
		{
			ID:                 "deescalation-diplomacy",
			Name:               "De-escalation Diplomacy",
			Description:        "Ceasefire talks, summits, and negotiated settlements reducing risk premia",
			Keywords:           []string{"ceasefire", "peace talks", "negotiate", "summit", "truce", "de-escalation", "agreement signed"},
			AffectedMarkets:    []string{"SPX", "BRENT", "GOLD"},
			HistoricalResponse: "Risk premium unwinds gradually; havens fade as talks hold",
		},
	}
}

// ValidateRegistry fails fast on malformed templates before any cycle runs.
func ValidateRegistry(templates []Template) error {
	seen := make(map[string]bool)
	for i, t := range templates {
		if t.ID == "" || t.Name == "" {
			return fmt.Errorf("template %d: missing id or name", i)
		}
		if seen[t.ID] {
			return fmt.Errorf("template %q: duplicate id", t.ID)
		}
		seen[t.ID] = true
		if len(t.Keywords) == 0 {
			return fmt.Errorf("template %q: no keywords", t.ID)
		}
	}
	return nil
}
