package scenario

import "fmt"

// MarketImplications lists instruments expected to move under a path.
type MarketImplications struct {
	Bullish []string `json:"bullish"`
	Bearish []string `json:"bearish"`
	Neutral []string `json:"neutral"`
}

// Path is one mutually exclusive trajectory within a scenario. Base
// probability and triggers are static configuration; CurrentProbability is
// recomputed each cycle.
type Path struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	BaseProbability    int                `json:"baseProbability"`
	Triggers           []string           `json:"triggers"`
	Signposts          []string           `json:"signposts"`
	MarketImplications MarketImplications `json:"marketImplications"`
	CurrentProbability int                `json:"currentProbability"`
}

// Scenario is a named set of paths for one geopolitical theme.
type Scenario struct {
	ID    string `json:"id"`
	Theme string `json:"theme"`
	Title string `json:"title"`
	Paths []Path `json:"paths"`
}

// Registry returns the fixed scenario definitions. Base probabilities per
// scenario sum to 100.
func Registry() []Scenario {
	return []Scenario{
		{
			ID:    "taiwan-strait",
			Theme: "taiwan",
			Title: "Taiwan Strait Trajectory",
			Paths: []Path{
				{
					ID:              "taiwan-status-quo",
					Name:            "Managed Status Quo",
					Description:     "Pressure continues below the threshold of blockade or conflict",
					BaseProbability: 60,
					Triggers:        []string{"military exercise", "incursion", "patrol", "gray zone"},
					Signposts:       []string{"Exercise tempo steady", "No reserve call-ups", "Semiconductor exports unaffected"},
					MarketImplications: MarketImplications{
						Bullish: []string{"TSM", "SOX"},
						Bearish: []string{},
						Neutral: []string{"FXI"},
					},
				},
				{
					ID:              "taiwan-blockade",
					Name:            "Quarantine or Blockade",
					Description:     "Customs quarantine or maritime blockade short of invasion",
					BaseProbability: 30,
					Triggers:        []string{"blockade", "quarantine", "shipping halt", "no-fly zone", "encirclement"},
					Signposts:       []string{"Sustained air closures", "Insurance rates for strait transits spike"},
					MarketImplications: MarketImplications{
						Bullish: []string{"GOLD", "DXY"},
						Bearish: []string{"TSM", "SOX", "FXI"},
						Neutral: []string{},
					},
				},
				{
					ID:              "taiwan-conflict",
					Name:            "Open Conflict",
					Description:     "Kinetic action against the island or intervening forces",
					BaseProbability: 10,
					Triggers:        []string{"invasion", "amphibious", "missile strike", "mobilization"},
					Signposts:       []string{"Civilian evacuation orders", "US carrier groups reposition"},
					MarketImplications: MarketImplications{
						Bullish: []string{"GOLD", "UST10Y"},
						Bearish: []string{"SPX", "TSM", "FXI"},
						Neutral: []string{},
					},
				},
			},
		},
		{
			ID:    "ukraine-war",
			Theme: "ukraine",
			Title: "Ukraine War Trajectory",
			Paths: []Path{
				{
					ID:              "ukraine-attrition",
					Name:            "Grinding Attrition",
					Description:     "Front lines largely static; strikes on infrastructure continue",
					BaseProbability: 50,
					Triggers:        []string{"offensive stalls", "drone strike", "infrastructure", "artillery"},
					Signposts:       []string{"No major territorial change quarter over quarter"},
					MarketImplications: MarketImplications{
						Bullish: []string{"WHEAT"},
						Bearish: []string{},
						Neutral: []string{"NATGAS"},
					},
				},
				{
					ID:              "ukraine-escalation",
					Name:            "Escalation",
					Description:     "Major offensive, new weapons classes, or widening participation",
					BaseProbability: 25,
					Triggers:        []string{"major offensive", "escalation", "nato involvement", "tactical nuclear", "mobilization"},
					Signposts:       []string{"Reserve call-ups", "Allied long-range strike approvals"},
					MarketImplications: MarketImplications{
						Bullish: []string{"GOLD", "BRENT", "WHEAT"},
						Bearish: []string{"STOXX", "EUR"},
						Neutral: []string{},
					},
				},
				{
					ID:              "ukraine-negotiation",
					Name:            "Negotiated De-escalation",
					Description:     "Ceasefire talks produce a durable freeze or settlement",
					BaseProbability: 25,
					Triggers:        []string{"ceasefire", "negotiate", "peace talks", "truce", "settlement"},
					Signposts:       []string{"Direct talks announced", "Prisoner exchanges expand", "Grain corridor normalizes"},
					MarketImplications: MarketImplications{
						Bullish: []string{"STOXX", "EUR"},
						Bearish: []string{"GOLD", "BRENT"},
						Neutral: []string{},
					},
				},
			},
		},
		{
			ID:    "mideast-oil",
			Theme: "middle east",
			Title: "Middle East Oil Corridor",
			Paths: []Path{
				{
					ID:              "mideast-contained",
					Name:            "Contained Friction",
					Description:     "Intermittent attacks without sustained supply interruption",
					BaseProbability: 55,
					Triggers:        []string{"intercepted", "limited strike", "contained", "resume shipping"},
					Signposts:       []string{"Tanker transit volumes hold", "War-risk premia stable"},
					MarketImplications: MarketImplications{
						Bullish: []string{},
						Bearish: []string{},
						Neutral: []string{"BRENT", "SHIPPING"},
					},
				},
				{
					ID:              "mideast-disruption",
					Name:            "Corridor Disruption",
					Description:     "Sustained attacks close Red Sea or Hormuz routing for weeks",
					BaseProbability: 30,
					Triggers:        []string{"hormuz", "red sea", "tanker attack", "houthi", "mined", "blockade"},
					Signposts:       []string{"Rerouting around the Cape at scale", "Insurance withdrawal"},
					MarketImplications: MarketImplications{
						Bullish: []string{"BRENT", "WTI", "SHIPPING"},
						Bearish: []string{"SPX"},
						Neutral: []string{},
					},
				},
				{
					ID:              "mideast-regional-war",
					Name:            "Regional War",
					Description:     "Direct state-on-state conflict involving a major producer",
					BaseProbability: 15,
					Triggers:        []string{"declares war", "strikes iran", "regional war", "oil field attack"},
					Signposts:       []string{"Production shut-ins announced", "Strategic reserve releases"},
					MarketImplications: MarketImplications{
						Bullish: []string{"BRENT", "GOLD", "DXY"},
						Bearish: []string{"SPX", "STOXX"},
						Neutral: []string{},
					},
				},
			},
		},
		{
			ID:    "us-china-trade",
			Theme: "trade",
			Title: "US-China Trade Relations",
			Paths: []Path{
				{
					ID:              "trade-managed",
					Name:            "Managed Competition",
					Description:     "Targeted controls persist but broad trade continues",
					BaseProbability: 55,
					Triggers:        []string{"talks continue", "exemption", "license granted", "dialogue"},
					Signposts:       []string{"Tariff levels unchanged", "Working groups keep meeting"},
					MarketImplications: MarketImplications{
						Bullish: []string{"SPX", "FXI"},
						Bearish: []string{},
						Neutral: []string{"COPPER"},
					},
				},
				{
					ID:              "trade-decoupling",
					Name:            "Accelerated Decoupling",
					Description:     "Broad tariff rounds and export-control expansion on both sides",
					BaseProbability: 35,
					Triggers:        []string{"tariff", "export controls", "retaliation", "chip ban", "rare earth"},
					Signposts:       []string{"New tariff rounds announced", "Rare-earth quotas tightened"},
					MarketImplications: MarketImplications{
						Bullish: []string{"DXY"},
						Bearish: []string{"FXI", "SOX", "SOYBEANS"},
						Neutral: []string{},
					},
				},
				{
					ID:              "trade-detente",
					Name:            "Tariff Detente",
					Description:     "Negotiated rollback of tariffs and controls",
					BaseProbability: 10,
					Triggers:        []string{"tariff rollback", "trade deal", "agreement signed", "truce"},
					Signposts:       []string{"Leader-level summit scheduled", "Phased reduction published"},
					MarketImplications: MarketImplications{
						Bullish: []string{"FXI", "SOX", "SOYBEANS", "SPX"},
						Bearish: []string{"DXY"},
						Neutral: []string{},
					},
				},
			},
		},
	}
}

// ValidateRegistry fails fast on malformed scenarios: every scenario needs
// 2-4 paths with non-empty triggers and base probabilities summing to 100.
func ValidateRegistry(scenarios []Scenario) error {
	for _, s := range scenarios {
		if s.ID == "" || s.Theme == "" {
			return fmt.Errorf("scenario %q: missing id or theme", s.ID)
		}
		if len(s.Paths) < 2 || len(s.Paths) > 4 {
			return fmt.Errorf("scenario %q: %d paths, want 2-4", s.ID, len(s.Paths))
		}
		sum := 0
		for _, p := range s.Paths {
			if p.ID == "" || p.Name == "" {
				return fmt.Errorf("scenario %q: path missing id or name", s.ID)
			}
			if len(p.Triggers) == 0 {
				return fmt.Errorf("scenario %q path %q: no triggers", s.ID, p.ID)
			}
			sum += p.BaseProbability
		}
		if sum != 100 {
			return fmt.Errorf("scenario %q: base probabilities sum to %d, want 100", s.ID, sum)
		}
	}
	return nil
}
