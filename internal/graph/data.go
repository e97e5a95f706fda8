package graph

// Static node/edge tables. Loaded once, immutable for the process lifetime.

func defaultNodes() []Node {
	return []Node{
		// Countries
		{ID: "usa", Name: "United States", Type: NodeCountry, Bloc: "nato", Importance: 10},
		{ID: "china", Name: "China", Type: NodeCountry, Bloc: "brics", Importance: 10},
		{ID: "russia", Name: "Russia", Type: NodeCountry, Bloc: "brics", Importance: 9},
		{ID: "germany", Name: "Germany", Type: NodeCountry, Bloc: "eu", Importance: 8},
		{ID: "japan", Name: "Japan", Type: NodeCountry, Importance: 8},
		{ID: "india", Name: "India", Type: NodeCountry, Bloc: "brics", Importance: 8},
		{ID: "uk", Name: "United Kingdom", Type: NodeCountry, Bloc: "nato", Importance: 7},
		{ID: "france", Name: "France", Type: NodeCountry, Bloc: "eu", Importance: 7},
		{ID: "saudi_arabia", Name: "Saudi Arabia", Type: NodeCountry, Bloc: "opec", Importance: 8},
		{ID: "iran", Name: "Iran", Type: NodeCountry, Importance: 7},
		{ID: "taiwan", Name: "Taiwan", Type: NodeCountry, Importance: 8},
		{ID: "ukraine", Name: "Ukraine", Type: NodeCountry, Importance: 7},
		{ID: "south_korea", Name: "South Korea", Type: NodeCountry, Importance: 7},
		{ID: "brazil", Name: "Brazil", Type: NodeCountry, Bloc: "brics", Importance: 6},
		{ID: "australia", Name: "Australia", Type: NodeCountry, Importance: 6},
		{ID: "venezuela", Name: "Venezuela", Type: NodeCountry, Bloc: "opec", Importance: 5},
		{ID: "nigeria", Name: "Nigeria", Type: NodeCountry, Bloc: "opec", Importance: 5},
		{ID: "chile", Name: "Chile", Type: NodeCountry, Importance: 5},

		// Blocs
		{ID: "nato", Name: "NATO", Type: NodeBloc, Importance: 9},
		{ID: "eu", Name: "European Union", Type: NodeBloc, Importance: 9},
		{ID: "opec", Name: "OPEC", Type: NodeBloc, Importance: 8},
		{ID: "brics", Name: "BRICS", Type: NodeBloc, Importance: 7},

		// Industries
		{ID: "semiconductors", Name: "Semiconductors", Type: NodeIndustry, Importance: 9},
		{ID: "defense_industry", Name: "Defense Industry", Type: NodeIndustry, Importance: 8},
		{ID: "agriculture", Name: "Agriculture", Type: NodeIndustry, Importance: 7},
		{ID: "shipping_industry", Name: "Shipping", Type: NodeIndustry, Importance: 7},
		{ID: "ev_industry", Name: "Electric Vehicles", Type: NodeIndustry, Importance: 7},

		// Commodities
		{ID: "oil", Name: "Crude Oil", Type: NodeCommodity, Importance: 10},
		{ID: "natural_gas", Name: "Natural Gas", Type: NodeCommodity, Importance: 9},
		{ID: "wheat", Name: "Wheat", Type: NodeCommodity, Importance: 8},
		{ID: "copper", Name: "Copper", Type: NodeCommodity, Importance: 7},
		{ID: "lithium", Name: "Lithium", Type: NodeCommodity, Importance: 7},
		{ID: "rare_earths", Name: "Rare Earth Elements", Type: NodeCommodity, Importance: 8},
		{ID: "gold", Name: "Gold", Type: NodeCommodity, Importance: 7},
	}
}

func defaultEdges() []Edge {
	return []Edge{
		// Rivalries and claims
		{Source: "usa", Target: "china", Type: EdgeRivalry, Strength: 9, Label: "Strategic competition across trade, tech, and security"},
		{Source: "usa", Target: "russia", Type: EdgeRivalry, Strength: 8, Label: "Sanctions regime and proxy confrontation"},
		{Source: "china", Target: "taiwan", Type: EdgeClaim, Strength: 9, Label: "Sovereignty claim over Taiwan"},
		{Source: "russia", Target: "ukraine", Type: EdgeClaim, Strength: 9, Label: "Territorial claims and ongoing war"},
		{Source: "saudi_arabia", Target: "iran", Type: EdgeRivalry, Strength: 7, Label: "Regional rivalry across the Gulf"},
		{Source: "china", Target: "india", Type: EdgeRivalry, Strength: 6, Label: "Border disputes and regional competition"},

		// Alliances and membership
		{Source: "usa", Target: "nato", Type: EdgeAlliance, Strength: 9, Label: "Founding member and security guarantor"},
		{Source: "uk", Target: "nato", Type: EdgeAlliance, Strength: 8, Label: "Founding member"},
		{Source: "france", Target: "eu", Type: EdgeAlliance, Strength: 8, Label: "Core member state"},
		{Source: "germany", Target: "eu", Type: EdgeAlliance, Strength: 8, Label: "Core member state"},
		{Source: "usa", Target: "japan", Type: EdgeAlliance, Strength: 8, Label: "Mutual security treaty"},
		{Source: "usa", Target: "south_korea", Type: EdgeAlliance, Strength: 8, Label: "Mutual defense treaty"},
		{Source: "usa", Target: "australia", Type: EdgeAlliance, Strength: 7, Label: "AUKUS security pact"},
		{Source: "russia", Target: "iran", Type: EdgeAlliance, Strength: 6, Label: "Military and energy cooperation"},
		{Source: "china", Target: "russia", Type: EdgeAlliance, Strength: 7, Label: "Strategic partnership"},
		{Source: "saudi_arabia", Target: "opec", Type: EdgeAlliance, Strength: 9, Label: "Swing producer and de facto leader"},

		// Production
		{Source: "saudi_arabia", Target: "oil", Type: EdgeProduction, Strength: 9, Label: "Top-tier producer with spare capacity"},
		{Source: "usa", Target: "oil", Type: EdgeProduction, Strength: 9, Label: "Largest producer via shale"},
		{Source: "russia", Target: "oil", Type: EdgeProduction, Strength: 8, Label: "Major exporter under price-cap sanctions"},
		{Source: "iran", Target: "oil", Type: EdgeProduction, Strength: 6, Label: "Sanctioned exporter"},
		{Source: "venezuela", Target: "oil", Type: EdgeProduction, Strength: 5, Label: "Heavy crude reserves, constrained output"},
		{Source: "nigeria", Target: "oil", Type: EdgeProduction, Strength: 5, Label: "West African exporter"},
		{Source: "russia", Target: "natural_gas", Type: EdgeProduction, Strength: 9, Label: "Pipeline and LNG exporter"},
		{Source: "usa", Target: "natural_gas", Type: EdgeProduction, Strength: 8, Label: "Largest LNG exporter"},
		{Source: "russia", Target: "wheat", Type: EdgeProduction, Strength: 8, Label: "Largest wheat exporter"},
		{Source: "ukraine", Target: "wheat", Type: EdgeProduction, Strength: 7, Label: "Black Sea grain exporter"},
		{Source: "chile", Target: "copper", Type: EdgeProduction, Strength: 9, Label: "Largest copper producer"},
		{Source: "australia", Target: "lithium", Type: EdgeProduction, Strength: 8, Label: "Largest lithium miner"},
		{Source: "chile", Target: "lithium", Type: EdgeProduction, Strength: 7, Label: "Brine lithium producer"},
		{Source: "china", Target: "rare_earths", Type: EdgeProduction, Strength: 9, Label: "Dominant refiner of rare earths"},
		{Source: "taiwan", Target: "semiconductors", Type: EdgeProduction, Strength: 9, Label: "Leading-edge foundry concentration"},
		{Source: "south_korea", Target: "semiconductors", Type: EdgeProduction, Strength: 8, Label: "Memory fabrication leader"},

		// Demand
		{Source: "china", Target: "oil", Type: EdgeDemand, Strength: 9, Label: "Largest crude importer"},
		{Source: "india", Target: "oil", Type: EdgeDemand, Strength: 7, Label: "Fast-growing importer"},
		{Source: "japan", Target: "oil", Type: EdgeDemand, Strength: 6, Label: "Import-dependent consumer"},
		{Source: "germany", Target: "natural_gas", Type: EdgeDemand, Strength: 8, Label: "Industrial gas consumer"},
		{Source: "japan", Target: "natural_gas", Type: EdgeDemand, Strength: 7, Label: "LNG import dependence"},
		{Source: "china", Target: "copper", Type: EdgeDemand, Strength: 9, Label: "Half of global copper demand"},
		{Source: "usa", Target: "semiconductors", Type: EdgeDemand, Strength: 9, Label: "Largest chip design market"},

		// Inputs
		{Source: "rare_earths", Target: "defense_industry", Type: EdgeInput, Strength: 8, Label: "Magnets and guidance systems"},
		{Source: "rare_earths", Target: "ev_industry", Type: EdgeInput, Strength: 8, Label: "Motor magnets"},
		{Source: "lithium", Target: "ev_industry", Type: EdgeInput, Strength: 9, Label: "Battery cathodes"},
		{Source: "copper", Target: "ev_industry", Type: EdgeInput, Strength: 7, Label: "Wiring and charging infrastructure"},
		{Source: "semiconductors", Target: "defense_industry", Type: EdgeInput, Strength: 8, Label: "Weapons systems and sensors"},
		{Source: "natural_gas", Target: "agriculture", Type: EdgeInput, Strength: 7, Label: "Fertilizer feedstock"},
		{Source: "oil", Target: "shipping_industry", Type: EdgeInput, Strength: 8, Label: "Bunker fuel"},
		{Source: "wheat", Target: "agriculture", Type: EdgeInput, Strength: 6, Label: "Staple grain supply chain"},
	}
}

// commodityRisks is the static per-commodity risk-factor table consulted by
// supply-chain exposure queries.
var commodityRisks = map[string][]string{
	"oil": {
		"Chokepoint closure (Hormuz, Suez, Bab el-Mandeb)",
		"OPEC+ quota discipline breaking down",
		"Sanctions enforcement tightening on sanctioned producers",
	},
	"natural_gas": {
		"Pipeline sabotage or transit disputes",
		"LNG terminal outages during peak demand",
		"Cold-winter demand spikes in Europe and Northeast Asia",
	},
	"wheat": {
		"Black Sea export corridor interruption",
		"Export bans by major producers",
		"Drought across multiple breadbaskets simultaneously",
	},
	"copper": {
		"Strikes or permitting disputes in Andean mines",
		"Chinese construction demand swings",
	},
	"lithium": {
		"Processing concentration in a single jurisdiction",
		"Permitting delays for new mines",
	},
	"rare_earths": {
		"Export quota or licensing restrictions by the dominant refiner",
		"Single-point-of-failure processing capacity",
	},
	"semiconductors": {
		"Taiwan Strait conflict or blockade",
		"Export-control escalation on tooling",
		"Single-fab concentration at the leading edge",
	},
}

// genericRisks is returned when a commodity has no dedicated risk table.
var genericRisks = []string{
	"Concentrated production geography",
	"Transport chokepoint exposure",
	"Policy intervention by producing states",
}
