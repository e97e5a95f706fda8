package feeds

// DefaultDescriptors is the built-in feed table. Operators can override it
// with a YAML feeds file (see config.Load); the pipeline treats whichever
// table it is given as immutable for the process lifetime.
func DefaultDescriptors() []Descriptor {
	return []Descriptor{
		// International wires and broadcasters
		{Endpoint: "https://feeds.bbci.co.uk/news/world/rss.xml", SourceName: "BBC World", Category: "world", Scope: ScopeInternational},
		{Endpoint: "https://feeds.reuters.com/Reuters/worldNews", SourceName: "Reuters World", Category: "world", Scope: ScopeInternational},
		{Endpoint: "https://www.aljazeera.com/xml/rss/all.xml", SourceName: "Al Jazeera", Category: "world", Scope: ScopeInternational},
		{Endpoint: "https://rss.dw.com/rdf/rss-en-world", SourceName: "DW World", Category: "world", Scope: ScopeInternational},
		{Endpoint: "https://www.france24.com/en/rss", SourceName: "France 24", Category: "world", Scope: ScopeInternational},
		{Endpoint: "https://feeds.npr.org/1004/rss.xml", SourceName: "NPR World", Category: "world", Scope: ScopeInternational},
		{Endpoint: "https://www.cnbc.com/id/100727362/device/rss/rss.html", SourceName: "CNBC World", Category: "markets", Scope: ScopeInternational},
		{Endpoint: "https://feeds.marketwatch.com/marketwatch/topstories/", SourceName: "MarketWatch", Category: "markets", Scope: ScopeInternational},
		{Endpoint: "https://www.ft.com/world?format=rss", SourceName: "FT World", Category: "markets", Scope: ScopeInternational},
		{Endpoint: "https://feeds.bloomberg.com/politics/news.rss", SourceName: "Bloomberg Politics", Category: "politics", Scope: ScopeInternational},
		{Endpoint: "https://www.economist.com/international/rss.xml", SourceName: "The Economist", Category: "analysis", Scope: ScopeInternational},
		{Endpoint: "https://foreignpolicy.com/feed/", SourceName: "Foreign Policy", Category: "analysis", Scope: ScopeInternational},
		{Endpoint: "https://www.defensenews.com/arc/outboundfeeds/rss/", SourceName: "Defense News", Category: "defense", Scope: ScopeInternational},
		{Endpoint: "https://oilprice.com/rss/main", SourceName: "OilPrice", Category: "energy", Scope: ScopeInternational},
		{Endpoint: "https://www.mining.com/feed/", SourceName: "Mining.com", Category: "commodities", Scope: ScopeInternational},

		// Regional desks
		{Endpoint: "https://www.scmp.com/rss/91/feed", SourceName: "SCMP Asia", Category: "world", Scope: ScopeRegional, Region: "asia"},
		{Endpoint: "https://www.channelnewsasia.com/rssfeeds/8395986", SourceName: "CNA Asia", Category: "world", Scope: ScopeRegional, Region: "asia"},
		{Endpoint: "https://www.euronews.com/rss?level=theme&name=news", SourceName: "Euronews", Category: "world", Scope: ScopeRegional, Region: "europe"},
		{Endpoint: "https://www.timesofisrael.com/feed/", SourceName: "Times of Israel", Category: "world", Scope: ScopeRegional, Region: "middle_east"},
		{Endpoint: "https://english.alarabiya.net/.mrss/en.xml", SourceName: "Al Arabiya", Category: "world", Scope: ScopeRegional, Region: "middle_east"},
		{Endpoint: "https://allafrica.com/tools/headlines/rdf/latest/headlines.rdf", SourceName: "AllAfrica", Category: "world", Scope: ScopeRegional, Region: "africa"},
		{Endpoint: "https://www.batimes.com.ar/feed", SourceName: "BA Times", Category: "world", Scope: ScopeRegional, Region: "latin_america"},

		// Local metros
		{Endpoint: "https://www.straitstimes.com/news/singapore/rss.xml", SourceName: "Straits Times SG", Category: "local", Scope: ScopeLocal, Region: "asia", Cities: []string{"singapore"}},
		{Endpoint: "https://www.standard.co.uk/news/london/rss", SourceName: "Evening Standard", Category: "local", Scope: ScopeLocal, Region: "europe", Cities: []string{"london"}},
		{Endpoint: "https://gothamist.com/feed", SourceName: "Gothamist", Category: "local", Scope: ScopeLocal, Region: "north_america", Cities: []string{"new york"}},
		{Endpoint: "https://www.japantimes.co.jp/feed/", SourceName: "Japan Times", Category: "local", Scope: ScopeLocal, Region: "asia", Cities: []string{"tokyo"}},
	}
}

// CityRegions maps known city names (lowercase) to the region key used by
// regional descriptors. Consulted by the location-filtered news view.
var CityRegions = map[string]string{
	"singapore": "asia",
	"tokyo":     "asia",
	"hong kong": "asia",
	"london":    "europe",
	"paris":     "europe",
	"berlin":    "europe",
	"new york":  "north_america",
	"chicago":   "north_america",
	"dubai":     "middle_east",
	"tel aviv":  "middle_east",
	"lagos":     "africa",
	"nairobi":   "africa",
	"sao paulo": "latin_america",
	"buenos aires": "latin_america",
}
