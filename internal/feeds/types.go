package feeds

import "time"

// Scope describes the geographic reach of a feed source.
type Scope string

const (
	ScopeInternational Scope = "international"
	ScopeRegional      Scope = "regional"
	ScopeLocal         Scope = "local"
)

// Descriptor is the immutable configuration for a single feed source.
// Loaded once at startup; never mutated.
type Descriptor struct {
	Endpoint   string   `yaml:"endpoint" json:"endpoint"`
	SourceName string   `yaml:"source_name" json:"sourceName"`
	Category   string   `yaml:"category" json:"category"`
	Scope      Scope    `yaml:"scope" json:"scope"`
	Region     string   `yaml:"region,omitempty" json:"region,omitempty"`
	Cities     []string `yaml:"cities,omitempty" json:"cities,omitempty"`
}

// SignalStrength classifies how established the story behind an item is.
type SignalStrength string

const (
	StrengthConfirmed SignalStrength = "confirmed"
	StrengthBuilding  SignalStrength = "building"
	StrengthEarly     SignalStrength = "early"
)

// NewsItem is the normalized, scored item shape that flows through the
// pipeline. Created once per ingestion cycle and never mutated afterward;
// the full corpus is replaced wholesale on the next cycle.
type NewsItem struct {
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	Summary             string         `json:"summary"`
	Source              string         `json:"source"`
	Category            string         `json:"category"`
	Link                string         `json:"link"`
	Image               string         `json:"image,omitempty"`
	PublishedAt         time.Time      `json:"publishedAt"`
	RelevanceScore      float64        `json:"relevanceScore"`
	SignalStrength      SignalStrength `json:"signalStrength"`
	Regions             []string       `json:"regions"`
	ExposedMarkets      []string       `json:"exposedMarkets"`
	TransmissionChannel string         `json:"transmissionChannel"`
	WhyItMatters        string         `json:"whyItMatters"`
	IsNovel             bool           `json:"isNovel"`
	Scope               Scope          `json:"scope"`
	Region              string         `json:"region,omitempty"`
	Cities              []string       `json:"cities,omitempty"`
}

// Text returns the combined title+summary used by every keyword scan.
func (n NewsItem) Text() string {
	return n.Title + " " + n.Summary
}
