package model

import "time"

// Config holds the complete cartofolio configuration
type Config struct {
	Source       SourceConfig      `yaml:"source" mapstructure:"source"`
	HTTP         HTTPConfig        `yaml:"http" mapstructure:"http"`
	Cache        CacheConfig       `yaml:"cache" mapstructure:"cache"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Categories   CategoryConfig    `yaml:"categories" mapstructure:"categories"`
	Vocabulary   VocabularyConfig  `yaml:"vocabulary" mapstructure:"vocabulary"`
	Logging      LoggingConfig     `yaml:"logging" mapstructure:"logging"`
	Output       OutputConfig      `yaml:"output" mapstructure:"output"`
}

// SourceConfig locates the per-language mission documents
type SourceConfig struct {
	BaseURL         string              `yaml:"base_url" mapstructure:"base_url"`   // http(s) URL, file:// URL or local directory
	Documents       map[Language]string `yaml:"documents" mapstructure:"documents"` // Document path per language, relative to BaseURL
	DefaultLanguage Language            `yaml:"default_language" mapstructure:"default_language"`
}

// HTTPConfig contains HTTP client settings for document fetches
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	MaxRetries   int           `yaml:"max_retries" mapstructure:"max_retries"`
	InsecureTLS  bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// CacheConfig controls caching of fetched documents
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskDir   string        `yaml:"disk_dir" mapstructure:"disk_dir"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// RateLimitConfig limits requests per host
type RateLimitConfig struct {
	RequestsPerSecond float64    `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int        `yaml:"burst_size" mapstructure:"burst_size"`
	PerHost           []HostRate `yaml:"per_host,omitempty" mapstructure:"per_host"`
}

// HostRate overrides the request rate of one host.
// A non-positive rate lifts the limit for that host.
type HostRate struct {
	Host              string  `yaml:"host" mapstructure:"host"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size,omitempty" mapstructure:"burst_size"`
}

// ConcurrencyConfig controls worker counts for multi-language loads
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// CategoryConfig holds the ordered tool categorization rules.
// Order matters: the first rule with a matching substring wins.
type CategoryConfig struct {
	Rules []CategoryRule `yaml:"rules" mapstructure:"rules"`
}

// CategoryRule maps any of several lowercase substrings to a category label
type CategoryRule struct {
	Substrings []string `yaml:"substrings" mapstructure:"substrings"`
	Category   string   `yaml:"category" mapstructure:"category"`
}

// VocabularyConfig holds per-language status labels and the status palette
type VocabularyConfig struct {
	Labels map[Language][]StatusLabel `yaml:"labels" mapstructure:"labels"`
	Colors map[StatusKey]string       `yaml:"colors" mapstructure:"colors"`
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	Level    string `yaml:"level" mapstructure:"level"`       // debug, info, warn, error
	Encoding string `yaml:"encoding" mapstructure:"encoding"` // console or json
}

// OutputConfig controls CLI output
type OutputConfig struct {
	JSON    bool `yaml:"json" mapstructure:"json"`
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL: "https://localhost/portfolio/",
			Documents: map[Language]string{
				LanguageFrench:  "merged_data.json",
				LanguageEnglish: "merged_data_eng.json",
				LanguageSpanish: "merged_data_esp.json",
			},
			DefaultLanguage: FallbackLanguage,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Cartofolio/0.1 (+https://github.com/ppiankov/cartofolio)",
			MaxBodyBytes: 10_000_000,
			MaxRetries:   3,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 10 * time.Minute,
			DiskDir:   "~/.cartofolio/cache",
			DiskTTL:   24 * time.Hour,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 2.0,
			BurstSize:         3,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 3,
		},
		Categories: CategoryConfig{
			Rules: DefaultCategoryRules(),
		},
		Vocabulary: VocabularyConfig{
			Labels: DefaultStatusLabels(),
			Colors: DefaultStatusColors(),
		},
		Logging: LoggingConfig{
			Level:    "warn",
			Encoding: "console",
		},
	}
}

// DefaultCategoryRules returns the reference categorization rules.
// Hardware families come first, then software titles.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Substrings: []string{"station"}, Category: "Station Totale"},
		{Substrings: []string{"scanner"}, Category: "Scanner 3D"},
		{Substrings: []string{"gnss", "septentrio"}, Category: "Récepteur GNSS"},
		{Substrings: []string{"drone"}, Category: "Drone"},
		{Substrings: []string{"caméra", "gopro", "appareil photo"}, Category: "Appareil photo / Caméra"},
		{Substrings: []string{"géoradar"}, Category: "Géoradar"},
		{Substrings: []string{"vivax"}, Category: "Détecteur de réseaux"},
		{Substrings: []string{"qgis"}, Category: "QGIS"},
		{Substrings: []string{"autocad"}, Category: "AutoCAD"},
		{Substrings: []string{"covadis"}, Category: "Covadis"},
		{Substrings: []string{"metashape"}, Category: "Agisoft Metashape"},
		{Substrings: []string{"cyclone"}, Category: "Leica Cyclone"},
		{Substrings: []string{"realworks"}, Category: "Trimble Realworks"},
		{Substrings: []string{"cloudcompare"}, Category: "CloudCompare"},
		{Substrings: []string{"géofoncier"}, Category: "Géofoncier"},
	}
}

// DefaultStatusLabels returns the status labels of each published document.
// Every language lists the canonical keys in CanonicalStatuses order.
func DefaultStatusLabels() map[Language][]StatusLabel {
	return map[Language][]StatusLabel{
		LanguageFrench: {
			{Raw: "Etudiant", Key: StatusStudent},
			{Raw: "Bénévole", Key: StatusVolunteer},
			{Raw: "Stagiaire", Key: StatusIntern},
			{Raw: "Prestation ponctuelle", Key: StatusShortContract},
			{Raw: "Technicien salarié", Key: StatusSalaried},
		},
		LanguageEnglish: {
			{Raw: "Student", Key: StatusStudent},
			{Raw: "Volunteer", Key: StatusVolunteer},
			{Raw: "Intern", Key: StatusIntern},
			{Raw: "Short-term contract", Key: StatusShortContract},
			{Raw: "Salaried technician", Key: StatusSalaried},
		},
		LanguageSpanish: {
			{Raw: "Estudiante", Key: StatusStudent},
			{Raw: "Voluntario", Key: StatusVolunteer},
			{Raw: "Becario", Key: StatusIntern},
			{Raw: "Servicio puntual", Key: StatusShortContract},
			{Raw: "Técnico asalariado", Key: StatusSalaried},
		},
	}
}

// DefaultStatusColors returns the marker palette
func DefaultStatusColors() map[StatusKey]string {
	return map[StatusKey]string{
		StatusStudent:       "#0b19ddff",
		StatusVolunteer:     "#28a745",
		StatusIntern:        "#fd7e14",
		StatusShortContract: "#6f42c1",
		StatusSalaried:      "#dc3545",
		StatusDefault:       "#6c757d",
	}
}
