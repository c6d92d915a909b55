package wikijs

// Config contains Wiki.js connection settings.
type Config struct {
	URL           string `env:"WIKIJS_URL"             envDefault:"http://wiki:3000"`
	APIKey        string `env:"WIKIJS_API_KEY"`
	Timeout       int    `env:"WIKIJS_TIMEOUT"         envDefault:"30"`
	CacheTTLHours int    `env:"WIKIJS_CACHE_TTL_HOURS" envDefault:"24"`
}
