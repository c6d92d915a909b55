package anthropic

// Config contains Anthropic backend configuration.
type Config struct {
	APIKey    string `env:"ANTHROPIC_API_KEY"`
	BaseURL   string `env:"ANTHROPIC_BASE_URL"   envDefault:"https://api.anthropic.com"`
	Model     string `env:"ANTHROPIC_MODEL"      envDefault:"claude-3-haiku-20240307"`
	Timeout   int    `env:"ANTHROPIC_TIMEOUT"    envDefault:"30"`
	MaxTokens int    `env:"ANTHROPIC_MAX_TOKENS" envDefault:"1024"`
}
