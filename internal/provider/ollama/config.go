package ollama

// Config contains local Ollama backend configuration.
type Config struct {
	Host    string `env:"OLLAMA_HOST"    envDefault:"http://localhost:11434"`
	Model   string `env:"OLLAMA_MODEL"   envDefault:"llama2"`
	Timeout int    `env:"OLLAMA_TIMEOUT" envDefault:"60"`
}
