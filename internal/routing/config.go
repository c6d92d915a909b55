package routing

// Config contains the admission-control thresholds.
type Config struct {
	// SimpleMax is the exclusive token bound below which the free backend is used.
	SimpleMax int `env:"CHATBOT_SIMPLE_TOKENS" envDefault:"50"`

	// ComplexMax is the exclusive token bound below which the mid-cost backend is preferred.
	ComplexMax int `env:"CHATBOT_COMPLEX_TOKENS" envDefault:"200"`

	// RequireWindow makes a paid backend without a budget window unselectable.
	RequireWindow bool `env:"BUDGET_REQUIRE_WINDOW" envDefault:"false"`
}
