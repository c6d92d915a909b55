package domain

// DefaultSystemPrompt is used by adapters when no system prompt is supplied.
const DefaultSystemPrompt = "You are a helpful political campaign policy assistant."

const (
	lowSystemPrompt = DefaultSystemPrompt +
		" Explain policies in simple, accessible language using everyday examples and analogies. Avoid jargon."
	mediumSystemPrompt = DefaultSystemPrompt +
		" Provide clear policy explanations with specific details and relevant examples."
	highSystemPrompt = DefaultSystemPrompt +
		" Provide detailed policy analysis with technical specifics, research citations, and implementation details."
)

// SystemPrompt returns the instruction template for a sophistication level.
// Unknown levels get the medium template.
func SystemPrompt(level Sophistication) string {
	switch level {
	case SophisticationLow:
		return lowSystemPrompt
	case SophisticationHigh:
		return highSystemPrompt
	case SophisticationMedium:
		return mediumSystemPrompt
	default:
		return mediumSystemPrompt
	}
}
