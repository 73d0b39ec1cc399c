package itemgen

// Config controls the behavior of the Orchestrator.
type Config struct {
	// Validators is the ordered list of validators run on every generated
	// item. The first failure rejects the item.
	Validators []Validator

	// MaxTokens is the token budget for one provider response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// MaxAvoidTexts bounds how many prior questions are included in the
	// prompt's avoid list.
	MaxAvoidTexts int
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators:    DefaultValidators(),
		MaxTokens:     4096,
		Temperature:   0.7,
		MaxAvoidTexts: 40,
	}
}
