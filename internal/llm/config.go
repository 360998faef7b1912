// Package llm provides the generative-model client whose settled text output
// feeds the parsing pipeline. The pipeline core never performs network I/O
// itself; this client is its only external collaborator.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: cleanup, short rewrites
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structured resume generation
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: full-document drafting and scoring
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model name per tier.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// Model returns the model name for a given tier, falling back to standard
// then lite when the tier is not configured.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	clone := &Config{Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		clone.Models[k] = v
	}
	clone.Models[tier] = model
	return clone
}
