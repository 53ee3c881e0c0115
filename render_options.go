package ulmark

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8     bool
	excluded bool
}

// WithOSC8 enables or disables OSC 8 hyperlinks on bare URLs.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithExclusionStyle paints code, math and link regions with Styles.Excluded.
func WithExclusionStyle(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.excluded = enabled
	}
}
