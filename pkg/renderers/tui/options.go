package tui

// Option configures the collector.
type Option func(*Collector)

// WithPromptDriver overrides the prompt driver used by the collector.
func WithPromptDriver(driver PromptDriver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithMaxAttempts caps how many times one field is re-prompted after a
// validation failure before the collection gives up. Zero means unlimited.
func WithMaxAttempts(attempts int) Option {
	return func(c *Collector) {
		if attempts >= 0 {
			c.maxAttempts = attempts
		}
	}
}
