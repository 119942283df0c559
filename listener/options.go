package listener

// Option overrides part of the listener configuration derived from the service configuration.
type Option func(*Config)

// WithAddress sets the address for the HTTP listener.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithRoot sets the directory served by the listener.
func WithRoot(root string) Option {
	return func(cfg *Config) {
		cfg.Root = root
	}
}
