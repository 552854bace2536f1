package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// AllowOrigins is the comma-separated CORS allowlist for the
	// browser client. Empty disables CORS headers entirely.
	AllowOrigins string `mapstructure:"allow_origins" default:"http://localhost:5216"`
	// BodyLimitMB caps the accepted request body size. Edit batches are
	// small JSON documents; anything larger is a client bug.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"4"`
}

// BodyLimitBytes returns the request body cap in bytes, defaulting to 4MB
// when the configured value is not positive.
func (c Config) BodyLimitBytes() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = 4
	}
	return mb * 1024 * 1024
}
