package auth

// Config holds configuration for sessions.
type Config struct {
	// SessionDays is how long an issued session token stays valid.
	SessionDays int `mapstructure:"session_days" default:"14"`
}

// SessionDaysOrDefault guards against a zero value from partial config.
func (c Config) SessionDaysOrDefault() int {
	if c.SessionDays <= 0 {
		return 14
	}
	return c.SessionDays
}
