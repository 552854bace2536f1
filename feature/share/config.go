package share

// Config holds share link settings.
type Config struct {
	// ShareDays is how long a share link stays valid.
	ShareDays int `mapstructure:"share_days" default:"30"`
}

// ShareDaysOrDefault returns the configured lifetime, falling back to 30
// days when unset.
func (c Config) ShareDaysOrDefault() int {
	if c.ShareDays <= 0 {
		return 30
	}
	return c.ShareDays
}
