package storage

// Config holds configuration for the object storage provider used by the
// map snapshot archive.
type Config struct {
	// Enabled toggles the snapshot archive. When false no storage client
	// is created and edits are never archived.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket map snapshots are archived into.
	Bucket string `mapstructure:"bucket" default:"inkandrealm"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// KeepSnapshots is how many archived snapshots to retain per map.
	KeepSnapshots int `mapstructure:"keep_snapshots" default:"20"`
}
