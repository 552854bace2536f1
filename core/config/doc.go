// Package config aggregates the application's configuration.
//
// Configuration is assembled from a .env file (via godotenv) and
// environment variables (via viper). Each concern package owns its partial
// Config struct; this package composes them and binds defaults declared in
// `default:` struct tags through reflection, so SERVER_PORT maps to
// server.port and so on.
package config
