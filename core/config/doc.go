// Package config provides configuration management for the fragment loader.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Source: fragment source driver (http, storage, database, dir) and its settings
//   - Loader: development mode, bootstrap concurrency, rehydration capabilities
//   - Storage: S3/MinIO credentials and bucket settings
//   - Database: MySQL/SQLite connection details
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Source.Driver)
package config
