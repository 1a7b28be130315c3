// Package config provides configuration management for record-merger.
//
// It uses Viper for an optional config.yaml and environment variables, and
// godotenv for an optional .env file. Defaults come from the 'default' struct
// tags of each section. LoadConfig validates the result.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Reconcile: feed object, report prefix, feed cache TTL, scoring workers
//
// Environment keys are SECTION_KEY, for example SERVER_PORT or RECONCILE_WORKERS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
