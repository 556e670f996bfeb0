// Package config provides configuration management for the webhook relay.
//
// It utilizes Viper for loading configuration from environment variables and
// a .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, public URL, body limit)
//   - Store: record store settings (data file path)
//   - Dispatch: outbound delivery settings (timeout, concurrency cap)
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
