// Package config provides configuration management for the development server.
//
// It uses Viper to read environment variables, optionally seeded from a .env
// file. Real environment variables take precedence over the .env file.
//
// # Configuration Structure
//
//   - Server: bind host and port, served root directory, landing page name
//   - Log: logging level and format
//
// Defaults come from the `default` struct tags, so a run with no environment
// binds 0.0.0.0:5000 and serves the executable's directory.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Addr())
package config
