// Package config provides configuration management for the render CLI.
//
// Configuration is loaded from environment variables and validated on startup.
// All configuration options have sensible defaults; command-line flags
// override them.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg)
package config
