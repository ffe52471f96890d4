// Package config handles loading and validating the Awair monitor
// configuration.
//
// This package manages:
//   - Loading configuration from environment variables
//   - An optional YAML file layer (AWAIR_CONFIG)
//   - Validation of required fields
//   - Default value handling
//
// Security Considerations:
//   - Sensitive values (the API key, the InfluxDB password) should be set
//     via environment variables, not checked-in files
//   - If a config file is used it should have restricted permissions (0600)
//
// Performance Characteristics:
//   - Configuration is loaded once at startup
//   - No runtime overhead after initial load
//
// Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Awair.DeviceID)
package config
