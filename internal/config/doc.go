// Package config provides configuration loading, merging, and validation
// facilities for the yoga-studio server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (exported into the process environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Zero-valued fields are then filled from the package defaults and the result
// is validated. The main entry point is [GetStructuredConfig].
package config
