// Package config provides configuration loading, merging, and validation
// facilities for the kundelik client.
//
// Configuration is assembled from multiple sources. Sources are merged with
// mergo without override, so the first source that sets a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetClientConfig] for the validated client view.
package config
