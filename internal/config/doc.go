// Package config loads service settings from defaults, an optional
// config.yaml and SIGNUP_* environment variables, then validates them.
package config
