// Package config loads the freqcheck configuration.
//
// Values come from built-in defaults, then an optional YAML file, then
// FREQCHECK_* environment variables, and are validated last. The policy
// section decides which otherwise valid frequencies freqcheck accepts.
package config
