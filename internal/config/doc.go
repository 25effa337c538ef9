// Package config loads run configuration from a YAML file with viper,
// replacing the key=value ConfigParser of original_source/branch/
// VMAllocation/ConfigParser.cpp with a structured decode into
// vmplace.Params and genproblem.Config. A run file may name more than one
// parameter profile, mirroring the original tool's practice of comparing
// several strategies against the same generated problem in one pass.
package config
