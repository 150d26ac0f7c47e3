// Package config reads the settings of a solution binary from JAM_*
// environment variables. Command line flags parsed by package run take
// precedence.
package config
