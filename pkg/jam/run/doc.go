// Package run turns a problem definition into a solution binary.
//
// Main reads the settings from the environment and the command line, opens
// the input and runs the configured executor:
//   - input comes from -input or stdin, gzip and zstd streams are detected
//     by their magic bytes and decompressed on the fly
//   - solutions go to stdout, logs go to stderr through log/slog
//   - SIGINT and SIGTERM cancel the run
package run
