// Package cli is responsible for parsing command-line arguments, resolving
// encoding names and handling process-level concerns like exit codes.
package cli
