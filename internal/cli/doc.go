// Package cli is responsible for parsing command-line arguments, printing the
// generated password and handling process-level concerns like exit codes.
// It translates flags into a generation request and failures into the
// "Error:" and "Unexpected error:" messages users see.
package cli
