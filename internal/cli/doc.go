// Package cli implements libctl, the headless command line client of the
// library executor. Every command builds the same services as the terminal
// UI and runs one store operation.
package cli
