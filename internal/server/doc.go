// Package server runs the client's local status endpoint as a background
// worker, with graceful shutdown when the worker context ends.
package server
