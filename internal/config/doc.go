// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the library
// client binaries.
//
// Configuration is assembled from these sources, later sources overriding
// earlier non-zero fields:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (an explicit flag set, so each binary owns its args)
//  4. JSON config file named by CONFIG, -c or -config
//
// [GetClientConfig] is the entry point for the terminal UI and
// [GetClientConfigFromEnv] for the headless CLI, which parses its own flags.
package config
