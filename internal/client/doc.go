// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the executor gateway, library services, the terminal UI, the
// background reload worker and the optional status server into a single
// process lifecycle.
package client
