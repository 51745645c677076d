// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the client services and the background
// refresh job into a single process lifecycle: authenticate (or continue
// offline), show the dashboard, and go back to authentication after a
// logout or a rejected session.
package client
