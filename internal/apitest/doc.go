// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apitest is an in-memory implementation of the health-diary API.
//
// It serves the same routes, JSON shapes and status codes as the real
// server, issues JWT bearer tokens and stores bcrypt password hashes, so
// adapter and tracker tests can run end to end over real HTTP. Failures can
// be injected per route with [Server.FailNext].
package apitest
