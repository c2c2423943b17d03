// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the launcher application runtime.
//
// It wires the backend adapter, the client services and either the terminal
// UI or the headless setup runner into a single process lifecycle.
package client
