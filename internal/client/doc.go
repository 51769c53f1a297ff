// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive panel application runtime.
//
// It wires the terminal UI, the roster synchronizer and the background
// resync workers into a single process lifecycle.
package client
