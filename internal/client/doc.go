// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It owns the process lifecycle around the terminal UI: it starts the item
// screen, waits for it to finish and turns the way it finished into the
// error main reports.
package client
