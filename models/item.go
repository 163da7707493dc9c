// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Item is the single static row shown on the main screen.
type Item struct {
	Label string
}
