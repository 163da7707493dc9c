// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-coffee-list/internal/app"
	"github.com/MKhiriev/go-coffee-list/internal/logger"
	"github.com/MKhiriev/go-coffee-list/models"
)

// DeleteOutcomeLogger records what the user answered to a delete prompt.
// Nothing is deleted; the answer is only logged.
type DeleteOutcomeLogger struct {
	log *logger.Logger
}

// NewDeleteOutcomeLogger returns a DeleteOutcomeLogger writing to log.
func NewDeleteOutcomeLogger(log *logger.Logger) *DeleteOutcomeLogger {
	if log == nil {
		log = logger.Nop()
	}
	return &DeleteOutcomeLogger{log: log.WithComponent("delete")}
}

// Confirmed is bound to the confirm option of the delete prompt.
func (d *DeleteOutcomeLogger) Confirmed(item models.Item) {
	d.log.Info().
		Str("item", item.Label).
		Stringer("choice", models.Confirmed).
		Msg(app.MsgDeleting)
}

// Cancelled is bound to the cancel option and every dismissal.
func (d *DeleteOutcomeLogger) Cancelled(item models.Item) {
	d.log.Info().
		Str("item", item.Label).
		Stringer("choice", models.Cancelled).
		Msg(app.MsgCanceling)
}
