// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coffee-list/internal/app"
	"github.com/MKhiriev/go-coffee-list/internal/client"
	"github.com/MKhiriev/go-coffee-list/internal/logger"
	"github.com/MKhiriev/go-coffee-list/models"
)

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestDeleteOutcomeLogger(t *testing.T) {
	var buf bytes.Buffer
	d := client.NewDeleteOutcomeLogger(&logger.Logger{Logger: zerolog.New(&buf)})
	item := models.Item{Label: "Coffee"}

	d.Confirmed(item)
	entry := lastEntry(t, &buf)
	assert.Equal(t, app.MsgDeleting, entry["message"])
	assert.Equal(t, "Coffee", entry["item"])
	assert.Equal(t, models.Confirmed.String(), entry["choice"])
	assert.Equal(t, "delete", entry["component"])

	d.Cancelled(item)
	entry = lastEntry(t, &buf)
	assert.Equal(t, app.MsgCanceling, entry["message"])
	assert.Equal(t, models.Cancelled.String(), entry["choice"])
}

func TestDeleteOutcomeLogger_NilLogger(t *testing.T) {
	d := client.NewDeleteOutcomeLogger(nil)
	assert.NotPanics(t, func() {
		d.Confirmed(models.Item{Label: "Coffee"})
		d.Cancelled(models.Item{Label: "Coffee"})
	})
}
