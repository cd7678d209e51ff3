// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Synchronized field keys on a local webinar. These keys are owned by the
// sync engine and rewritten on every sync; any other key in LocalFields
// is operator data and left alone.
const (
	FieldWebinarID       = "webinar_id"
	FieldWebinarDate     = "webinar_date"
	FieldWebinarDuration = "webinar_duration"
	FieldRegistrationURL = "registration_url"
	FieldMaxParticipants = "max_participants"
	FieldWebinarStatus   = "webinar_status"
)

// FieldDateLayout is the canonical layout for the webinar_date field.
const FieldDateLayout = "2006-01-02 15:04"

// remoteDateLayouts are the timestamp formats the remote API has been seen
// emitting, tried in order.
var remoteDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// SyncedFieldKeys returns the set of keys the sync engine owns on a webinar.
func SyncedFieldKeys() []string {
	return []string{
		FieldWebinarID,
		FieldWebinarDate,
		FieldWebinarDuration,
		FieldRegistrationURL,
		FieldMaxParticipants,
		FieldWebinarStatus,
	}
}

// ParseRemoteDate parses a remote timestamp and renders it in the canonical
// local layout.
func ParseRemoteDate(value string) (string, error) {
	for _, layout := range remoteDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(FieldDateLayout), nil
		}
	}
	return "", fmt.Errorf("unparsable webinar date: %q", value)
}

// MapRecordFields converts a remote webinar record into the synchronized
// field set. Keys absent from the record are omitted so that a partial
// remote payload never blanks out a previously synced value.
func MapRecordFields(record *WebinarRecord) (map[string]string, error) {
	if record == nil {
		return nil, errors.New("nil webinar record")
	}

	fields := map[string]string{
		FieldWebinarID: record.ID.String(),
	}

	if record.Date != "" {
		date, err := ParseRemoteDate(record.Date)
		if err != nil {
			return nil, err
		}
		fields[FieldWebinarDate] = date
	}

	if record.Duration != "" {
		// Non-numeric durations collapse to 0 rather than failing the record.
		fields[FieldWebinarDuration] = strconv.Itoa(record.Duration.Int())
	}

	if record.RegistrationURL != "" {
		fields[FieldRegistrationURL] = record.RegistrationURL
	}

	if record.MaxParticipants != "" {
		fields[FieldMaxParticipants] = record.MaxParticipants.String()
	}

	if record.Status != "" {
		fields[FieldWebinarStatus] = record.Status
	}

	return fields, nil
}

// ApplyRecord merges a remote record onto a local webinar. Title, description
// and the synchronized fields are always taken from the remote side;
// LocalFields and identity fields are preserved.
func (w *Webinar) ApplyRecord(record *WebinarRecord) error {
	fields, err := MapRecordFields(record)
	if err != nil {
		return err
	}

	w.WebinarID = record.ID.String()
	w.Title = record.Title
	w.Description = record.Description
	if w.Fields == nil {
		w.Fields = make(map[string]string)
	}
	for k, v := range fields {
		w.Fields[k] = v
	}

	return nil
}
