// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

// Package models contains the domain models for the sync service.
package models

import (
	"fmt"
	"time"
)

// Webinar is the key-value store representation of a locally synchronized webinar.
type Webinar struct {
	UID         string `json:"uid"`
	WebinarID   string `json:"webinar_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Fields is the synchronized field set derived from the remote record.
	// It always contains the full set of synchronized keys after a sync.
	Fields map[string]string `json:"fields"`
	// LocalFields holds operator-added keys that are never part of a sync
	// and must survive updates from the remote system.
	LocalFields map[string]string `json:"local_fields,omitempty"`
	CreatedAt   *time.Time        `json:"created_at,omitempty"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
}

// Tags generates a list of tags for the webinar to use for indexing.
func (w *Webinar) Tags() []string {
	tags := []string{}

	if w == nil {
		return nil
	}

	if w.UID != "" {
		// without prefix
		tags = append(tags, w.UID)
		// with prefix
		tag := fmt.Sprintf("webinar_uid:%s", w.UID)
		tags = append(tags, tag)
	}

	if w.WebinarID != "" {
		tag := fmt.Sprintf("webinar_id:%s", w.WebinarID)
		tags = append(tags, tag)
	}

	if w.Title != "" {
		tag := fmt.Sprintf("title:%s", w.Title)
		tags = append(tags, tag)
	}

	if status, ok := w.Fields[FieldWebinarStatus]; ok && status != "" {
		tag := fmt.Sprintf("status:%s", status)
		tags = append(tags, tag)
	}

	return tags
}
