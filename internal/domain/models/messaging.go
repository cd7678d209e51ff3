// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package models

// NATS subjects that the sync service sends messages about.
const (
	// IndexWebinarSubject is the subject for webinar indexing.
	// The subject is of the form: webinargeek.index.webinar
	IndexWebinarSubject = "webinargeek.index.webinar"

	// WebinarDeletedSubject is the subject for webinar deletion events.
	// The subject is of the form: webinargeek.webinar_deleted
	WebinarDeletedSubject = "webinargeek.webinar_deleted"

	// SyncCompletedSubject is the subject for completed sync run summaries.
	// The subject is of the form: webinargeek.sync_completed
	SyncCompletedSubject = "webinargeek.sync_completed"
)

// MessageAction is a type for the action of a webinar message.
type MessageAction string

// MessageAction constants for the action of a webinar message.
const (
	// ActionCreated is the action for a resource creation message.
	ActionCreated MessageAction = "created"
	// ActionUpdated is the action for a resource update message.
	ActionUpdated MessageAction = "updated"
	// ActionDeleted is the action for a resource deletion message.
	ActionDeleted MessageAction = "deleted"
)

// WebinarIndexerMessage is a NATS message schema for sending messages related to webinar CRUD operations.
type WebinarIndexerMessage struct {
	Action  MessageAction     `json:"action"`
	Headers map[string]string `json:"headers"`
	Data    any               `json:"data"`
	// Tags is a list of tags to be set on the indexed resource for search.
	Tags []string `json:"tags"`
}

// WebinarDeletedMessage is the schema for the message sent when a webinar is deleted.
type WebinarDeletedMessage struct {
	WebinarUID string `json:"webinar_uid"`
	WebinarID  string `json:"webinar_id"`
}

// SyncCompletedMessage is the schema for the message sent after a full sync run.
type SyncCompletedMessage struct {
	Stats SyncStats `json:"stats"`
}
