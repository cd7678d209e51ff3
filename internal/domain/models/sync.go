// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package models

// SyncAction describes what a sync pass did with a single remote record.
type SyncAction string

const (
	// SyncActionCreated means a new local webinar was created.
	SyncActionCreated SyncAction = "created"
	// SyncActionUpdated means an existing local webinar was updated in place.
	SyncActionUpdated SyncAction = "updated"
	// SyncActionFailed means the record could not be processed.
	SyncActionFailed SyncAction = "failed"
)

// SyncStats summarizes a full synchronization run.
type SyncStats struct {
	RunID   string `json:"run_id"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
	Failed  int    `json:"failed"`
}

// Total returns the number of remote records the run attempted.
func (s SyncStats) Total() int {
	return s.Created + s.Updated + s.Failed
}

// Record counts one per-record outcome.
func (s *SyncStats) Record(action SyncAction) {
	switch action {
	case SyncActionCreated:
		s.Created++
	case SyncActionUpdated:
		s.Updated++
	case SyncActionFailed:
		s.Failed++
	}
}
