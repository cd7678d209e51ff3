// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package models

import (
	"encoding/json"
	"strconv"
)

// FlexString is a string that also accepts JSON numbers when unmarshaling.
// The remote API is not consistent about whether identifiers and counts
// arrive as strings or numbers.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the value as a plain string.
func (f FlexString) String() string {
	return string(f)
}

// Int returns the numeric value of the string, or 0 when it is not numeric.
func (f FlexString) Int() int {
	n, err := strconv.Atoi(string(f))
	if err != nil {
		return 0
	}
	return n
}

// WebinarRecord is the remote API representation of a webinar.
type WebinarRecord struct {
	ID                 FlexString          `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description,omitempty"`
	Date               string              `json:"date,omitempty"`
	Duration           FlexString          `json:"duration,omitempty"`
	RegistrationURL    string              `json:"registration_url,omitempty"`
	MaxParticipants    FlexString          `json:"max_participants,omitempty"`
	Status             string              `json:"status,omitempty"`
	RegistrationFields []RegistrationField `json:"registration_fields,omitempty"`
}

// RegistrationField describes one extra field of a webinar's registration form.
type RegistrationField struct {
	Name     string `json:"name"`
	Label    string `json:"label,omitempty"`
	Type     string `json:"type,omitempty"`
	Required bool   `json:"required,omitempty"`
}
