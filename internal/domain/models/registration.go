// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package models

// ParticipantRegistration is the payload sent to the remote API when
// registering a participant for a webinar. Email and Name are always
// required; Extra holds values for fields the webinar's registration
// form declares.
type ParticipantRegistration struct {
	Email string
	Name  string
	Extra map[string]string
}

// Payload flattens the registration into the remote API's wire shape.
func (r *ParticipantRegistration) Payload() map[string]string {
	payload := map[string]string{
		"email": r.Email,
		"name":  r.Name,
	}
	for k, v := range r.Extra {
		payload[k] = v
	}
	return payload
}

// RegistrationConfirmation is the remote API's response to a successful
// registration. Its shape varies per webinar so it is kept untyped.
type RegistrationConfirmation map[string]any
