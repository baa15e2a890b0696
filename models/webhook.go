package models

import (
	"encoding/json"
)

// Types below mirror the WhatsApp Cloud API webhook payload:
// entry → changes → value → messages/contacts. Only the fields the bot reads
// are declared; everything else is dropped by the decoder.

type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Contacts         []WebhookContact `json:"contacts"`
	Messages         []WebhookMessage `json:"messages"`
}

type WebhookContact struct {
	WaID    string `json:"wa_id"`
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
}

type WebhookMessage struct {
	From      string       `json:"from"`
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Type      string       `json:"type"`
	Text      *MessageText `json:"text,omitempty"`
	// Interactive replies are acknowledged but not acted on yet; the raw
	// payload is kept for logging.
	Interactive json.RawMessage `json:"interactive,omitempty"`
}

type MessageText struct {
	Body string `json:"body"`
}

// SenderName returns the display name the contact list carries for the given
// wa_id, or "" when the payload has none.
func (v WebhookValue) SenderName(waID string) string {
	for _, c := range v.Contacts {
		if c.WaID == waID {
			return c.Profile.Name
		}
	}
	return ""
}
