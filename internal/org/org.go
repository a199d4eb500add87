// Package org holds the organization profile shown on report letterheads.
// It is presentation metadata: the only thing the engine ever reads from it
// is the currency code, and that just selects a display symbol.
package org

type TermLine struct {
	Text string `json:"text"`
}

type Organization struct {
	Name          string     `json:"name"`
	LogoURL       string     `json:"logoUrl,omitempty"`
	Email         string     `json:"email,omitempty"`
	Address       string     `json:"address,omitempty"`
	ContactNumber string     `json:"contactNumber,omitempty"`
	Currency      string     `json:"currency,omitempty"`
	Terms         []TermLine `json:"termsAndConditions,omitempty"`
}
