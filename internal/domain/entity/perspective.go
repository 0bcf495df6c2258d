package entity

import "strings"

// Perspective selects the audience mode for generated answers.
type Perspective string

const (
	PerspectivePatient  Perspective = "patient"
	PerspectiveClinical Perspective = "clinical"
)

// ParsePerspective maps a request value to a known perspective.
// Anything unrecognized (including empty) falls back to patient.
func ParsePerspective(s string) Perspective {
	switch Perspective(strings.ToLower(strings.TrimSpace(s))) {
	case PerspectiveClinical:
		return PerspectiveClinical
	default:
		return PerspectivePatient
	}
}
