package entity

import "strings"

// Gender is the closed set of genders a profile can carry.
type Gender string

const (
	// GenderMale is stored and exchanged as "M".
	GenderMale Gender = "M"
	// GenderFemale is stored and exchanged as "F".
	GenderFemale Gender = "F"
)

// IsValid checks if the Gender is one of the known values.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name of the gender.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return ""
	}
}

// ParseGender accepts either the short code ("M", "F") or the label ("Male", "Female").
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return GenderMale, true
	case "f", "female":
		return GenderFemale, true
	default:
		return "", false
	}
}
