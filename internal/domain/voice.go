package domain

import "strings"

// Voice describes a synthetic voice offered by a TTS backend.
type Voice struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Gender    string `json:"gender"`
	Locale    string `json:"locale"`
}

// VoiceFilter narrows a voice catalog. All fields are optional and
// matched case-insensitively.
type VoiceFilter struct {
	Language string `json:"language,omitempty"` // language prefix, e.g. "en"
	Gender   string `json:"gender,omitempty"`   // exact match, e.g. "Female"
	Locale   string `json:"locale,omitempty"`   // substring match, e.g. "en-US"
}

// IsZero reports whether the filter imposes no constraints.
func (f VoiceFilter) IsZero() bool {
	return f.Language == "" && f.Gender == "" && f.Locale == ""
}

// Matches reports whether a voice satisfies every set filter field.
func (f VoiceFilter) Matches(v Voice) bool {
	locale := strings.ToLower(v.Locale)
	if f.Language != "" && !strings.HasPrefix(locale, strings.ToLower(f.Language)) {
		return false
	}
	if f.Gender != "" && !strings.EqualFold(f.Gender, v.Gender) {
		return false
	}
	if f.Locale != "" && !strings.Contains(locale, strings.ToLower(f.Locale)) {
		return false
	}
	return true
}

// FilterVoices applies a filter to a catalog, preserving order.
func FilterVoices(voices []Voice, filter VoiceFilter) []Voice {
	if filter.IsZero() {
		return voices
	}
	matched := make([]Voice, 0, len(voices))
	for _, v := range voices {
		if filter.Matches(v) {
			matched = append(matched, v)
		}
	}
	return matched
}
