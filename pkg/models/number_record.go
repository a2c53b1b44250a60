package models

// NumberRecord is a phone number split into the pieces shown to the user.
type NumberRecord struct {
	// Region the number belongs to, e.g. "DE".
	CountryCode string `json:"country_code" yaml:"country_code"`

	// Keeps the national trunk prefix "0" when the input had one.
	AreaCode string `json:"area_code" yaml:"area_code"`

	SubscriberNumber string `json:"subscriber_number" yaml:"subscriber_number"`

	Extension string `json:"extension" yaml:"extension"`

	// The input without spaces, parentheses and `#`.
	DigitString string `json:"digit_string" yaml:"digit_string"`

	// Display form, `+49 30 12345678-12`.
	ISONormalizedNumber string `json:"iso_normalized_number" yaml:"iso_normalized_number"`
}

// IsZero reports whether nothing has been filled in.
func (r NumberRecord) IsZero() bool {
	return r == NumberRecord{}
}
