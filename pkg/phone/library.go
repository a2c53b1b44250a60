package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Library is the subset of libphonenumber that decomposition relies on. It is
// an interface so other numbering backends (or fakes) can be swapped in.
type Library interface {
	Parse(text, defaultRegion string) (*phonenumbers.PhoneNumber, error)
	IsValidNumber(num *phonenumbers.PhoneNumber) bool
	GetRegionCodeForNumber(num *phonenumbers.PhoneNumber) string
	GetNationalSignificantNumber(num *phonenumbers.PhoneNumber) string
	GetLengthOfGeographicalAreaCode(num *phonenumbers.PhoneNumber) int
}

// Libphonenumber delegates to github.com/nyaruka/phonenumbers. It holds no
// state so a single value can be shared between goroutines.
type Libphonenumber struct{}

func (Libphonenumber) Parse(text, defaultRegion string) (*phonenumbers.PhoneNumber, error) {
	return phonenumbers.Parse(text, defaultRegion)
}

func (Libphonenumber) IsValidNumber(num *phonenumbers.PhoneNumber) bool {
	return phonenumbers.IsValidNumber(num)
}

func (Libphonenumber) GetRegionCodeForNumber(num *phonenumbers.PhoneNumber) string {
	return phonenumbers.GetRegionCodeForNumber(num)
}

func (Libphonenumber) GetNationalSignificantNumber(num *phonenumbers.PhoneNumber) string {
	return phonenumbers.GetNationalSignificantNumber(num)
}

func (Libphonenumber) GetLengthOfGeographicalAreaCode(num *phonenumbers.PhoneNumber) int {
	return phonenumbers.GetLengthOfGeographicalAreaCode(num)
}

// SupportedRegion reports whether the numbering metadata knows the two letter
// region code. Lookup is case sensitive, "DE" not "de".
func SupportedRegion(code string) bool {
	if len(code) != 2 || strings.ToUpper(code) != code {
		return false
	}

	return phonenumbers.GetSupportedRegions()[code]
}
