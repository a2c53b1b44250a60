package phone

import (
	"errors"
	"strings"
	"testing"

	"github.com/nyaruka/phonenumbers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLibrary struct {
	parseErr      error
	invalid       bool
	region        string
	national      string
	areaLength    int
	countryCode   int32
	extension     *string
	parsedRegions []string
}

func (f *fakeLibrary) Parse(text, defaultRegion string) (*phonenumbers.PhoneNumber, error) {
	f.parsedRegions = append(f.parsedRegions, defaultRegion)

	if f.parseErr != nil {
		return nil, f.parseErr
	}

	cc := f.countryCode
	return &phonenumbers.PhoneNumber{CountryCode: &cc, Extension: f.extension}, nil
}

func (f *fakeLibrary) IsValidNumber(*phonenumbers.PhoneNumber) bool { return !f.invalid }

func (f *fakeLibrary) GetRegionCodeForNumber(*phonenumbers.PhoneNumber) string { return f.region }

func (f *fakeLibrary) GetNationalSignificantNumber(*phonenumbers.PhoneNumber) string {
	return f.national
}

func (f *fakeLibrary) GetLengthOfGeographicalAreaCode(*phonenumbers.PhoneNumber) int {
	return f.areaLength
}

func berlin() *fakeLibrary {
	return &fakeLibrary{region: "DE", national: "3012345678", areaLength: 2, countryCode: 49}
}

func stringPtr(s string) *string { return &s }

func TestDecomposeKeepsTrunkPrefixInAreaCodeOnly(t *testing.T) {
	rec, err := Decompose("030 12345678", "DE", berlin())
	require.NoError(t, err)

	assert.Equal(t, "DE", rec.CountryCode)
	assert.Equal(t, "030", rec.AreaCode)
	assert.Equal(t, "12345678", rec.SubscriberNumber)
	assert.Equal(t, "", rec.Extension)
	assert.Equal(t, "03012345678", rec.DigitString)
	assert.Equal(t, "+49 30 12345678", rec.ISONormalizedNumber)
}

func TestDecomposeWithoutTrunkPrefix(t *testing.T) {
	rec, err := Decompose("+49 (30) 1234-5678", "DE", berlin())
	require.NoError(t, err)

	assert.Equal(t, "30", rec.AreaCode)
	assert.Equal(t, "+49301234-5678", rec.DigitString)
	assert.Equal(t, "+49 30 12345678", rec.ISONormalizedNumber)
}

func TestDecomposePassesRegionThrough(t *testing.T) {
	lib := berlin()
	_, err := Decompose("030 12345678", "AT", lib)
	require.NoError(t, err)
	assert.Equal(t, []string{"AT"}, lib.parsedRegions)
}

func TestDecomposeAppendsExtension(t *testing.T) {
	lib := berlin()
	lib.extension = stringPtr("123")

	rec, err := Decompose("030 12345678 #123", "DE", lib)
	require.NoError(t, err)

	assert.Equal(t, "123", rec.Extension)
	assert.Equal(t, "03012345678123", rec.DigitString)
	assert.Equal(t, "+49 30 12345678-123", rec.ISONormalizedNumber)
}

func TestDecomposeWithoutGeographicAreaCode(t *testing.T) {
	lib := &fakeLibrary{region: "DE", national: "15112345678", areaLength: 0, countryCode: 49}

	rec, err := Decompose("0151 12345678", "DE", lib)
	require.NoError(t, err)

	assert.Equal(t, "0", rec.AreaCode)
	assert.Equal(t, "15112345678", rec.SubscriberNumber)
	assert.Equal(t, "+49 15112345678", rec.ISONormalizedNumber)
}

func TestDecomposeClampsAreaCodeLength(t *testing.T) {
	lib := &fakeLibrary{region: "DE", national: "301", areaLength: 7, countryCode: 49}

	rec, err := Decompose("301", "DE", lib)
	require.NoError(t, err)

	assert.Equal(t, "301", rec.AreaCode)
	assert.Equal(t, "", rec.SubscriberNumber)
	assert.Equal(t, "+49 301", rec.ISONormalizedNumber)
}

func TestDecomposeParseError(t *testing.T) {
	diag := errors.New("not a number")
	lib := berlin()
	lib.parseErr = diag

	rec, err := Decompose("abcdefg", "DE", lib)

	assert.True(t, rec.IsZero())
	assert.True(t, IsParseError(err))
	assert.False(t, IsValidationError(err))
	assert.True(t, errors.Is(err, diag))
	assert.Contains(t, err.Error(), "not a number")
}

func TestDecomposeValidationError(t *testing.T) {
	lib := berlin()
	lib.invalid = true

	rec, err := Decompose("123", "DE", lib)

	assert.True(t, rec.IsZero())
	assert.True(t, IsValidationError(err))
	assert.False(t, IsParseError(err))
	assert.Equal(t, "Invalid number", err.Error())
}

func TestDecomposeRejectsEmptyInput(t *testing.T) {
	lib := berlin()

	_, err := Decompose("", "DE", lib)

	assert.Equal(t, ErrEmptyInput, err)
	assert.Empty(t, lib.parsedRegions)
}

func TestDigitString(t *testing.T) {
	assert.Equal(t, "+493012345678", DigitString("+49 (30) 123 456 78"))
	assert.Equal(t, "030-1234", DigitString("030-1234#"))
	assert.Equal(t, "", DigitString(" ()#"))
}

func TestISONormalized(t *testing.T) {
	assert.Equal(t, "+49 30 12345678", ISONormalized(49, "030", "12345678", ""))
	assert.Equal(t, "+49 30 12345678-9", ISONormalized(49, "30", "12345678", "9"))
	assert.Equal(t, "+1 201 5550123", ISONormalized(1, "201", "5550123", ""))
	assert.Equal(t, "30 12345678", ISONormalized(0, "30", "12345678", ""))
	assert.Equal(t, "+49 12345678", ISONormalized(49, "", "12345678", ""))

	// only one trunk prefix is dropped
	assert.Equal(t, "+39 06 1234", ISONormalized(39, "006", "1234", ""))
}

// The remaining tests run against the real numbering metadata.

func TestLibphonenumberGermanNationalInput(t *testing.T) {
	rec, err := NewFormatter("").Decompose("030 12345678")
	require.NoError(t, err)

	assert.Equal(t, "DE", rec.CountryCode)
	assert.Equal(t, "030", rec.AreaCode)
	assert.Equal(t, "12345678", rec.SubscriberNumber)
	assert.Equal(t, "03012345678", rec.DigitString)
	assert.Equal(t, "+49 30 12345678", rec.ISONormalizedNumber)
	assert.False(t, strings.HasPrefix(rec.ISONormalizedNumber, "+49 0"))
}

func TestLibphonenumberInternationalInput(t *testing.T) {
	rec, err := NewFormatter("DE").Decompose("+49 30 12345678")
	require.NoError(t, err)

	assert.Equal(t, "30", rec.AreaCode)
	assert.Equal(t, "+493012345678", rec.DigitString)
	assert.Equal(t, "+49 30 12345678", rec.ISONormalizedNumber)
}

func TestLibphonenumberNationalNumberIdentity(t *testing.T) {
	lib := Libphonenumber{}

	for _, input := range []string{"030 12345678", "+49 30 12345678", "+1 201 555 0123"} {
		rec, err := Decompose(input, "DE", lib)
		require.NoError(t, err, input)

		num, err := lib.Parse(input, "DE")
		require.NoError(t, err)

		n := lib.GetLengthOfGeographicalAreaCode(num)
		area := rec.AreaCode[len(rec.AreaCode)-n:]

		assert.Equal(t, lib.GetNationalSignificantNumber(num), area+rec.SubscriberNumber, input)
	}
}

func TestLibphonenumberExtension(t *testing.T) {
	rec, err := NewFormatter("DE").Decompose("+49 30 12345678 ext. 42")
	require.NoError(t, err)

	assert.Equal(t, "42", rec.Extension)
	assert.True(t, strings.HasSuffix(rec.ISONormalizedNumber, "-42"))

	rec, err = NewFormatter("DE").Decompose("+49 30 12345678")
	require.NoError(t, err)
	assert.NotContains(t, rec.ISONormalizedNumber, "-")
}

func TestLibphonenumberOtherRegion(t *testing.T) {
	rec, err := NewFormatter("US").Decompose("201 555 0123")
	require.NoError(t, err)

	assert.Equal(t, "US", rec.CountryCode)
	assert.Equal(t, "201", rec.AreaCode)
	assert.Equal(t, "5550123", rec.SubscriberNumber)
	assert.Equal(t, "+1 201 5550123", rec.ISONormalizedNumber)
}

func TestLibphonenumberItalianLeadingZero(t *testing.T) {
	rec, err := NewFormatter("DE").Decompose("+39 02 1234 5678")
	require.NoError(t, err)

	// The zero is part of the Italian national number, it still goes.
	assert.Equal(t, "IT", rec.CountryCode)
	assert.Equal(t, "02", rec.AreaCode)
	assert.Equal(t, "12345678", rec.SubscriberNumber)
	assert.Equal(t, "+39 2 12345678", rec.ISONormalizedNumber)
}

func TestLibphonenumberErrors(t *testing.T) {
	f := NewFormatter("DE")

	_, err := f.Decompose("123")
	assert.True(t, IsValidationError(err))

	_, err = f.Decompose("abcdefg")
	assert.True(t, IsParseError(err))
	assert.True(t, errors.Is(err, phonenumbers.ErrNotANumber))
}

func TestLibphonenumberIdempotent(t *testing.T) {
	f := NewFormatter("DE")

	for _, input := range []string{"030 12345678", "+49 30 12345678"} {
		first, err := f.Decompose(input)
		require.NoError(t, err, input)

		second, err := f.Decompose(strings.TrimPrefix(first.ISONormalizedNumber, "+"))
		require.NoError(t, err, input)

		assert.Equal(t, strings.TrimPrefix(first.AreaCode, "0"), second.AreaCode, input)
		assert.Equal(t, first.SubscriberNumber, second.SubscriberNumber, input)
		assert.Equal(t, first.ISONormalizedNumber, second.ISONormalizedNumber, input)
	}
}

func TestLibphonenumberIdempotentForeignRegion(t *testing.T) {
	f := NewFormatter("DE")

	first, err := f.Decompose("+1 201 555 0123")
	require.NoError(t, err)

	// Without the "+" the country code is read as part of a German number.
	_, err = f.Decompose(strings.TrimPrefix(first.ISONormalizedNumber, "+"))
	assert.True(t, IsValidationError(err))

	second, err := f.Decompose(first.ISONormalizedNumber)
	require.NoError(t, err)

	assert.Equal(t, first.AreaCode, second.AreaCode)
	assert.Equal(t, first.SubscriberNumber, second.SubscriberNumber)
}

func TestSupportedRegion(t *testing.T) {
	assert.True(t, SupportedRegion("DE"))
	assert.True(t, SupportedRegion("US"))
	assert.False(t, SupportedRegion("de"))
	assert.False(t, SupportedRegion("XX"))
	assert.False(t, SupportedRegion("DEU"))
}
