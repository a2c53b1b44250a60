package phone

import (
	"strconv"
	"strings"

	"github.com/bradhe/phone-number-parser/pkg/logs"
	"github.com/bradhe/phone-number-parser/pkg/models"
)

var logger = logs.WithPackage("phone")

// DefaultRegion is assumed for numbers typed without a country code.
const DefaultRegion = "DE"

var separators = strings.NewReplacer(" ", "", "(", "", ")", "", "#", "")

// Formatter is a Library paired with the region to assume for national input.
type Formatter struct {
	Region  string
	Library Library
}

func NewFormatter(region string) Formatter {
	if region == "" {
		region = DefaultRegion
	}

	return Formatter{
		Region:  region,
		Library: Libphonenumber{},
	}
}

func (f Formatter) Decompose(raw string) (models.NumberRecord, error) {
	return Decompose(raw, f.Region, f.Library)
}

// Decompose splits raw into its components. The library does all the parsing,
// validation and region inference; this only slices its national significant
// number at the geographic area code boundary and reassembles a display string.
func Decompose(raw, defaultRegion string, lib Library) (models.NumberRecord, error) {
	if raw == "" {
		return models.NumberRecord{}, ErrEmptyInput
	}

	num, err := lib.Parse(raw, defaultRegion)

	if err != nil {
		logger.WithError(err).WithField("region", defaultRegion).Debug("library could not parse number")
		return models.NumberRecord{}, &ParseError{Input: raw, Err: err}
	}

	if !lib.IsValidNumber(num) {
		logger.WithField("region", defaultRegion).Debug("library rejected number")
		return models.NumberRecord{}, &ValidationError{Input: raw}
	}

	national := lib.GetNationalSignificantNumber(num)
	areaCodeLength := lib.GetLengthOfGeographicalAreaCode(num)

	// Fakes and other backends may report a length past the end.
	if areaCodeLength > len(national) {
		areaCodeLength = len(national)
	} else if areaCodeLength < 0 {
		areaCodeLength = 0
	}

	areaCode := national[:areaCodeLength]

	if strings.HasPrefix(raw, "0") {
		areaCode = "0" + areaCode
	}

	subscriber := national[areaCodeLength:]

	var extension string

	if num.Extension != nil {
		extension = num.GetExtension()
	}

	return models.NumberRecord{
		CountryCode:         lib.GetRegionCodeForNumber(num),
		AreaCode:            areaCode,
		SubscriberNumber:    subscriber,
		Extension:           extension,
		DigitString:         DigitString(raw),
		ISONormalizedNumber: ISONormalized(int(num.GetCountryCode()), areaCode, subscriber, extension),
	}, nil
}

// DigitString strips the separators people type between digit groups. Every
// other character, `+` and `-` included, is kept.
func DigitString(raw string) string {
	return separators.Replace(raw)
}

// ISONormalized assembles `+<country> <area> <subscriber>[-<extension>]`.
// A single leading trunk prefix is dropped from the area code and empty parts
// are left out along with their separator.
func ISONormalized(countryCode int, areaCode, subscriber, extension string) string {
	var parts []string

	if countryCode > 0 {
		parts = append(parts, "+"+strconv.Itoa(countryCode))
	}

	if area := strings.TrimPrefix(areaCode, "0"); area != "" {
		parts = append(parts, area)
	}

	if subscriber != "" {
		parts = append(parts, subscriber)
	}

	str := strings.Join(parts, " ")

	if extension != "" {
		str += "-" + extension
	}

	return str
}
