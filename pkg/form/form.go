// Package form keeps the state behind an input box and the read-only fields
// that show a decomposed number. Front ends subscribe with OnChange and redraw
// whatever field changed.
package form

import (
	"github.com/bradhe/phone-number-parser/pkg/logs"
	"github.com/bradhe/phone-number-parser/pkg/models"
	"github.com/bradhe/phone-number-parser/pkg/phone"
)

var logger = logs.WithPackage("form")

type Field string

const (
	FieldInput               Field = "input"
	FieldCountryCode         Field = "country_code"
	FieldAreaCode            Field = "area_code"
	FieldSubscriberNumber    Field = "subscriber_number"
	FieldExtension           Field = "extension"
	FieldDigitString         Field = "digit_string"
	FieldISONormalizedNumber Field = "iso_normalized_number"
)

type ChangeFunc func(field Field, value string)

// Form is not safe for concurrent use.
type Form struct {
	formatter phone.Formatter
	input     string
	record    models.NumberRecord
	listeners []ChangeFunc
}

func New(formatter phone.Formatter) *Form {
	return &Form{formatter: formatter}
}

func (f *Form) OnChange(fn ChangeFunc) {
	f.listeners = append(f.listeners, fn)
}

func (f *Form) Input() string {
	return f.input
}

func (f *Form) SetInput(str string) {
	if str == f.input {
		return
	}

	f.input = str
	f.notify(FieldInput, str)
}

func (f *Form) Record() models.NumberRecord {
	return f.record
}

// CanParse reports whether the parse action should be offered.
func (f *Form) CanParse() bool {
	return f.input != ""
}

// Parse decomposes the current input. If that fails the displayed fields are
// cleared, the input is left for the user to fix, and the error is returned.
func (f *Form) Parse() error {
	if !f.CanParse() {
		f.show(models.NumberRecord{})
		return phone.ErrEmptyInput
	}

	rec, err := f.formatter.Decompose(f.input)

	if err != nil {
		logger.WithError(err).Debug("clearing fields after failed parse")
		f.show(models.NumberRecord{})
		return err
	}

	f.show(rec)
	return nil
}

// Reset clears the input and every displayed field.
func (f *Form) Reset() {
	f.SetInput("")
	f.show(models.NumberRecord{})
}

func (f *Form) show(rec models.NumberRecord) {
	prev := f.record
	f.record = rec

	f.notifyIfChanged(FieldCountryCode, prev.CountryCode, rec.CountryCode)
	f.notifyIfChanged(FieldAreaCode, prev.AreaCode, rec.AreaCode)
	f.notifyIfChanged(FieldSubscriberNumber, prev.SubscriberNumber, rec.SubscriberNumber)
	f.notifyIfChanged(FieldExtension, prev.Extension, rec.Extension)
	f.notifyIfChanged(FieldDigitString, prev.DigitString, rec.DigitString)
	f.notifyIfChanged(FieldISONormalizedNumber, prev.ISONormalizedNumber, rec.ISONormalizedNumber)
}

func (f *Form) notifyIfChanged(field Field, prev, next string) {
	if prev != next {
		f.notify(field, next)
	}
}

func (f *Form) notify(field Field, value string) {
	for _, fn := range f.listeners {
		fn(field, value)
	}
}
