package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bradhe/phone-number-parser/pkg/models"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(str string) (Format, error) {
	switch f := Format(strings.ToLower(str)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format `%s`", str)
	}
}

var label = color.New(color.FgCyan).SprintFunc()

type line struct {
	name  string
	value string
}

func lines(rec models.NumberRecord) []line {
	return []line{
		{"Country code", rec.CountryCode},
		{"Area code", rec.AreaCode},
		{"Subscriber number", rec.SubscriberNumber},
		{"Extension", rec.Extension},
		{"Digit string", rec.DigitString},
		{"ISO number", rec.ISONormalizedNumber},
	}
}

// Write renders rec to w. The text format colours its labels unless colour is
// turned off globally (no terminal, NO_COLOR set).
func Write(w io.Writer, rec models.NumberRecord, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(rec); err != nil {
			return err
		}

		return enc.Close()
	case FormatText, "":
		for _, l := range lines(rec) {
			pad := strings.Repeat(" ", 18-len(l.name))

			if _, err := fmt.Fprintf(w, "%s:%s%s\n", label(l.name), pad, l.value); err != nil {
				return err
			}
		}

		return nil
	default:
		return fmt.Errorf("unknown output format `%s`", format)
	}
}

// Error writes a failed lookup the way the text format would show it.
func Error(w io.Writer, input string, err error) {
	fmt.Fprintf(w, "%s %s: %s\n", color.RedString("error"), input, err.Error())
}
