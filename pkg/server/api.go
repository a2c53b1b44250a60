package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bradhe/phone-number-parser/pkg/models"
	"github.com/bradhe/phone-number-parser/pkg/phone"
	"github.com/go-playground/validator/v10"
)

type PostParseRequest struct {
	// The number as the user typed it.
	Number string `json:"number" validate:"required"`

	// Region to assume when the number has no country code. Falls back to the
	// server's configured region.
	Region string `json:"region" validate:"omitempty,region"`
}

type PostParseResponse struct {
	Record *models.NumberRecord `json:"record,omitempty"`

	Error string `json:"error,omitempty"`

	Parsed bool `json:"parsed"`
}

func (s *Server) PostParse(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req PostParseRequest
	var resp PostParseResponse

	logger.Info("handling parse request")

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithError(err).Error("failed to decode request body")
		w.WriteHeader(http.StatusBadRequest)

		resp.Error = "Failed to read the parse request. Did you send it as JSON?"
		w.Write(Dump(resp))

		return
	}

	// Same as the command line, `de` means `DE`.
	req.Region = strings.ToUpper(req.Region)

	if err := s.validate.Struct(req); err != nil {
		logger.WithError(err).Info("rejected parse request")
		w.WriteHeader(http.StatusBadRequest)

		resp.Error = validationMessage(err)
		w.Write(Dump(resp))

		return
	}

	formatter := s.formatter

	if req.Region != "" {
		formatter.Region = req.Region
	}

	rec, err := formatter.Decompose(req.Number)

	if err != nil {
		var pe *phone.ParseError

		if errors.As(err, &pe) {
			logger.WithError(err).WithField("region", formatter.Region).Info("failed to parse phone number")
			w.WriteHeader(http.StatusBadRequest)
		} else if phone.IsValidationError(err) {
			logger.WithField("region", formatter.Region).Info("invalid phone number")
			w.WriteHeader(http.StatusPreconditionFailed)
		} else {
			logger.WithError(err).Error("failed to decompose phone number")
			w.WriteHeader(http.StatusInternalServerError)
		}

		resp.Error = err.Error()
		w.Write(Dump(resp))

		return
	}

	resp.Record = &rec
	resp.Parsed = true

	w.Write(Dump(resp))
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors

	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	switch verrs[0].Field() {
	case "Number":
		return "A number is required."
	case "Region":
		return "Unknown region."
	default:
		return err.Error()
	}
}

type GetHealthResponse struct {
	OK bool `json:"ok"`
}

func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	logger.Debug("checking health")
	w.Write(Dump(GetHealthResponse{true}))
}
