package server

import (
	"encoding/json"
	"net/http"

	"github.com/bradhe/phone-number-parser/pkg/phone"
	"github.com/bradhe/stopwatch"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

func newLoggedHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(RequestIDHeader)

		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, id)
		wrapper := newLoggingResponseWriter(w)

		defer stopwatch.Start().Timer(func(watch stopwatch.Watch) {
			logger.WithFields(map[string]interface{}{
				"request_id": id,
				"status":     wrapper.StatusCode,
				"bytes":      bytes(wrapper.Bytes, req.ContentLength),
				"time":       watch,
			}).Infof("served %s %s to %s", req.Method, req.URL.Path, req.RemoteAddr)
		})

		h.ServeHTTP(wrapper, req)
	})
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Only fails if the tag is registered twice.
	if err := v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return phone.SupportedRegion(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

func Dump(obj interface{}) []byte {
	if buf, err := json.Marshal(obj); err != nil {
		panic(err)
	} else {
		return buf
	}
}
