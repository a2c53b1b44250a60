package server

import (
	"net/http"

	"github.com/bradhe/phone-number-parser/pkg/logs"
	"github.com/bradhe/phone-number-parser/pkg/phone"
	"github.com/bradhe/phone-number-parser/pkg/ui"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var logger = logs.WithPackage("server")

type Server struct {
	formatter phone.Formatter
	validate  *validator.Validate
	server    *http.Server

	apiHandler http.Handler
	uiHandler  ui.Handler
}

func (s *Server) ListenAndServe(addr string) error {
	s.server.Addr = addr
	logger.Infof("starting HTTP server on %s", addr)
	return s.server.ListenAndServe()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.uiHandler.IsAssetRequest(r) {
		s.uiHandler.ServeHTTP(w, r)
	} else {
		s.apiHandler.ServeHTTP(w, r)
	}
}

// Handler is the full request pipeline, logging included.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func NewServer(formatter phone.Formatter, development bool, assetBasedir string) *Server {
	server := &Server{
		formatter: formatter,
		validate:  newValidator(),
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/health", server.GetHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/parse", server.PostParse).Methods(http.MethodPost)

	base := &http.Server{
		Handler: newLoggedHandler(server),
	}

	server.server = base
	server.apiHandler = r

	server.uiHandler = ui.NewHandler(development)

	if assetBasedir != "" {
		server.uiHandler.Basedir = assetBasedir
	}

	return server
}
