package ui

import (
	"embed"
	"io/fs"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/bradhe/phone-number-parser/pkg/logs"
)

var logger = logs.WithPackage("ui")

const DefaultBasedir = "pkg/ui/dist"

const AssetPrefix = "dist"

//go:embed dist
var compiled embed.FS

// Handler serves the browser form. Assets come out of the binary unless
// DevelopmentMode is set, then they are read from Basedir on every request so
// edits show up without a rebuild.
type Handler struct {
	DevelopmentMode bool
	Basedir         string
}

func NewHandler(development bool) Handler {
	return Handler{DevelopmentMode: development, Basedir: DefaultBasedir}
}

func (h Handler) assets() fs.FS {
	if h.DevelopmentMode {
		return os.DirFS(h.Basedir)
	}

	sub, err := fs.Sub(compiled, AssetPrefix)

	if err != nil {
		panic(err)
	}

	return sub
}

// lookup resolves a request to an asset name and reports whether that asset
// exists as a regular file.
func (h Handler) lookup(u *url.URL) (string, bool) {
	name := assetName(u)
	info, err := fs.Stat(h.assets(), name)

	return name, err == nil && !info.IsDir()
}

func (h Handler) IsAssetRequest(r *http.Request) bool {
	_, ok := h.lookup(r.URL)
	return ok
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, ok := h.lookup(r.URL)

	if !ok {
		logger.WithField("development", h.DevelopmentMode).Infof("no asset for `%s`", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	buf, err := fs.ReadFile(h.assets(), name)

	if err != nil {
		logger.WithError(err).Errorf("failed to read asset `%s`", name)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mime.TypeByExtension(path.Ext(name)))
	w.Write(buf)
}

// assetName maps a request path to a name inside the asset tree. Cleaning it
// first keeps `..` from climbing out of Basedir.
func assetName(u *url.URL) string {
	name := strings.TrimPrefix(path.Clean("/"+u.Path), "/")

	if name == "" {
		return "index.html"
	}

	return name
}
