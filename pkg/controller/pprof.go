package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// DefaultPprofPrefix is where the profiling handlers are normally mounted.
const DefaultPprofPrefix = "/debug/pprof/"

// PprofMux returns an http.ServeMux with net/http/pprof handlers registered
// under prefix. The mux must be mounted at the same prefix, since pprof.Index
// resolves named profiles relative to "/debug/pprof/".
func PprofMux(prefix string) *http.ServeMux {
	if prefix == "" {
		prefix = DefaultPprofPrefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	mux := http.NewServeMux()

	mux.HandleFunc(prefix, pprof.Index)
	mux.HandleFunc(prefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(prefix+"profile", pprof.Profile)
	mux.HandleFunc(prefix+"symbol", pprof.Symbol)
	mux.HandleFunc(prefix+"trace", pprof.Trace)

	return mux
}
