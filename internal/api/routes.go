package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/vocabflash/internal/errors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		if s.RequestTimeout > 0 {
			r.Use(timeoutMiddleware(s.RequestTimeout))
		}

		r.Get("/study/today", s.handleToday)
		r.Post("/study/mark-studied", s.handleMarkStudied)
		r.Get("/study/history/{filename}", s.handleHistory)

		r.Post("/extract", s.handleExtract)
		r.Post("/lookup", s.handleLookup)

		r.Post("/save-vocabulary", s.handleSaveVocabulary)
		r.Get("/vocabulary-files", s.handleListVocabulary)
		r.Get("/vocabulary-files/{filename}", s.handleGetVocabulary)
		r.Delete("/vocabulary-files/{filename}", s.handleDeleteVocabulary)

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			handleError(w, r, errors.NewNotFoundError("route", r.URL.Path))
		})
	})

	if s.StaticDir != "" {
		r.Handle("/*", staticHandler(s.StaticDir))
	}
	return r
}

// staticHandler serves dir, resolving extensionless paths to their .html page.
func staticHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clean := path.Clean("/" + r.URL.Path)
		if clean != "/" && path.Ext(clean) == "" {
			page := filepath.Join(dir, filepath.FromSlash(clean)+".html")
			if info, err := os.Stat(page); err == nil && !info.IsDir() {
				http.ServeFile(w, r, page)
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}
