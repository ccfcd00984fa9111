package lingo

import (
	"net/http"
)

// LanguagePreferencesFromRequest collects the caller's language wishes
// from an HTTP request: an explicit lang form value first, then the
// Accept-Language header.
func LanguagePreferencesFromRequest(req *http.Request) []string {
	var preferences []string

	if lang := req.FormValue("lang"); lang != "" {
		preferences = append(preferences, lang)
	}

	if header := req.Header.Get("Accept-Language"); header != "" {
		preferences = append(preferences, header)
	}

	return preferences
}

// HTTPMiddleware mints a language context per request from its language
// preferences and stores it on the request context.
func (s *Service) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lc := s.ContextFor(LanguagePreferencesFromRequest(r)...)

		r = r.WithContext(ToContext(r.Context(), lc))

		next.ServeHTTP(w, r)
	})
}
