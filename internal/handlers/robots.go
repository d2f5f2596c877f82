package handlers

import "net/http"

// The admin surfaces stay out of search indexes; everything else is crawlable.
const robotsTxt = `User-agent: *
Allow: /
Disallow: /api/
Disallow: /admin/
Disallow: /edit/
Disallow: /login/
`

func (s *Server) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(robotsTxt))
}
