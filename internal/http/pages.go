package http

import (
	"html/template"
	"net/http"
)

// PageHandler is the placeholder document server behind the gate. The real
// UI is rendered client-side; the backend only needs to answer page
// requests that survived the gate with a document shell.
type PageHandler struct{}

var pageTemplate = template.Must(template.New("page").Parse(
	`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>JobLink</title></head>
<body data-path="{{.Path}}"><div id="app"></div></body>
</html>
`))

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = pageTemplate.Execute(w, struct{ Path string }{Path: r.URL.Path})
}
