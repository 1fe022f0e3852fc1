package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/craftping/mc-status-go/internal/normalize"
)

//go:embed templates/*.html
var templateFS embed.FS

var statusPage = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// pageData feeds the status page template. The default server is injected
// from config at startup; the page holds no server-side state.
type pageData struct {
	HasDefault      bool
	DefaultHost     string
	DefaultEdition  string
	DefaultPort     int
	JavaPort        int
	BedrockPort     int
	RefreshInterval int
}

// handleStatusPage renders the embedded status page. All checking happens
// client-side against /check; this handler only bakes in the defaults.
func (s *Server) handleStatusPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		JavaPort:        normalize.DefaultJavaPort,
		BedrockPort:     normalize.DefaultBedrockPort,
		RefreshInterval: s.config.GetRefreshInterval(),
	}
	if def, ok := s.config.GetDefaultServer(); ok {
		data.HasDefault = true
		data.DefaultHost = def.Host
		data.DefaultEdition = def.Edition
		data.DefaultPort = def.Port
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := statusPage.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
