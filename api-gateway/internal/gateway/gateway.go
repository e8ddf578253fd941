package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"qr-dine/config"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL     string
	AnalyticsSvcURL string
	NotifySvcURL    string
	FrontendDir     string
}

type Gateway struct {
	config Config
	client HTTPClient
}

var (
	analyticsPath = regexp.MustCompile(`^/api/restaurants/[0-9]+/analytics(/|$)`)
	livePath      = regexp.MustCompile(`^/api/restaurants/[0-9]+/live$`)
)

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	})
}

// Upstream picks the service that owns an API path. Everything not claimed
// by analytics or the live feed belongs to order-svc.
func (g *Gateway) Upstream(path string) (string, bool) {
	switch {
	case analyticsPath.MatchString(path):
		return g.config.AnalyticsSvcURL, true
	case livePath.MatchString(path):
		return g.config.NotifySvcURL, true
	case strings.HasPrefix(path, "/api/"), strings.HasPrefix(path, "/uploads/"):
		return g.config.OrderSvcURL, true
	}
	return "", false
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Str("upstream", targetURL).Msg("proxy")

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Error().Err(err).Msg("failed to create upstream request")
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("upstream", targetURL).Msg("failed to proxy request")
		writeError(w, http.StatusBadGateway, "bad_gateway", "upstream service unavailable")
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream") {
		streamBody(w, resp.Body)
		return
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Error().Err(err).Msg("failed to copy response")
	}
}

// streamBody forwards an event stream chunk by chunk so updates are not held
// back in the response buffer.
func streamBody(w http.ResponseWriter, body io.Reader) {
	flusher, _ := w.(http.Flusher)
	buf := make([]byte, 4096)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}
		if err != nil {
			return
		}
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	if upstream, ok := g.Upstream(r.URL.Path); ok {
		g.ProxyRequest(w, r, upstream)
		return
	}

	if g.config.FrontendDir == "" {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
		return
	}
	http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, "index.html"))
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.Use(config.RequestLogger)
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	if g.config.FrontendDir != "" {
		r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))
	}
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	encoded, err := json.Marshal(body)
	if err != nil {
		log.Error().Err(err).Int("status", status).Msg("failed to encode response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"internal","message":"internal server error"}}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(encoded, '\n'))
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]map[string]string{
		"error": {"code": code, "message": message},
	})
}
