package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfieldmedia/richtext-go/internal/application/services"
	"github.com/oakfieldmedia/richtext-go/internal/infrastructure/observability/logging"
	"github.com/oakfieldmedia/richtext-go/internal/infrastructure/tabular"
	"github.com/oakfieldmedia/richtext-go/internal/presentation/http/handlers"
)

func newTestEngine(t *testing.T, cfg Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// gin-contrib/cors rejects an empty origin list
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}

	logger := logging.NewChanneledLogger(&logging.LoggerConfig{})
	materializer := services.NewSpreadsheetMaterializer(nil, tabular.NewCSVParser(), logger)
	renderService := services.NewRenderService(logger, materializer, "payments@example.net")

	r := gin.New()
	Register(r, handlers.NewRenderHandlers(renderService, logger), cfg)
	return r
}

func doRequest(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const simpleDoc = `{
	"document": {
		"nodeType": "document",
		"content": [
			{"nodeType": "paragraph", "content": [{"nodeType": "text", "value": "hello"}]}
		]
	}
}`

func TestPostRenderReturnsHTMLFragment(t *testing.T) {
	r := newTestEngine(t, Config{})
	w := doRequest(r, http.MethodPost, "/api/v1/render", simpleDoc, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "<p>hello</p>", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestPostRenderVariant(t *testing.T) {
	r := newTestEngine(t, Config{})
	body := strings.Replace(simpleDoc, `"document": {`, `"variant": "compact", "document": {`, 1)
	w := doRequest(r, http.MethodPost, "/api/v1/render", body, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<p>hello</p>", w.Body.String())
}

func TestPostRenderRejectsBadRequests(t *testing.T) {
	r := newTestEngine(t, Config{})

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", "{not json"},
		{"missing document", `{"variant": "compact"}`},
		{"unknown variant", strings.Replace(simpleDoc, `"document"`, `"variant": "huge", "document"`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/v1/render", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPostRenderEmbeddedAssetOverTheWire(t *testing.T) {
	r := newTestEngine(t, Config{})
	body := `{
		"document": {
			"nodeType": "document",
			"content": [{
				"nodeType": "embedded-asset-block",
				"data": {"target": {"asset": {
					"id": "a1",
					"url": "//images.example.net/a1.jpg",
					"width": 800,
					"height": 400
				}}}
			}]
		}
	}`
	w := doRequest(r, http.MethodPost, "/api/v1/render", body, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "text-align: center")
	assert.Contains(t, w.Body.String(), `src="https://images.example.net/a1.jpg"`)
}

func TestRenderRequiresTokenWhenSecretConfigured(t *testing.T) {
	secret := "test-secret"
	r := newTestEngine(t, Config{JWTSecret: secret})

	w := doRequest(r, http.MethodPost, "/api/v1/render", simpleDoc, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	w = doRequest(r, http.MethodPost, "/api/v1/render", simpleDoc, map[string]string{
		"Authorization": "Bearer " + signed,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPostRenderRejectsOversizedBody(t *testing.T) {
	r := newTestEngine(t, Config{MaxDocumentBytes: 64})
	w := doRequest(r, http.MethodPost, "/api/v1/render", simpleDoc, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthStaysOpen(t *testing.T) {
	r := newTestEngine(t, Config{JWTSecret: "test-secret"})
	w := doRequest(r, http.MethodGet, "/api/v1/health", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestStaticBehaviorModuleServed(t *testing.T) {
	r := newTestEngine(t, Config{})
	w := doRequest(r, http.MethodGet, "/static/lightbox.v1.js", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "__rtLightboxV1")
}
