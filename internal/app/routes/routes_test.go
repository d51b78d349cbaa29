package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/coursehub/backend/docs"
	"github.com/coursehub/backend/internal/app/controllers"
	"github.com/coursehub/backend/internal/app/routes"
	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type swaggerDoc struct {
	BasePath string                                `json:"basePath"`
	Paths    map[string]map[string]json.RawMessage `json:"paths"`
}

func readSwaggerDoc(t *testing.T) swaggerDoc {
	t.Helper()
	var doc swaggerDoc
	if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger doc is not valid JSON: %v", err)
	}
	return doc
}

// swaggerPath turns "/api/v1/home/:pages" into "/home/{pages}"
func swaggerPath(basePath, ginPath string) string {
	segments := strings.Split(strings.TrimPrefix(ginPath, basePath), "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

func newEngine() *gin.Engine {
	router := gin.New()
	routes.SetupRouter(router, &controllers.CourseAdminController{}, &controllers.CourseCatalogController{}, nil)
	return router
}

func TestSwaggerDocMatchesRoutes(t *testing.T) {
	doc := readSwaggerDoc(t)
	if doc.BasePath != "/api/v1" {
		t.Fatalf("unexpected basePath %q", doc.BasePath)
	}

	registered := make(map[string]bool)
	for _, r := range newEngine().Routes() {
		if !strings.HasPrefix(r.Path, doc.BasePath) || r.Path == doc.BasePath+"/health" {
			continue
		}
		path := swaggerPath(doc.BasePath, r.Path)
		method := strings.ToLower(r.Method)
		registered[method+" "+path] = true

		if _, ok := doc.Paths[path][method]; !ok {
			t.Fatalf("route %s %s is missing from the swagger doc", r.Method, r.Path)
		}
	}

	for path, ops := range doc.Paths {
		for method := range ops {
			if !registered[method+" "+path] {
				t.Fatalf("swagger doc lists %s %s but no route serves it", method, path)
			}
		}
	}
}

func TestHealth_WithoutCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	newEngine().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("expected 200 ok, got %d %s", rec.Code, rec.Body.String())
	}
}
