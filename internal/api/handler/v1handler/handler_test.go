package v1handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/internal/api/handler/v1handler"
	mockcatalog "bookstore/internal/catalog/mock"
	mocklending "bookstore/internal/lending/mock"
	"bookstore/pkg/logger"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

//nolint: gochecknoglobals
var json = jsoniter.ConfigCompatibleWithStandardLibrary

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type testDeps struct {
	lender  *mocklending.MockLender
	catalog *mockcatalog.MockCatalog
}

func newTestMux(t *testing.T) (testDeps, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		lender:  mocklending.NewMockLender(ctrl),
		catalog: mockcatalog.NewMockCatalog(ctrl),
	}

	return deps, v1handler.New(v1handler.Deps{
		Lender:  deps.lender,
		Catalog: deps.catalog,
	}).Mux()
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

type errBody struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errBody {
	t.Helper()

	var body errBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}
