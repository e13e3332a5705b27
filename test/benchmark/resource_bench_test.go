package benchmark

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/insurely/sales-service/internal/adapters/http"
	"github.com/insurely/sales-service/internal/adapters/http/handlers"
	"github.com/insurely/sales-service/internal/adapters/storage"
	"github.com/insurely/sales-service/internal/app"
	"github.com/insurely/sales-service/internal/platform/config"
)

// setupResourceRouter wires the resource API against an in-memory database
// and seeds one customer, returning the engine and the seeded id.
func setupResourceRouter(b *testing.B) (*gin.Engine, string) {
	b.Helper()

	db, err := storage.Open(&config.StorageConfig{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		b.Fatalf("opening storage: %v", err)
	}
	b.Cleanup(func() { _ = db.Close() })

	customers := storage.NewCustomerRepository(db)
	quotations := storage.NewQuotationRepository(db)
	subscriptions := storage.NewSubscriptionRepository(db)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:              logger,
		AppConfig:           &config.AppConfig{Name: "sales-service", Version: "bench", Environment: "test"},
		CustomerHandler:     handlers.NewCustomerHandler(app.NewCustomerService(customers, &app.CustomerServiceConfig{Logger: logger})),
		QuotationHandler:    handlers.NewQuotationHandler(app.NewQuotationService(quotations, customers, &app.QuotationServiceConfig{Logger: logger})),
		SubscriptionHandler: handlers.NewSubscriptionHandler(app.NewSubscriptionService(subscriptions, quotations, &app.SubscriptionServiceConfig{Logger: logger})),
		Timeout:             30 * time.Second,
	})

	body := []byte(`{"firstName":"Jane","lastName":"Doe","birthDate":"1990-04-01"}`)
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		b.Fatalf("seeding customer: status %d: %s", w.Code, w.Body.String())
	}

	var created map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		b.Fatalf("decoding seed response: %v", err)
	}

	return engine, created["id"].(string)
}

// BenchmarkCustomerGet measures a single-item read through the full stack:
// routing, middleware, service, repository and response rendering.
func BenchmarkCustomerGet(b *testing.B) {
	engine, id := setupResourceRouter(b)
	req := httptest.NewRequest(http.MethodGet, "/customers/"+id, http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
	}
}

// BenchmarkCustomerList measures the collection endpoint.
func BenchmarkCustomerList(b *testing.B) {
	engine, _ := setupResourceRouter(b)
	req := httptest.NewRequest(http.MethodGet, "/customers", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
	}
}

// BenchmarkCustomerCreate measures the write path including validation
// and identifier issuance.
func BenchmarkCustomerCreate(b *testing.B) {
	engine, _ := setupResourceRouter(b)
	body := []byte(`{"firstName":"Load","lastName":"Test"}`)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
	}
}

// BenchmarkCustomerValidationFailure measures the rejection path, which
// should not touch the database.
func BenchmarkCustomerValidationFailure(b *testing.B) {
	engine, _ := setupResourceRouter(b)
	body := []byte(`{"firstName":"Jane","lastName":"Doe","birthDate":"2999-01-01"}`)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
	}
}
