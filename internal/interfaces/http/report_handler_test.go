package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakwerk/magazijn-api/internal/application/packing"
	"github.com/pakwerk/magazijn-api/internal/domain/entity"
	apphttp "github.com/pakwerk/magazijn-api/internal/interfaces/http"
)

type stubQueueRepo struct {
	open []entity.QueueItem
}

func (r *stubQueueRepo) ListOpen(ctx context.Context) ([]entity.QueueItem, error) {
	return r.open, nil
}

func (r *stubQueueRepo) ListOpenAddedUpTo(ctx context.Context, upTo time.Time) ([]entity.QueueItem, error) {
	return r.open, nil
}

type stubPackedRepo struct {
	packed []entity.PackedRecord
}

func (r *stubPackedRepo) ListPackedBetween(ctx context.Context, from, to time.Time) ([]entity.PackedRecord, error) {
	return r.packed, nil
}

func (r *stubPackedRepo) ListPackedUpTo(ctx context.Context, upTo time.Time) ([]entity.PackedRecord, error) {
	return r.packed, nil
}

func buildReportApp(queue *stubQueueRepo, packed *stubPackedRepo) *fiber.App {
	uc := packing.NewReportUseCase(queue, packed, packing.VariantPrepack, 3)
	h := apphttp.NewReportHandler(uc, uc, nil)

	app := fiber.New()
	app.Get("/api/items-to-pack/report", h.DailyReport)
	return app
}

func TestReportHandler_MissingDateReturns400(t *testing.T) {
	app := buildReportApp(&stubQueueRepo{}, &stubPackedRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/items-to-pack/report", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "MISSING_DATE", body["code"])
}

func TestReportHandler_MalformedDateReturns400(t *testing.T) {
	app := buildReportApp(&stubQueueRepo{}, &stubPackedRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/items-to-pack/report?date=10-06-2024", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_DATE", body["code"])
}

func TestReportHandler_ReturnsReportJSON(t *testing.T) {
	queue := &stubQueueRepo{open: []entity.QueueItem{
		{ID: 1, Amount: 10, DateAdded: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)},
		{ID: 2, Amount: 5, Priority: true, DateAdded: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)},
	}}
	packed := &stubPackedRepo{packed: []entity.PackedRecord{
		{ID: 3, Amount: 7, DatePacked: time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)},
	}}
	app := buildReportApp(queue, packed)

	req := httptest.NewRequest(http.MethodGet, "/api/items-to-pack/report?date=2024-06-10", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2024-06-10", body["date"])
	assert.Equal(t, float64(15), body["totalQuantity"])
	assert.Equal(t, float64(10), body["backlogQuantity"])
	assert.Equal(t, float64(5), body["priorityQuantity"])
	assert.Equal(t, float64(7), body["packedQuantity"])
}
