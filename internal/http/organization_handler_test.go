package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrganizations_RequiresBuildingID(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := doRequest(t, router, "/api/v1/organizations", testAPIKey)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "building_id must be a positive integer", decodeBody(t, rec)["detail"])
}

func TestListOrganizations_UnknownBuilding(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := doRequest(t, router, "/api/v1/organizations?building_id=999", testAPIKey)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOrganizations(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := doRequest(t, router, "/api/v1/organizations?building_id=100", testAPIKey)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["total"])

	items := body["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "ООО АвтоМир", items[0].(map[string]any)["name"])

	horns := items[1].(map[string]any)
	assert.Equal(t, "ООО Рога и Копыта", horns["name"])
	phones := horns["phones"].([]any)
	assert.Equal(t, []any{"+7-495-111-2233", "+7-495-111-4455"}, phones)
	building := horns["building"].(map[string]any)
	assert.Equal(t, float64(100), building["id"])
	activities := horns["activities"].([]any)
	require.Len(t, activities, 1)
	assert.Equal(t, "Мясная продукция", activities[0].(map[string]any)["name"])
}

func TestListOrganizations_ActivityFilter(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	// parent activity matches the org tagged with its child
	rec := doRequest(t, router, "/api/v1/organizations?building_id=100&activity_id=10", testAPIKey)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "ООО Рога и Копыта", items[0].(map[string]any)["name"])
}

func TestSearch_ByQuery(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := doRequest(t, router, "/api/v1/organizations/search?query=авто", testAPIKey)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "ООО АвтоМир", items[0].(map[string]any)["name"])
}

func TestSearch_EmptyQuery(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := doRequest(t, router, "/api/v1/organizations/search?query=", testAPIKey)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "query must not be empty", decodeBody(t, rec)["detail"])
}

func TestSearch_Circle(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := doRequest(t, router, "/api/v1/organizations/search?lat=55.751&lon=37.618&radius_km=1", testAPIKey)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["total"])
}

func TestSearch_PartialCircle(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := doRequest(t, router, "/api/v1/organizations/search?lat=55.751&lon=37.618", testAPIKey)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "lat, lon and radius_km must be provided together", decodeBody(t, rec)["detail"])
}

func TestSearch_NonPositiveRadius(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := doRequest(t, router, "/api/v1/organizations/search?lat=55.751&lon=37.618&radius_km=0", testAPIKey)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "radius_km must be positive", decodeBody(t, rec)["detail"])
}

func TestSearch_PartialBoundingBox(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := doRequest(t, router, "/api/v1/organizations/search?min_lat=55.7&max_lat=55.8", testAPIKey)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "min_lat, max_lat, min_lon and max_lon must be provided together", decodeBody(t, rec)["detail"])
}

func TestSearch_InvertedBoundingBox(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := doRequest(t, router, "/api/v1/organizations/search?min_lat=55.8&max_lat=55.7&min_lon=37.6&max_lon=37.7", testAPIKey)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "min coordinates must not exceed max coordinates", decodeBody(t, rec)["detail"])
}

func TestGetOrganizationByID(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := doRequest(t, router, "/api/v1/organizations/1000", testAPIKey)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1000), body["id"])
	assert.Equal(t, "ООО Рога и Копыта", body["name"])
	require.NotNil(t, body["building"])
}

func TestGetOrganizationByID_NotFound(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := doRequest(t, router, "/api/v1/organizations/9999", testAPIKey)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrganizationByID_BadID(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := doRequest(t, router, "/api/v1/organizations/abc", testAPIKey)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "organization id must be a positive integer", decodeBody(t, rec)["detail"])
}
