package httpapi

import (
	"net/http"
	"strconv"

	"tenant-directory/internal/domain"
	"tenant-directory/internal/service"

	"go.uber.org/zap"
)

type OrganizationHandler struct {
	organizations service.OrganizationService
	logger        *zap.Logger
}

func NewOrganizationHandler(organizations service.OrganizationService, logger *zap.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		organizations: organizations,
		logger:        logger,
	}
}

// ListForBuilding handles GET /api/v1/organizations?building_id=&activity_id=&limit=&offset=.
func (h *OrganizationHandler) ListForBuilding(w http.ResponseWriter, r *http.Request) {
	buildingID, ok := positiveIDParam(w, r, "building_id")
	if !ok {
		return
	}
	activityID, ok := optionalPositiveIDParam(w, r, "activity_id")
	if !ok {
		return
	}
	limit, offset, ok := paginationParams(w, r, 100)
	if !ok {
		return
	}

	orgs, err := h.organizations.ListForBuilding(r.Context(), buildingID, activityID, limit, offset)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeOrganizationList(w, orgs, limit, offset)
}

// Search handles GET /api/v1/organizations/search with the combined
// geo/text/activity filters. Partial geo parameter groups are rejected here,
// before any storage call.
func (h *OrganizationHandler) Search(w http.ResponseWriter, r *http.Request) {
	filters, ok := h.parseSearchFilters(w, r)
	if !ok {
		return
	}
	limit, offset, ok := paginationParams(w, r, 100)
	if !ok {
		return
	}

	orgs, err := h.organizations.Search(r.Context(), filters, limit, offset)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeOrganizationList(w, orgs, limit, offset)
}

// Get handles GET /api/v1/organizations/{id}.
func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusUnprocessableEntity, "organization id must be a positive integer")
		return
	}
	org, err := h.organizations.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, organizationToJSON(org))
}

// parseSearchFilters validates the all-or-nothing circle and bounding-box
// groups independently; both may be present. On a violation it writes the
// 422 itself and returns ok=false.
func (h *OrganizationHandler) parseSearchFilters(w http.ResponseWriter, r *http.Request) (service.SearchFilters, bool) {
	filters := service.SearchFilters{}

	q := r.URL.Query()
	if q.Has("query") {
		if q.Get("query") == "" {
			writeError(w, http.StatusUnprocessableEntity, "query must not be empty")
			return filters, false
		}
		filters.Query = q.Get("query")
	}

	activityID, ok := optionalPositiveIDParam(w, r, "activity_id")
	if !ok {
		return filters, false
	}
	filters.ActivityID = activityID

	lat, ok := optionalFloatParam(w, r, "lat")
	if !ok {
		return filters, false
	}
	lon, ok := optionalFloatParam(w, r, "lon")
	if !ok {
		return filters, false
	}
	radiusKm, ok := optionalFloatParam(w, r, "radius_km")
	if !ok {
		return filters, false
	}
	circleGiven := 0
	for _, p := range []*float64{lat, lon, radiusKm} {
		if p != nil {
			circleGiven++
		}
	}
	if circleGiven > 0 && circleGiven < 3 {
		writeError(w, http.StatusUnprocessableEntity,
			"lat, lon and radius_km must be provided together")
		return filters, false
	}
	if circleGiven == 3 {
		if *radiusKm <= 0 {
			writeError(w, http.StatusUnprocessableEntity, "radius_km must be positive")
			return filters, false
		}
		filters.Circle = &service.CircleFilter{Lat: *lat, Lon: *lon, RadiusKm: *radiusKm}
	}

	minLat, ok := optionalFloatParam(w, r, "min_lat")
	if !ok {
		return filters, false
	}
	maxLat, ok := optionalFloatParam(w, r, "max_lat")
	if !ok {
		return filters, false
	}
	minLon, ok := optionalFloatParam(w, r, "min_lon")
	if !ok {
		return filters, false
	}
	maxLon, ok := optionalFloatParam(w, r, "max_lon")
	if !ok {
		return filters, false
	}
	boxGiven := 0
	for _, p := range []*float64{minLat, maxLat, minLon, maxLon} {
		if p != nil {
			boxGiven++
		}
	}
	if boxGiven > 0 && boxGiven < 4 {
		writeError(w, http.StatusUnprocessableEntity,
			"min_lat, max_lat, min_lon and max_lon must be provided together")
		return filters, false
	}
	if boxGiven == 4 {
		if *minLat > *maxLat || *minLon > *maxLon {
			writeError(w, http.StatusUnprocessableEntity,
				"min coordinates must not exceed max coordinates")
			return filters, false
		}
		filters.Bounds = &service.BoundsFilter{MinLat: *minLat, MaxLat: *maxLat, MinLon: *minLon, MaxLon: *maxLon}
	}

	return filters, true
}

func writeOrganizationList(w http.ResponseWriter, orgs []*domain.Organization, limit, offset int) {
	items := make([]any, 0, len(orgs))
	for _, org := range orgs {
		items = append(items, organizationToJSON(org))
	}
	writeJSON(w, http.StatusOK, listResult{Total: len(items), Items: items, Limit: limit, Offset: offset})
}

func organizationToJSON(org *domain.Organization) map[string]any {
	activities := make([]any, 0, len(org.Activities))
	for _, a := range org.Activities {
		activities = append(activities, map[string]any{
			"id":        a.ID,
			"name":      a.Name,
			"level":     a.Level,
			"parent_id": a.ParentID,
		})
	}
	phones := org.Phones
	if phones == nil {
		phones = []string{}
	}
	return map[string]any{
		"id":         org.ID,
		"name":       org.Name,
		"phones":     phones,
		"building":   buildingToJSON(org.Building),
		"activities": activities,
	}
}
