package domain

// Organization is a tenant of a building (organizations table).
// Repositories return it eagerly loaded: Building set, Phones ordered by
// phone string, Activities ordered by (level, name).
type Organization struct {
	ID         int64
	Name       string
	BuildingID int64
	Building   *Building
	Phones     []string
	Activities []Activity
}
