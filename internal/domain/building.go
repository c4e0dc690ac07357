package domain

// Building is a physical location with geocoordinates (buildings table).
// Owns organizations and tasks; deleting a building cascades to both.
type Building struct {
	ID        int64
	City      string
	Address   string
	Latitude  float64
	Longitude float64
}
