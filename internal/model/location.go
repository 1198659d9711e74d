package model

// Location is a selectable service area. Locations are client-side
// reference data; the backend does not model them. Inactive entries are
// shown as "coming soon" and must not be selectable.
type Location struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
	Island string `json:"island"`
	Active bool   `json:"active"`
}

// LocationGroup is a region with its locations, used by the landing view.
type LocationGroup struct {
	Region    string     `json:"region"`
	Island    string     `json:"island"`
	Locations []Location `json:"locations"`
}
