// Package refdata holds the static reference data the storefront renders
// without backend involvement: the serviced NZ locations and the visual
// style table for service categories. A built-in dataset ships with the
// binary; deployments can override it with a JSON file on disk or in S3.
package refdata

import (
	"context"

	"storefront/internal/model"
)

// CategoryStyle describes how a category is rendered on the landing page.
type CategoryStyle struct {
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Gradient string `json:"gradient"`
}

// Set is a complete reference dataset.
type Set struct {
	Locations      []model.Location         `json:"locations"`
	CategoryStyles map[string]CategoryStyle `json:"category_styles,omitempty"`
}

// Loader loads a reference dataset from a source (a file path or an S3 key,
// depending on the implementation).
type Loader interface {
	Load(ctx context.Context, source string) (*Set, error)
}

// defaultStyle is used for categories with no explicit style entry.
var defaultStyle = CategoryStyle{
	Icon:     "briefcase",
	Color:    "slate",
	Gradient: "from-slate-400 to-slate-600",
}

// LocationByID finds a location by identifier.
func (s *Set) LocationByID(id string) (model.Location, bool) {
	for _, loc := range s.Locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return model.Location{}, false
}

// ActiveLocations returns the locations that are currently selectable.
func (s *Set) ActiveLocations() []model.Location {
	active := make([]model.Location, 0, len(s.Locations))
	for _, loc := range s.Locations {
		if loc.Active {
			active = append(active, loc)
		}
	}
	return active
}

// GroupByRegion groups locations by region, preserving dataset order.
func (s *Set) GroupByRegion() []model.LocationGroup {
	var groups []model.LocationGroup
	index := make(map[string]int)

	for _, loc := range s.Locations {
		i, ok := index[loc.Region]
		if !ok {
			i = len(groups)
			index[loc.Region] = i
			groups = append(groups, model.LocationGroup{
				Region: loc.Region,
				Island: loc.Island,
			})
		}
		groups[i].Locations = append(groups[i].Locations, loc)
	}
	return groups
}

// StyleFor returns the style for a category name, falling back to a
// neutral default for unknown categories.
func (s *Set) StyleFor(categoryName string) CategoryStyle {
	if style, ok := s.CategoryStyles[categoryName]; ok {
		return style
	}
	return defaultStyle
}
