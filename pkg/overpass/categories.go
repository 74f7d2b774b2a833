// This file is part of poifetch (https://github.com/riskatlas/poifetch).
// Copyright (C) 2025 the poifetch authors (https://github.com/riskatlas).
//
// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the
// Free Software Foundation, version 3 of the License.
//
// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU Affero General Public License for more
// details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package overpass

import "strings"

// Category binds a user-facing name to the OSM tag pair it queries and the
// marker color exporters use for it.
type Category struct {
	Name  string
	Key   string
	Value string
	Color string
}

// DefaultColor marks categories outside the two tables below.
const DefaultColor = "#95a5a6"

// RiskZoneCategories lists industrial and transport sites relevant for risk
// assessment. These are slices, not maps: CategoryFor assigns each feature to
// the first matching entry, and that needs a stable scan order. Risk zones
// are scanned before VulnerablePopulationCategories.
var RiskZoneCategories = []Category{
	{Name: "factory", Key: "man_made", Value: "works", Color: "#e83971"},
	{Name: "gas station", Key: "amenity", Value: "fuel", Color: "#e17911"},
	{Name: "power plant", Key: "power", Value: "plant", Color: "#e64a19"},
	{Name: "power substation", Key: "power", Value: "substation", Color: "#cd6b21"},
	{Name: "railway station", Key: "railway", Value: "station", Color: "#ede77a"},
	{Name: "railway halt", Key: "railway", Value: "halt", Color: "#f0ce24"},
	{Name: "waterworks", Key: "man_made", Value: "water_works", Color: "#c62828"},
	{Name: "wastewater plant", Key: "man_made", Value: "wastewater_plant", Color: "#9c0202"},
	{Name: "industrial zone", Key: "landuse", Value: "industrial", Color: "#de4b48"},
}

// VulnerablePopulationCategories lists places that concentrate people who are
// hard to evacuate.
var VulnerablePopulationCategories = []Category{
	{Name: "school", Key: "amenity", Value: "school", Color: "#38bfec"},
	{Name: "kindergarten", Key: "amenity", Value: "kindergarten", Color: "#7677b4"},
	{Name: "hospital", Key: "amenity", Value: "hospital", Color: "#0d47a1"},
	{Name: "clinic", Key: "healthcare", Value: "clinic", Color: "#1e88e5"},
	{Name: "nursing home", Key: "amenity", Value: "nursing_home", Color: "#2e7d32"},
	{Name: "social facility", Key: "amenity", Value: "social_facility", Color: "#6be571"},
	{Name: "childcare", Key: "amenity", Value: "childcare", Color: "#8a4a9d"},
	{Name: "community centre", Key: "amenity", Value: "community_centre", Color: "#66d12d"},
}

var allCategories = append(append([]Category{}, RiskZoneCategories...), VulnerablePopulationCategories...)

// Categories returns a copy of the composed table, risk zones first.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Resolve maps a category name to its table entry. Lookup is
// case-insensitive; unknown names fall back to an amenity tag carrying the
// lowercased name itself.
func Resolve(name string) Category {
	n := strings.ToLower(name)
	for _, c := range allCategories {
		if c.Name == n {
			return c
		}
	}
	return Category{Name: n, Key: "amenity", Value: n, Color: DefaultColor}
}

// IsRiskZone reports whether name belongs to the risk-zone table.
func IsRiskZone(name string) bool {
	n := strings.ToLower(name)
	for _, c := range RiskZoneCategories {
		if c.Name == n {
			return true
		}
	}
	return false
}

// Matches reports whether the tag mapping carries this category's pair.
func (c Category) Matches(tags map[string]string) bool {
	return tags[c.Key] == c.Value
}

// CategoryFor returns the first entry of the composed table matching the tag
// mapping. Entries sharing a tag pair resolve to the earlier one.
func CategoryFor(tags map[string]string) (Category, bool) {
	for _, c := range allCategories {
		if c.Matches(tags) {
			return c, true
		}
	}
	return Category{}, false
}
