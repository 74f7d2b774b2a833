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

import "github.com/riskatlas/poifetch/pkg/poi"

// typePriority decides a feature's Type: the first of these tag keys with a
// non-empty value wins. The order is fixed for output stability, do not
// reorder.
var typePriority = []string{
	"amenity",
	"shop",
	"tourism",
	"railway",
	"man_made",
	"power",
	"landuse",
	"healthcare",
}

// CategorizedFeatures groups parsed features by category name. Only
// categories that matched at least one feature appear.
type CategorizedFeatures map[string][]poi.Feature

// ParseFeatures flattens a response into normalized features. A response
// without elements yields an empty result, not an error. Elements that are
// neither nodes nor ways, or whose coordinates cannot be determined, are
// skipped silently.
func ParseFeatures(resp *Response) []poi.Feature {
	features := []poi.Feature{}
	if resp == nil {
		return features
	}

	for _, el := range resp.Elements {
		var lat, lon *float64
		switch el.Type {
		case "node":
			lat, lon = el.Lat, el.Lon
		case "way":
			if el.Center != nil {
				lat, lon = el.Center.Lat, el.Center.Lon
			}
		default:
			continue
		}
		if lat == nil || lon == nil {
			continue
		}

		tags := el.Tags
		if tags == nil {
			tags = map[string]string{}
		}

		features = append(features, poi.Feature{
			ID:   el.ID,
			Name: featureName(tags),
			Type: featureType(tags),
			Lat:  *lat,
			Lon:  *lon,
			Tags: tags,
		})
	}
	return features
}

// ParseBatchFeatures partitions a batch response by category. Each feature
// goes to the first category of the composed table whose tag pair it carries;
// features matching no category are dropped even though ParseFeatures would
// keep them.
func ParseBatchFeatures(resp *Response) CategorizedFeatures {
	out := CategorizedFeatures{}
	for _, f := range ParseFeatures(resp) {
		if c, ok := CategoryFor(f.Tags); ok {
			out[c.Name] = append(out[c.Name], f)
		}
	}
	return out
}

func featureName(tags map[string]string) string {
	if name, ok := tags["name"]; ok {
		return name
	}
	return "Unnamed"
}

func featureType(tags map[string]string) string {
	for _, key := range typePriority {
		if v := tags[key]; v != "" {
			return v
		}
	}
	return "unknown"
}
