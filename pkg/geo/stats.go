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

package geo

import "github.com/riskatlas/poifetch/pkg/poi"

// Stats summarizes one download result within its bounding box.
type Stats struct {
	Total   int
	AreaKm2 float64
	Density float64
	ByType  map[string]int
}

// Density returns POIs per square kilometer, 0 for a degenerate area.
func Density(count int, areaKm2 float64) float64 {
	if areaKm2 == 0 {
		return 0
	}
	return float64(count) / areaKm2
}

// Collect computes count, covered area, density and a per-type breakdown.
func Collect(features []poi.Feature, bbox BoundingBox) Stats {
	s := Stats{
		Total:   len(features),
		AreaKm2: bbox.AreaKm2(),
		ByType:  make(map[string]int),
	}
	s.Density = Density(s.Total, s.AreaKm2)
	for _, f := range features {
		s.ByType[f.Type]++
	}
	return s
}

// FeatureBounds returns the envelope of all feature coordinates. ok is false
// for an empty set.
func FeatureBounds(features []poi.Feature) (bbox BoundingBox, ok bool) {
	if len(features) == 0 {
		return BoundingBox{}, false
	}

	first := features[0]
	bbox = BoundingBox{South: first.Lat, West: first.Lon, North: first.Lat, East: first.Lon}
	for _, f := range features[1:] {
		if f.Lat < bbox.South {
			bbox.South = f.Lat
		}
		if f.Lat > bbox.North {
			bbox.North = f.Lat
		}
		if f.Lon < bbox.West {
			bbox.West = f.Lon
		}
		if f.Lon > bbox.East {
			bbox.East = f.Lon
		}
	}
	return bbox, true
}
