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

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// kmPerDegreeLat is the north-south extent of one degree of latitude.
// Longitude degrees shrink with cos(latitude).
const kmPerDegreeLat = 111.32

// BoundingBox is an axis-aligned WGS84 rectangle. South must stay below North
// and West below East; boxes crossing the antimeridian are not supported.
type BoundingBox struct {
	South float64
	West  float64
	North float64
	East  float64
}

// ParseBoundingBox reads a "south,west,north,east" string, the format used by
// the --bbox flag.
func ParseBoundingBox(s string) (BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BoundingBox{}, fmt.Errorf("bounding box needs 4 comma-separated values, got %d", len(parts))
	}

	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BoundingBox{}, fmt.Errorf("bounding box value %q is not a number", p)
		}
		vals[i] = v
	}

	return BoundingBox{South: vals[0], West: vals[1], North: vals[2], East: vals[3]}, nil
}

// Validate checks coordinate ranges and bound ordering. The query pipeline
// assumes a valid box and does not check again.
func (b BoundingBox) Validate() error {
	if b.South < -90 || b.North > 90 {
		return fmt.Errorf("latitude out of range: south=%v north=%v", b.South, b.North)
	}
	if b.West < -180 || b.East > 180 {
		return fmt.Errorf("longitude out of range: west=%v east=%v", b.West, b.East)
	}
	if b.South >= b.North {
		return fmt.Errorf("south (%v) must be less than north (%v)", b.South, b.North)
	}
	if b.West >= b.East {
		return fmt.Errorf("west (%v) must be less than east (%v)", b.West, b.East)
	}
	return nil
}

// AreaKm2 approximates the box area in square kilometers, scaling longitude
// at the box's middle latitude.
func (b BoundingBox) AreaKm2() float64 {
	midLat := (b.South + b.North) / 2

	heightKm := (b.North - b.South) * kmPerDegreeLat
	widthKm := (b.East - b.West) * kmPerDegreeLat * math.Cos(midLat*math.Pi/180)

	return heightKm * widthKm
}
