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

package export

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/riskatlas/poifetch/pkg/overpass"
	"github.com/riskatlas/poifetch/pkg/poi"
)

// WriteGeoJSON emits features as a FeatureCollection of points. The attribute
// columns become properties; features of a known category additionally carry
// its name and a simplestyle marker-color.
func WriteGeoJSON(w io.Writer, features []poi.Feature) error {
	fc := geojson.NewFeatureCollection()

	for _, f := range features {
		gf := geojson.NewFeature(orb.Point{f.Lon, f.Lat})
		gf.Properties = geojson.Properties{
			"id":            f.ID,
			"name":          f.Name,
			"type":          f.Type,
			"address":       f.Address(),
			"phone":         f.Phone(),
			"website":       f.Website(),
			"opening_hours": f.OpeningHours(),
		}
		if c, ok := overpass.CategoryFor(f.Tags); ok {
			gf.Properties["category"] = c.Name
			gf.Properties["marker-color"] = c.Color
		}
		fc.Append(gf)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
