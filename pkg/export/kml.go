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
	"fmt"
	"image/color"
	"io"
	"strings"

	kml "github.com/twpayne/go-kml/v2"

	"github.com/riskatlas/poifetch/pkg/overpass"
	"github.com/riskatlas/poifetch/pkg/poi"
)

// WriteKML emits one placemark per feature, with one shared icon style per
// category. Risk-zone categories get a larger icon, mirroring the marker
// sizes of the original point layers.
func WriteKML(w io.Writer, docName string, features []poi.Feature) error {
	doc := kml.Document(kml.Name(docName))

	styled := map[string]bool{}
	for _, f := range features {
		c, ok := overpass.CategoryFor(f.Tags)
		if !ok {
			c = overpass.Category{Name: f.Type, Color: overpass.DefaultColor}
		}

		id := styleID(c.Name)
		if !styled[id] {
			styled[id] = true
			scale := 1.0
			if overpass.IsRiskZone(c.Name) {
				scale = 1.3
			}
			doc.Add(kml.SharedStyle(id, kml.IconStyle(
				kml.Color(hexColor(c.Color)),
				kml.Scale(scale),
			)))
		}

		doc.Add(kml.Placemark(
			kml.Name(f.Name),
			kml.Description(placemarkDescription(f)),
			kml.StyleURL("#"+id),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: f.Lon, Lat: f.Lat})),
		))
	}

	return kml.KML(doc).WriteIndent(w, "", "  ")
}

func styleID(name string) string {
	return "poi-" + strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func placemarkDescription(f poi.Feature) string {
	var b strings.Builder
	fmt.Fprintf(&b, "type: %s", f.Type)
	if v := f.Address(); v != "" {
		fmt.Fprintf(&b, "\naddress: %s", v)
	}
	if v := f.Phone(); v != "" {
		fmt.Fprintf(&b, "\nphone: %s", v)
	}
	if v := f.Website(); v != "" {
		fmt.Fprintf(&b, "\nwebsite: %s", v)
	}
	if v := f.OpeningHours(); v != "" {
		fmt.Fprintf(&b, "\nopening hours: %s", v)
	}
	return b.String()
}

// hexColor parses "#rrggbb"; anything unparseable renders in the default
// gray.
func hexColor(s string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{R: 0x95, G: 0xa5, B: 0xa6, A: 0xff}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
