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

package poi

import "strconv"

// Feature is one normalized point of interest. Name defaults to "Unnamed" and
// Type to "unknown" when the source tags carry neither; Tags keeps the full
// original tag mapping.
type Feature struct {
	ID   int64
	Name string
	Type string
	Lat  float64
	Lon  float64
	Tags map[string]string
}

// tag returns the value of the first key present in the mapping.
func (f Feature) tag(keys ...string) string {
	for _, k := range keys {
		if v, ok := f.Tags[k]; ok {
			return v
		}
	}
	return ""
}

// Address prefers the full address tag and falls back to the street.
func (f Feature) Address() string { return f.tag("addr:full", "addr:street") }

// Phone falls back to the contact: tag namespace.
func (f Feature) Phone() string { return f.tag("phone", "contact:phone") }

// Website falls back to the contact: tag namespace.
func (f Feature) Website() string { return f.tag("website", "contact:website") }

func (f Feature) OpeningHours() string { return f.tag("opening_hours") }

// AttributeNames is the column order shared by the tabular exporters.
func AttributeNames() []string {
	return []string{"id", "name", "type", "address", "phone", "website", "opening_hours"}
}

// Attributes returns the feature's values in AttributeNames order.
func (f Feature) Attributes() []string {
	return []string{
		strconv.FormatInt(f.ID, 10),
		f.Name,
		f.Type,
		f.Address(),
		f.Phone(),
		f.Website(),
		f.OpeningHours(),
	}
}
