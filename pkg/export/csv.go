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
	"encoding/csv"
	"io"
	"strconv"

	"github.com/riskatlas/poifetch/pkg/poi"
)

// WriteCSV emits one row per feature: longitude and latitude first, then the
// attribute columns in their fixed order.
func WriteCSV(w io.Writer, features []poi.Feature) error {
	cw := csv.NewWriter(w)

	header := append([]string{"longitude", "latitude"}, poi.AttributeNames()...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, f := range features {
		row := append([]string{
			strconv.FormatFloat(f.Lon, 'f', -1, 64),
			strconv.FormatFloat(f.Lat, 'f', -1, 64),
		}, f.Attributes()...)
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
