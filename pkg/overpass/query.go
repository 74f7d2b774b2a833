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

import (
	"strconv"
	"strings"

	"github.com/riskatlas/poifetch/pkg/geo"
)

// Server-side timeout hints in seconds. Batch queries union many tag pairs
// and get more server time.
const (
	singleQueryTimeout = 25
	batchQueryTimeout  = 60
)

// BuildQuery returns the Overpass QL text requesting nodes and ways carrying
// the category's tag pair within bbox. "out center" makes ways report their
// centroid. Pure string construction; bbox ordering is the caller's problem.
func BuildQuery(bbox geo.BoundingBox, category string) string {
	var b strings.Builder
	writeHeader(&b, singleQueryTimeout)
	writeTagBlocks(&b, bbox, Resolve(category))
	writeFooter(&b)
	return b.String()
}

// BuildBatchQuery unions the tag pairs of all categories into one query, with
// a longer server timeout hint than the single-category form.
func BuildBatchQuery(bbox geo.BoundingBox, categories []string) string {
	var b strings.Builder
	writeHeader(&b, batchQueryTimeout)
	for _, name := range categories {
		writeTagBlocks(&b, bbox, Resolve(name))
	}
	writeFooter(&b)
	return b.String()
}

func writeHeader(b *strings.Builder, timeout int) {
	b.WriteString("[out:json][timeout:" + strconv.Itoa(timeout) + "];\n(\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString(");\nout center;\n")
}

func writeTagBlocks(b *strings.Builder, bbox geo.BoundingBox, c Category) {
	sel := "[\"" + c.Key + "\"=\"" + c.Value + "\"](" + coords(bbox) + ");\n"
	b.WriteString("node" + sel)
	b.WriteString("way" + sel)
}

func coords(bbox geo.BoundingBox) string {
	return formatCoord(bbox.South) + "," + formatCoord(bbox.West) + "," +
		formatCoord(bbox.North) + "," + formatCoord(bbox.East)
}

// formatCoord avoids exponent notation, Overpass wants plain decimals.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
