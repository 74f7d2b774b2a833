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
	"strings"
	"testing"

	"github.com/riskatlas/poifetch/pkg/geo"
)

var testBBox = geo.BoundingBox{South: 48.1, West: 11.5, North: 48.2, East: 11.6}

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name     string
		category string
		wantTag  string
	}{
		{name: "known category", category: "gas station", wantTag: `["amenity"="fuel"]`},
		{name: "case-insensitive lookup", category: "Gas Station", wantTag: `["amenity"="fuel"]`},
		{name: "non-amenity namespace", category: "factory", wantTag: `["man_made"="works"]`},
		{name: "unknown falls back to amenity", category: "Biergarten", wantTag: `["amenity"="biergarten"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildQuery(testBBox, tt.category)

			for _, want := range []string{
				"[out:json][timeout:25];",
				"node" + tt.wantTag,
				"way" + tt.wantTag,
				"48.1,11.5,48.2,11.6",
				"out center;",
			} {
				if !strings.Contains(got, want) {
					t.Errorf("BuildQuery() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestBuildQuery_EmbedsAllBounds(t *testing.T) {
	bbox := geo.BoundingBox{South: -33.9, West: 18.3, North: -33.8, East: 18.5}
	got := BuildQuery(bbox, "school")

	for _, want := range []string{"-33.9", "18.3", "-33.8", "18.5"} {
		if !strings.Contains(got, want) {
			t.Errorf("BuildQuery() missing bound %q in:\n%s", want, got)
		}
	}
}

func TestBuildBatchQuery(t *testing.T) {
	got := BuildBatchQuery(testBBox, []string{"school", "gas station", "clinic"})

	if !strings.Contains(got, "[out:json][timeout:60];") {
		t.Errorf("BuildBatchQuery() missing batch timeout hint in:\n%s", got)
	}
	for _, want := range []string{
		`node["amenity"="school"]`,
		`way["amenity"="school"]`,
		`node["amenity"="fuel"]`,
		`way["amenity"="fuel"]`,
		`node["healthcare"="clinic"]`,
		`way["healthcare"="clinic"]`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("BuildBatchQuery() missing %q in:\n%s", want, got)
		}
	}
}

func TestBuildBatchQuery_LongerTimeoutThanSingle(t *testing.T) {
	single := BuildQuery(testBBox, "school")
	batch := BuildBatchQuery(testBBox, []string{"school"})

	if strings.Contains(single, "[timeout:60]") || strings.Contains(batch, "[timeout:25]") {
		t.Errorf("timeout hints swapped:\nsingle: %s\nbatch: %s", single, batch)
	}
}
