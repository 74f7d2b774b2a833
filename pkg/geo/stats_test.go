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
	"math"
	"reflect"
	"testing"

	"github.com/riskatlas/poifetch/pkg/poi"
)

func TestDensity(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		areaKm2 float64
		want    float64
	}{
		{name: "normal", count: 10, areaKm2: 4, want: 2.5},
		{name: "zero area", count: 10, areaKm2: 0, want: 0},
		{name: "zero count", count: 0, areaKm2: 4, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Density(tt.count, tt.areaKm2); got != tt.want {
				t.Errorf("Density() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollect(t *testing.T) {
	features := []poi.Feature{
		{Name: "a", Type: "school", Lat: 59.9, Lon: 10.4},
		{Name: "b", Type: "school", Lat: 60.1, Lon: 10.6},
		{Name: "c", Type: "fuel", Lat: 60.2, Lon: 10.8},
	}
	bbox := BoundingBox{South: 59.5, West: 10, North: 60.5, East: 11}

	got := Collect(features, bbox)

	if got.Total != 3 {
		t.Errorf("Collect().Total = %v, want 3", got.Total)
	}
	wantArea := 111.32 * 111.32 * 0.5
	if math.Abs(got.AreaKm2-wantArea) > 1e-6 {
		t.Errorf("Collect().AreaKm2 = %v, want %v", got.AreaKm2, wantArea)
	}
	if math.Abs(got.Density-3/wantArea) > 1e-12 {
		t.Errorf("Collect().Density = %v, want %v", got.Density, 3/wantArea)
	}
	wantByType := map[string]int{"school": 2, "fuel": 1}
	if !reflect.DeepEqual(got.ByType, wantByType) {
		t.Errorf("Collect().ByType = %v, want %v", got.ByType, wantByType)
	}
}

func TestFeatureBounds(t *testing.T) {
	tests := []struct {
		name     string
		features []poi.Feature
		want     BoundingBox
		wantOk   bool
	}{
		{
			name:   "empty",
			wantOk: false,
		},
		{
			name: "single point",
			features: []poi.Feature{
				{Lat: 48.1, Lon: 11.5},
			},
			want:   BoundingBox{South: 48.1, West: 11.5, North: 48.1, East: 11.5},
			wantOk: true,
		},
		{
			name: "envelope",
			features: []poi.Feature{
				{Lat: 48.1, Lon: 11.6},
				{Lat: 48.3, Lon: 11.5},
				{Lat: 48.2, Lon: 11.8},
			},
			want:   BoundingBox{South: 48.1, West: 11.5, North: 48.3, East: 11.8},
			wantOk: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FeatureBounds(tt.features)
			if ok != tt.wantOk {
				t.Errorf("FeatureBounds() ok = %v, want %v", ok, tt.wantOk)
				return
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FeatureBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}
