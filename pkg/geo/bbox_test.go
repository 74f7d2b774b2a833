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
)

func TestParseBoundingBox(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    BoundingBox
		wantErr bool
	}{
		{
			name: "plain",
			arg:  "48.1,11.5,48.2,11.6",
			want: BoundingBox{South: 48.1, West: 11.5, North: 48.2, East: 11.6},
		},
		{
			name: "spaces and negatives",
			arg:  " -33.9, 18.3, -33.8, 18.5 ",
			want: BoundingBox{South: -33.9, West: 18.3, North: -33.8, East: 18.5},
		},
		{
			name:    "too few values",
			arg:     "48.1,11.5,48.2",
			wantErr: true,
		},
		{
			name:    "not a number",
			arg:     "48.1,eleven,48.2,11.6",
			wantErr: true,
		},
		{
			name:    "empty",
			arg:     "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBoundingBox(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseBoundingBox() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBoundingBox() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundingBox_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bbox    BoundingBox
		wantErr bool
	}{
		{
			name: "valid",
			bbox: BoundingBox{South: 48.1, West: 11.5, North: 48.2, East: 11.6},
		},
		{
			name:    "south above north",
			bbox:    BoundingBox{South: 48.2, West: 11.5, North: 48.1, East: 11.6},
			wantErr: true,
		},
		{
			name:    "west beyond east",
			bbox:    BoundingBox{South: 48.1, West: 11.6, North: 48.2, East: 11.5},
			wantErr: true,
		},
		{
			name:    "latitude out of range",
			bbox:    BoundingBox{South: -95, West: 11.5, North: 48.2, East: 11.6},
			wantErr: true,
		},
		{
			name:    "longitude out of range",
			bbox:    BoundingBox{South: 48.1, West: 11.5, North: 48.2, East: 200},
			wantErr: true,
		},
		{
			name:    "degenerate line",
			bbox:    BoundingBox{South: 48.1, West: 11.5, North: 48.1, East: 11.6},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.bbox.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("BoundingBox.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBoundingBox_AreaKm2(t *testing.T) {
	// one square degree centered on latitude 60, where cos is exactly 0.5
	bbox := BoundingBox{South: 59.5, West: 10, North: 60.5, East: 11}
	want := 111.32 * 111.32 * 0.5

	got := bbox.AreaKm2()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("BoundingBox.AreaKm2() = %v, want %v", got, want)
	}
}

func TestBoundingBox_AreaKm2_Equator(t *testing.T) {
	bbox := BoundingBox{South: -0.5, West: -0.5, North: 0.5, East: 0.5}
	want := 111.32 * 111.32

	got := bbox.AreaKm2()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("BoundingBox.AreaKm2() = %v, want %v", got, want)
	}
}
