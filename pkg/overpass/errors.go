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
	"errors"
	"fmt"
)

// The error kinds surfaced by the fetch executor. Retries stay internal; once
// attempts are exhausted the specific kind comes back, never a generic
// failure, so callers can show actionable guidance. Match with errors.Is.
var (
	ErrTimeout               = errors.New("request timed out, try a smaller area or check your internet connection")
	ErrUpstreamOverloaded    = errors.New("overpass server overloaded (504), try a smaller area or fewer categories")
	ErrRateLimited           = errors.New("rate limited by overpass server (429), wait before trying again")
	ErrConnectionUnavailable = errors.New("could not connect to overpass server, check your internet connection")
	ErrMalformedResponse     = errors.New("invalid response from overpass server")
)

// RemoteError is any other non-2xx answer. It fails the request immediately,
// no retry. Match with errors.As.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("overpass server returned HTTP %d: %s", e.StatusCode, e.Message)
}
