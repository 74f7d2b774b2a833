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

import "time"

// BackoffSchedule maps a 1-based attempt number to the wait before the next
// attempt.
type BackoffSchedule func(attempt int) time.Duration

// The schedules used by Fetch. Waits grow linearly with the attempt number:
// 2s/4s/... after client timeouts, 3s/6s/... after 504s, 5s/10s/... after
// 429s.
var (
	TimeoutBackoff   = linearBackoff(2 * time.Second)
	GatewayBackoff   = linearBackoff(3 * time.Second)
	RateLimitBackoff = linearBackoff(5 * time.Second)
)

func linearBackoff(step time.Duration) BackoffSchedule {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}
