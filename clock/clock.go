// SPDX-License-Identifier: MIT
// Package clock provides the cooperative stop-oracle polled by the tabu
// engine and the descent driver: a pure comparison of elapsed wall-clock
// time against a configured deadline, with no side effects and no
// blocking.
package clock

import "time"

// StopOracle is the polling interface consumed by tabu.Run and
// descent.Run. Implementations must be safe to call frequently (every
// 128 iterations) and must never block.
type StopOracle interface {
	// IsTimeUp reports whether the configured deadline has passed.
	IsTimeUp() bool
	// Elapsed returns the wall-clock time since the oracle was started.
	Elapsed() time.Duration
}

// Monotonic is a StopOracle backed by time.Now()/time.Since(). A zero-value
// Monotonic has a zero limit and reports IsTimeUp()==true from the start.
type Monotonic struct {
	start time.Time
	limit time.Duration
	// unlimited is set only by NewUnlimited; it is not inferred from
	// limit==0, so NewMonotonic(0) (e.g. a zero time_limit flag) reports
	// time up on its first poll.
	unlimited bool
}

// NewMonotonic starts a deadline limit from now.
func NewMonotonic(limit time.Duration) *Monotonic {
	return &Monotonic{start: time.Now(), limit: limit}
}

// NewUnlimited starts an oracle that never reports time up.
func NewUnlimited() *Monotonic {
	return &Monotonic{start: time.Now(), unlimited: true}
}

// IsTimeUp reports whether Elapsed() has reached the configured limit.
func (m *Monotonic) IsTimeUp() bool {
	if m.unlimited {
		return false
	}
	return time.Since(m.start) >= m.limit
}

// Elapsed returns the wall-clock duration since the oracle was created.
func (m *Monotonic) Elapsed() time.Duration {
	return time.Since(m.start)
}

// PollMask is the bitmask used by tabu.Run to poll the oracle only every
// 128 iterations, mirroring the teacher's iteration-counter-masked
// checkDeadline idiom (there &2047, here &127 for a 128-iteration cadence).
const PollMask = 127

// ShouldPoll reports whether iter is a poll point under PollMask.
func ShouldPoll(iter int) bool {
	return iter&PollMask == 0
}
