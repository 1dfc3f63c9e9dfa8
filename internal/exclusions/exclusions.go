// Copyright 2020 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package exclusions

import (
	"regexp"
)

// T represents a set of exclusions as regular expressions.
type T struct {
	exclusions []*regexp.Regexp
}

// New creates a new instance of exclusions.
func New(exclusions []*regexp.Regexp) *T {
	re := make([]*regexp.Regexp, len(exclusions))
	copy(re, exclusions)
	return &T{exclusions: re}
}

// Exclude returns true if the supplied path matches any of the exclusions.
// A nil T excludes nothing.
func (e *T) Exclude(path string) bool {
	if e == nil {
		return false
	}
	for _, re := range e.exclusions {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
