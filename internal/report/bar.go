// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package report

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrOutOfRange is returned for a percentage outside of [0, 100].
var ErrOutOfRange = errors.New("percentage out of range")

const (
	barFill  = "="
	barEmpty = " "
)

// PercentToGraph returns a bar graph of exactly width characters with
// percent of them, rounded half to even, filled.
func PercentToGraph(percent float64, width int) (string, error) {
	if !(percent >= 0 && percent <= 100) {
		return "", fmt.Errorf("%w: %v", ErrOutOfRange, percent)
	}
	if width < 0 {
		return "", fmt.Errorf("invalid bar width: %v", width)
	}
	filled := int(math.RoundToEven(percent / 100 * float64(width)))
	return strings.Repeat(barFill, filled) + strings.Repeat(barEmpty, width-filled), nil
}

// Percent returns size as a percentage of total, or 0 if total is 0.
func Percent(size, total int64) float64 {
	switch {
	case total <= 0:
		return 0
	case size == total:
		return 100
	}
	return 100 * float64(size) / float64(total)
}
