// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package report

import (
	"strconv"

	"cloudeng.io/file/diskusage"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var units = []string{"B", "K", "M", "G", "T"}

// FormatSize returns size as "<bytes> B", or if humanReadable is set,
// scaled by 1024 until it is less than 1024 or has reached terabytes and
// displayed with one decimal place and a unit suffix, eg. "1.5 K".
func FormatSize(size int64, humanReadable bool) string {
	if !humanReadable {
		return strconv.FormatInt(size, 10) + " B"
	}
	return humanSize(float64(size))
}

func humanSize(v float64) string {
	u := 0
	for v >= 1024 && u < len(units)-1 {
		v /= 1024
		u++
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + " " + units[u]
}

var printer = message.NewPrinter(language.English)

// standardSize returns size using base 2 (KiB, MiB etc) units.
func standardSize(size int64) string {
	f, u := diskusage.Base2Bytes(size).Standardize()
	return printer.Sprintf("%.2f %s", f, u)
}

func fmtCount(count int) string {
	return printer.Sprintf("%v", count)
}
