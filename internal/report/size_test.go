// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package report_test

import (
	"testing"

	"cloudeng.io/cmd/duim/internal/report"
)

func TestFormatSize(t *testing.T) {
	const tb = int64(1) << 40
	for i, tc := range []struct {
		size  int64
		human bool
		want  string
	}{
		{0, false, "0 B"},
		{1536, false, "1536 B"},
		{0, true, "0.0 B"},
		{512, true, "512.0 B"},
		{1023, true, "1023.0 B"},
		{1024, true, "1.0 K"},
		{1536, true, "1.5 K"},
		{2048, true, "2.0 K"},
		{5 * 1024 * 1024, true, "5.0 M"},
		{3 * 1024 * 1024 * 1024, true, "3.0 G"},
		{tb, true, "1.0 T"},
		{1024 * tb, true, "1024.0 T"},
		{4096 * tb, true, "4096.0 T"},
	} {
		if got := report.FormatSize(tc.size, tc.human); got != tc.want {
			t.Errorf("%v: got %q, want %q", i, got, tc.want)
		}
	}
}
