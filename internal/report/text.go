// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package report

import (
	"bufio"
	"fmt"
	"io"
)

// Text writes the report as:
//
//	 75.0% [===============     ] 300 B  /target/a
//
// followed by a blank line and the total.
func (r *T) Text(out io.Writer) error {
	wr := bufio.NewWriter(out)
	fmt.Fprintf(wr, "\nDisk Usage Report:\n")
	for _, e := range r.Entries {
		fmt.Fprintf(wr, "%5.1f%% [%s] %s  %s\n", e.Percent, e.Bar, r.Size(e), e.Path)
	}
	fmt.Fprintf(wr, "\nTotal: %s  %s\n", r.TotalSize(), r.Target)
	return wr.Flush()
}
