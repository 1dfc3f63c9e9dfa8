// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// TSV writes the report as tab separated values with a header line.
func (r *T) TSV(out io.Writer) error {
	wr := csv.NewWriter(out)
	wr.Comma = '\t'
	wr.Write([]string{"percent", "bytes", "size", "path"})
	for _, e := range r.Entries {
		wr.Write([]string{
			strconv.FormatFloat(e.Percent, 'f', 1, 64),
			strconv.FormatInt(e.Bytes, 10),
			r.Size(e),
			e.Path,
		})
	}
	wr.Flush()
	return wr.Error()
}
