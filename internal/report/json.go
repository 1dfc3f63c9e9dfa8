// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"io"
)

type jsonEntry struct {
	Path    string  `json:"path"`
	Bytes   int64   `json:"bytes"`
	Percent float64 `json:"percent"`
	Size    string  `json:"size"`
}

type jsonOutput struct {
	Target     string      `json:"target"`
	TotalBytes int64       `json:"total_bytes"`
	TotalSize  string      `json:"total_size"`
	Entries    []jsonEntry `json:"entries"`
}

// JSON writes the report as a single JSON object.
func (r *T) JSON(out io.Writer) error {
	jo := jsonOutput{
		Target:     r.Target,
		TotalBytes: r.Total,
		TotalSize:  standardSize(r.Total),
		Entries:    make([]jsonEntry, 0, len(r.Entries)),
	}
	for _, e := range r.Entries {
		jo.Entries = append(jo.Entries, jsonEntry{
			Path:    e.Path,
			Bytes:   e.Bytes,
			Percent: e.Percent,
			Size:    standardSize(e.Bytes),
		})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(jo)
}
