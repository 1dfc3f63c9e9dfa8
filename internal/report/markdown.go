// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package report

import (
	"io"
	"text/template"
)

func tpl(name string) *template.Template {
	return template.New(name).Funcs(template.FuncMap{
		"fmtCount":   fmtCount,
		"fmtPercent": func(p float64) string { return printer.Sprintf("%.1f%%", p) },
	})
}

var mdReport = template.Must(tpl("report").Parse(`
# Disk Usage Report for {{.Target}}

Total: {{.TotalSize}} in {{fmtCount (len .Entries)}} entries

| Percent | Usage | Size | Path |
| ---: | :--- | ---: | :--- |
{{range .Entries}}| {{fmtPercent .Percent}} | ` + "`[{{.Bar}}]`" + ` | {{$.Size .}} | {{.Path}} |
{{end}}
`))

// Markdown writes the report as a markdown table.
func (r *T) Markdown(out io.Writer) error {
	return mdReport.Execute(out, r)
}
