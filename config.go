// Copyright 2020 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cloudeng.io/cmd/duim/internal/config"
	"gopkg.in/yaml.v2"
)

func configDocumentation(out io.Writer) {
	fmt.Fprintln(out, config.Documentation())
}

func showConfig(out io.Writer, f config.File) error {
	buf, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %v", err)
	}
	_, err = out.Write(buf)
	return err
}
