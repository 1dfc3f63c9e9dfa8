// Copyright 2020 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package exclusions_test

import (
	"testing"

	"cloudeng.io/cmd/duim/internal/config"
	"cloudeng.io/cmd/duim/internal/exclusions"
)

const cfg = `exclusions:
  - "^/a/b/c$"
  - "^/tmp/.*/z/"
`

func TestExclusions(t *testing.T) {
	f, err := config.ParseConfig([]byte(cfg))
	if err != nil {
		t.Fatal(err)
	}
	c, err := config.New(f, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ex := exclusions.New(c.Exclusions)
	for i, tc := range []struct {
		path    string
		matched bool
	}{
		{"/a/b/c", true},
		{"/tmp/a/b/c", false},
		{"/a/b/cc", false},
		{"/tmp/a/b/cc", false},
		{"a/z/", false},
		{"/tmp/a/z/", true},
		{"/z/b", false},
		{"/tmp//z/b", true},
		{"a/z", false},
		{"/tmp/a/z", false},
		{"a", false},
		{"/tmp/a", false},
	} {
		if got, want := ex.Exclude(tc.path), tc.matched; got != want {
			t.Errorf("%v; %v: got %v, want %v", i, tc.path, got, want)
		}
	}
}

func TestNil(t *testing.T) {
	var ex *exclusions.T
	if ex.Exclude("/a") {
		t.Errorf("nil exclusions should not exclude anything")
	}
	if exclusions.New(nil).Exclude("/a") {
		t.Errorf("empty exclusions should not exclude anything")
	}
}
