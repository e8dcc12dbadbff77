// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
)

const buildInfoUnknown = "N/A"

// AppBuildInfo carries the linker-injected build metadata of a binary.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo replaces empty values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	orUnknown := func(s string) string {
		if s == "" {
			return buildInfoUnknown
		}
		return s
	}

	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) Version() string { return a.version }

func (a AppBuildInfo) Date() string { return a.date }

func (a AppBuildInfo) Commit() string { return a.commit }

// Print writes the three build lines shown at startup.
func (a AppBuildInfo) Print(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", a.version)
	fmt.Fprintf(w, "Build date: %s\n", a.date)
	fmt.Fprintf(w, "Build commit: %s\n", a.commit)
}
