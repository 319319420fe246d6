// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// unknownBuildValue replaces build metadata that was not injected at link
// time.
const unknownBuildValue = "N/A"

// AppBuildInfo is the version stamp of the client and fake API binaries,
// injected with -ldflags "-X main.buildVersion=...".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo builds an [AppBuildInfo]. Blank values become "N/A" so
// that every consumer prints the same placeholder.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnknown(buildVersion),
		buildDate:    orUnknown(buildDate),
		buildCommit:  orUnknown(buildCommit),
	}
}

func orUnknown(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return unknownBuildValue
	}
	return v
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// String renders the stamp the way both binaries print it on startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.buildVersion, a.buildDate, a.buildCommit)
}

// MarshalZerologObject lets the stamp be attached to a log entry with
// Event.EmbedObject.
func (a AppBuildInfo) MarshalZerologObject(e *zerolog.Event) {
	e.Str("build_version", a.buildVersion).
		Str("build_date", a.buildDate).
		Str("build_commit", a.buildCommit)
}
