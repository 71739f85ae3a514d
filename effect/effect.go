// Package effect decides which translucent window effect the running OS
// can render.
package effect

import (
	"strconv"
	"strings"
)

const (
	Acrylic  = "acrylic"
	Mica     = "mica"
	Vibrancy = "vibrancy"
)

const (
	minAcrylicBuild = 1803
	minMicaBuild    = 22000
)

// Supports reports whether effect can be applied on the given OS. osBuild
// is empty when the build number is unknown.
func Supports(effect, osName, osVersion, osBuild string) bool {
	switch normalizeOS(osName) {
	case "windows":
		switch effect {
		case Acrylic:
			if strings.HasPrefix(osVersion, "10") {
				return buildAtLeast(osBuild, minAcrylicBuild)
			}
			return strings.HasPrefix(osVersion, "11")
		case Mica:
			return strings.HasPrefix(osVersion, "11") && buildAtLeast(osBuild, minMicaBuild)
		}
	case "macos":
		if effect == Vibrancy {
			return versionAtLeast(osVersion, 10, 10)
		}
	}
	return false
}

// win10Releases maps the first NT build of each Windows 10 release to its
// release id. H2-style releases use their year and month (20H2 is 2009).
var win10Releases = []struct {
	build   uint32
	release string
}{
	{10240, "1507"},
	{10586, "1511"},
	{14393, "1607"},
	{15063, "1703"},
	{16299, "1709"},
	{17134, "1803"},
	{17763, "1809"},
	{18362, "1903"},
	{18363, "1909"},
	{19041, "2004"},
	{19042, "2009"},
	{19043, "2104"},
	{19044, "2110"},
	{19045, "2210"},
}

// windowsPlatform builds the Platform for an NT version. Windows 11 still
// reports major version 10 and is told apart by build; its Build stays the
// NT build. Windows 10 reports its release id as Build, the unit Supports
// compares against for acrylic.
func windowsPlatform(major, build uint32) Platform {
	p := Platform{Name: "windows", Version: strconv.Itoa(int(major))}
	switch {
	case major == 10 && build >= minMicaBuild:
		p.Version = "11"
		p.Build = strconv.Itoa(int(build))
	case major == 10:
		p.Build = "0"
		for _, r := range win10Releases {
			if build < r.build {
				break
			}
			p.Build = r.release
		}
	default:
		p.Build = strconv.Itoa(int(build))
	}
	return p
}

func normalizeOS(name string) string {
	switch strings.ToLower(name) {
	case "windows":
		return "windows"
	case "macos", "darwin", "osx", "mac os x":
		return "macos"
	}
	return strings.ToLower(name)
}

func buildAtLeast(build string, want int) bool {
	if build == "" {
		return true
	}
	n, err := strconv.Atoi(strings.TrimSpace(build))
	if err != nil {
		return false
	}
	return n >= want
}

// versionAtLeast compares "major.minor[.patch]" numerically, so 10.9 is
// below 10.10.
func versionAtLeast(version string, major, minor int) bool {
	parts := strings.Split(strings.TrimSpace(version), ".")
	maj, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	mnr := 0
	if len(parts) > 1 {
		if mnr, err = strconv.Atoi(parts[1]); err != nil {
			return false
		}
	}
	if maj != major {
		return maj > major
	}
	return mnr >= minor
}

// Color is an RGBA tint passed along with an effect request.
type Color struct {
	R, G, B, A uint8
}

// DefaultTint is the dark translucent tint used for acrylic.
var DefaultTint = Color{18, 18, 18, 125}

// Request is a window effect to ask the GUI shell for.
type Request struct {
	Effect string
	Tint   Color
}

// Platform describes the running OS as Supports expects it.
type Platform struct {
	Name    string
	Version string
	Build   string
}

// Pick returns the preferred supported effect for p. ok is false when no
// effect is supported, which is a normal answer.
func Pick(p Platform) (req Request, ok bool) {
	for _, e := range []string{Acrylic, Mica, Vibrancy} {
		if Supports(e, p.Name, p.Version, p.Build) {
			req = Request{Effect: e}
			if e == Acrylic {
				req.Tint = DefaultTint
			}
			return req, true
		}
	}
	return Request{}, false
}
