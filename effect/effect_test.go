package effect

import "testing"

func TestSupports(t *testing.T) {
	tests := []struct {
		effect, os, version, build string
		want                       bool
	}{
		{Acrylic, "Windows", "10", "1709", false},
		{Acrylic, "Windows", "10", "1803", true},
		{Acrylic, "Windows", "10", "19045", true},
		{Acrylic, "Windows", "10", "", true},
		{Acrylic, "Windows", "11", "", true},
		{Acrylic, "Windows", "11", "100", true},
		{Acrylic, "Windows", "8.1", "", false},
		{Acrylic, "Windows", "10", "garbage", false},
		{Mica, "Windows", "11", "", true},
		{Mica, "Windows", "11", "22000", true},
		{Mica, "Windows", "11", "21999", false},
		{Mica, "Windows", "10", "", false},
		{Vibrancy, "macOS", "10.9", "", false},
		{Vibrancy, "macOS", "10.10", "", true},
		{Vibrancy, "macOS", "10.15.7", "", true},
		{Vibrancy, "macOS", "14.4", "", true},
		{Vibrancy, "macOS", "9", "", false},
		{Vibrancy, "macOS", "", "", false},
		{Vibrancy, "darwin", "13.0", "", true},
		{Vibrancy, "Windows", "11", "", false},
		{Acrylic, "macOS", "14.0", "", false},
		{Acrylic, "linux", "6.1", "", false},
		{"blur", "Windows", "11", "", false},
	}
	for _, tt := range tests {
		got := Supports(tt.effect, tt.os, tt.version, tt.build)
		if got != tt.want {
			t.Errorf("Supports(%q, %q, %q, %q) = %v, want %v", tt.effect, tt.os, tt.version, tt.build, got, tt.want)
		}
	}
}

func TestPick(t *testing.T) {
	req, ok := Pick(Platform{Name: "windows", Version: "11", Build: "22631"})
	if !ok || req.Effect != Acrylic || req.Tint != DefaultTint {
		t.Errorf("windows 11: got %+v %v", req, ok)
	}

	req, ok = Pick(Platform{Name: "macos", Version: "14.2"})
	if !ok || req.Effect != Vibrancy {
		t.Errorf("macos: got %+v %v", req, ok)
	}

	if req, ok := Pick(Platform{Name: "linux", Version: "6.8.0"}); ok {
		t.Errorf("linux: got %+v", req)
	}
}

func TestDetectNamesPlatform(t *testing.T) {
	if p := Detect(); p.Name == "" {
		t.Error("Detect returned empty OS name")
	}
}

func TestWindowsPlatform(t *testing.T) {
	tests := []struct {
		major, build uint32
		version      string
		osBuild      string
		acrylic      bool
		mica         bool
	}{
		{10, 9800, "10", "0", false, false},
		{10, 10240, "10", "1507", false, false},
		{10, 16299, "10", "1709", false, false},
		{10, 17134, "10", "1803", true, false},
		{10, 17763, "10", "1809", true, false},
		{10, 19042, "10", "2009", true, false},
		{10, 19045, "10", "2210", true, false},
		{10, 20348, "10", "2210", true, false},
		{10, 22000, "11", "22000", true, true},
		{10, 22631, "11", "22631", true, true},
		{6, 9600, "6", "9600", false, false},
	}
	for _, tt := range tests {
		p := windowsPlatform(tt.major, tt.build)
		if p.Name != "windows" || p.Version != tt.version || p.Build != tt.osBuild {
			t.Errorf("windowsPlatform(%d, %d) = %+v, want version %q build %q", tt.major, tt.build, p, tt.version, tt.osBuild)
		}
		if got := Supports(Acrylic, p.Name, p.Version, p.Build); got != tt.acrylic {
			t.Errorf("build %d: acrylic = %v, want %v", tt.build, got, tt.acrylic)
		}
		if got := Supports(Mica, p.Name, p.Version, p.Build); got != tt.mica {
			t.Errorf("build %d: mica = %v, want %v", tt.build, got, tt.mica)
		}
	}
}
