// Package update checks GitHub releases for a newer keyhook build and
// replaces the running binary in place.
package update

import (
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultRepo   = "keyhook/keyhook"
	BinaryName    = "keyhook"
	githubAPIBase = "https://api.github.com"
)

type Release struct {
	Version     string
	AssetURL    string
	ChecksumURL string
}

// Checker looks up releases of one repository. The zero value is not
// usable; use NewChecker.
type Checker struct {
	Repo     string
	APIBase  string
	CacheDir string
	Client   *http.Client
	Interval time.Duration

	// Progress, if set, receives a download progress line.
	Progress io.Writer
}

func NewChecker(cacheDir string) *Checker {
	return &Checker{
		Repo:     DefaultRepo,
		APIBase:  githubAPIBase,
		CacheDir: cacheDir,
		Client:   &http.Client{Timeout: 30 * time.Second},
		Interval: checkInterval,
	}
}

func assetName() string {
	return fmt.Sprintf("%s_%s_%s", BinaryName, runtime.GOOS, runtime.GOARCH)
}

type semver struct {
	major, minor, patch int
}

func parseSemver(v string) (semver, error) {
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return semver{}, fmt.Errorf("invalid semver: %q", v)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return semver{}, fmt.Errorf("invalid semver: %q", v)
		}
		nums[i] = n
	}
	return semver{nums[0], nums[1], nums[2]}, nil
}

func (s semver) greaterThan(o semver) bool {
	if s.major != o.major {
		return s.major > o.major
	}
	if s.minor != o.minor {
		return s.minor > o.minor
	}
	return s.patch > o.patch
}

func (r Release) NewerThan(current string) bool {
	cur, err := parseSemver(current)
	if err != nil {
		return false
	}
	rel, err := parseSemver(r.Version)
	if err != nil {
		return false
	}
	return rel.greaterThan(cur)
}
