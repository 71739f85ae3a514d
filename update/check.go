package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheFile     = "update_check.json"
	cacheTTL      = 24 * time.Hour
	checkInterval = 6 * time.Hour
)

type ghRelease struct {
	TagName string    `json:"tag_name"`
	Assets  []ghAsset `json:"assets"`
}

type ghAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

type cachedCheck struct {
	Version     string `json:"version"`
	AssetURL    string `json:"asset_url"`
	ChecksumURL string `json:"checksum_url"`
	CheckedAt   int64  `json:"checked_at"`
}

// Latest returns the newest release if it is newer than current, or nil.
// Development builds never update.
func (c *Checker) Latest(ctx context.Context, current string) (*Release, error) {
	if current == "dev" {
		return nil, nil
	}

	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.APIBase, c.Repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api: %s", resp.Status)
	}

	var rel ghRelease
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	want := assetName()
	var assetURL, checksumURL string
	for _, a := range rel.Assets {
		switch a.Name {
		case want:
			assetURL = a.BrowserDownloadURL
		case "checksums.txt":
			checksumURL = a.BrowserDownloadURL
		}
	}
	if assetURL == "" {
		return nil, fmt.Errorf("no asset %q in release %s", want, rel.TagName)
	}

	r := &Release{Version: rel.TagName, AssetURL: assetURL, ChecksumURL: checksumURL}
	if !r.NewerThan(current) {
		return nil, nil
	}
	return r, nil
}

func (c *Checker) cachePath() string {
	return filepath.Join(c.CacheDir, cacheFile)
}

func (c *Checker) readCache() (*Release, bool) {
	data, err := os.ReadFile(c.cachePath())
	if err != nil {
		return nil, false
	}
	var cc cachedCheck
	if json.Unmarshal(data, &cc) != nil {
		return nil, false
	}
	if time.Since(time.Unix(cc.CheckedAt, 0)) > cacheTTL {
		return nil, false
	}
	if cc.Version == "" {
		return nil, true // cached "no update"
	}
	return &Release{Version: cc.Version, AssetURL: cc.AssetURL, ChecksumURL: cc.ChecksumURL}, true
}

func (c *Checker) writeCache(rel *Release) {
	cc := cachedCheck{CheckedAt: time.Now().Unix()}
	if rel != nil {
		cc.Version = rel.Version
		cc.AssetURL = rel.AssetURL
		cc.ChecksumURL = rel.ChecksumURL
	}
	data, err := json.Marshal(cc)
	if err != nil {
		return
	}
	_ = os.MkdirAll(c.CacheDir, 0755)
	_ = os.WriteFile(c.cachePath(), data, 0644)
}

// LatestCached is Latest behind a day-long on-disk cache.
func (c *Checker) LatestCached(ctx context.Context, current string) (*Release, error) {
	if current == "dev" {
		return nil, nil
	}
	if rel, ok := c.readCache(); ok {
		return rel, nil
	}
	rel, err := c.Latest(ctx, current)
	if err != nil {
		return nil, err
	}
	c.writeCache(rel)
	return rel, nil
}

// Watch checks now and then every Interval until ctx is done, calling
// notify for each newer release found.
func (c *Checker) Watch(ctx context.Context, current string, notify func(Release)) {
	if current == "dev" {
		return
	}
	check := func() {
		rel, err := c.LatestCached(ctx, current)
		if err == nil && rel != nil {
			notify(*rel)
		}
	}
	check()
	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
