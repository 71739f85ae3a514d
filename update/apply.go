package update

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Apply downloads rel, verifies it against the release checksums when
// published, and swaps it in for the running executable.
func (c *Checker) Apply(ctx context.Context, rel *Release) error {
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("find executable: %w", err)
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return fmt.Errorf("resolve symlinks: %w", err)
	}

	// same directory as the binary so the final rename stays on one filesystem
	tmp, err := os.CreateTemp(filepath.Dir(execPath), ".keyhook-update-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	sum, err := c.download(ctx, rel.AssetURL, tmp)
	tmp.Close()
	if err != nil {
		return err
	}
	if err := c.verify(ctx, rel, sum); err != nil {
		return err
	}
	return swap(execPath, tmp.Name())
}

// download writes url to dst and returns the hex sha256 of the body.
func (c *Checker) download(ctx context.Context, url string, dst io.Writer) (string, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("download binary: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download binary: %s", resp.Status)
	}

	hasher := sha256.New()
	src := io.Reader(resp.Body)
	if c.Progress != nil && resp.ContentLength > 0 {
		src = &progressReader{r: resp.Body, w: c.Progress, total: resp.ContentLength}
		defer fmt.Fprintln(c.Progress)
	}
	if _, err := io.Copy(io.MultiWriter(dst, hasher), src); err != nil {
		return "", fmt.Errorf("write binary: %w", err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

func (c *Checker) verify(ctx context.Context, rel *Release, sum string) error {
	if rel.ChecksumURL == "" {
		return nil
	}
	want, err := c.fetchExpectedHash(ctx, rel.ChecksumURL, assetName())
	if err != nil {
		return fmt.Errorf("fetch checksums: %w", err)
	}
	if !strings.EqualFold(sum, want) {
		return fmt.Errorf("checksum mismatch: got %.12s, want %.12s", sum, want)
	}
	return nil
}

// swap moves newPath over target, keeping target as .old until the new
// file is in place.
func swap(target, newPath string) error {
	if err := os.Chmod(newPath, 0755); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	oldPath := target + ".old"
	if err := os.Rename(target, oldPath); err != nil {
		return fmt.Errorf("backup current binary: %w", err)
	}
	if err := os.Rename(newPath, target); err != nil {
		_ = os.Rename(oldPath, target)
		return fmt.Errorf("install new binary: %w", err)
	}
	_ = os.Remove(oldPath)
	return nil
}

type progressReader struct {
	r     io.Reader
	w     io.Writer
	total int64
	read  int64
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	pct := float64(p.read) / float64(p.total) * 100
	fmt.Fprintf(p.w, "\r  %.0f%% (%d / %d KB)", pct, p.read/1024, p.total/1024)
	return n, err
}

func (c *Checker) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Client.Do(req)
}

// fetchExpectedHash finds filename in a sha256sum-style checksums file.
func (c *Checker) fetchExpectedHash(ctx context.Context, checksumURL, filename string) (string, error) {
	resp, err := c.get(ctx, checksumURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("checksums: %s", resp.Status)
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 2 && strings.TrimPrefix(parts[1], "*") == filename {
			return parts[0], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no checksum for %s", filename)
}
