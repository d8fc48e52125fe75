package selfupdate

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

const binaryName = "prepd"

type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

type UpdateProgress struct {
	Stage   string
	Message string
}

// releaseAsset names one downloadable archive of a tagged release.
// prepd releases ship tar.gz archives for linux and macOS on amd64 and
// arm64, named prepd_<version>_<os>_<arch>.tar.gz, with the bare
// binary inside and a checksums.txt alongside.
type releaseAsset struct {
	tag  string
	name string
}

func currentAsset(tag string) (releaseAsset, error) {
	return assetFor(tag, runtime.GOOS, runtime.GOARCH)
}

func assetFor(tag, goos, goarch string) (releaseAsset, error) {
	switch goos {
	case "linux", "darwin":
	default:
		return releaseAsset{}, fmt.Errorf("no release build for %s", goos)
	}
	switch goarch {
	case "amd64", "arm64":
	default:
		return releaseAsset{}, fmt.Errorf("no release build for %s/%s", goos, goarch)
	}
	version := strings.TrimPrefix(tag, "v")
	return releaseAsset{
		tag:  tag,
		name: fmt.Sprintf("%s_%s_%s_%s.tar.gz", binaryName, version, goos, goarch),
	}, nil
}

func (a releaseAsset) downloadURL(base, owner, repo string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s",
		strings.TrimRight(base, "/"), owner, repo, a.tag, a.name)
}

func (a releaseAsset) checksumsURL(base, owner, repo string) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/checksums.txt",
		strings.TrimRight(base, "/"), owner, repo, a.tag)
}

// Update replaces the running binary with the target release. With no
// explicit target it resolves the latest tag first. The checksum
// manifest is fetched before the archive, so a bad release fails
// before anything touches the filesystem.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		progress(UpdateProgress{Stage: "check", Message: "Checking for latest version..."})
		result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !result.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = result.LatestVersion
	}

	asset, err := currentAsset(tag)
	if err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "manifest", Message: fmt.Sprintf("Fetching checksums for %s...", tag)})
	sumsData, err := c.fetch(ctx, asset.checksumsURL(c.downloadBaseURL, c.owner, c.repo))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := parseChecksums(bytes.NewReader(sumsData))[asset.name]
	if !ok {
		return fmt.Errorf("release %s has no checksum for %s", tag, asset.name)
	}

	progress(UpdateProgress{Stage: "download", Message: fmt.Sprintf("Downloading %s...", asset.name)})
	archive, err := c.fetch(ctx, asset.downloadURL(c.downloadBaseURL, c.owner, c.repo))
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}
	if got := sha256Hex(archive); got != want {
		return fmt.Errorf("%w: want %s, got %s", ErrChecksum, want, got)
	}

	progress(UpdateProgress{Stage: "extract", Message: "Extracting binary..."})
	binary, err := untarBinary(archive)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(UpdateProgress{Stage: "apply", Message: "Applying update..."})
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := install(binary, target); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(UpdateProgress{Stage: "done", Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// parseChecksums reads the sha256sum manifest format: one
// "<hex>  <filename>" pair per line, malformed lines ignored.
func parseChecksums(r io.Reader) map[string]string {
	sums := make(map[string]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		sums[fields[1]] = fields[0]
	}
	return sums
}

func sha256Hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// untarBinary finds the prepd binary inside the release archive,
// wherever the packaging step nested it.
func untarBinary(archive []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == binaryName {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", binaryName)
}

// install swaps the binary at target, keeping its file mode. The new
// binary lands in a temp file in the same directory first so the final
// step is a single rename.
func install(binary []byte, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+binaryName+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(binary); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, info.Mode()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
