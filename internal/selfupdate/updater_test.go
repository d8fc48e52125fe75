package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"linux amd64", "linux", "amd64", "prepd_2.0.0_linux_amd64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "prepd_2.0.0_linux_arm64.tar.gz", false},
		{"darwin amd64", "darwin", "amd64", "prepd_2.0.0_darwin_amd64.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "prepd_2.0.0_darwin_arm64.tar.gz", false},
		{"windows not shipped", "windows", "amd64", "", true},
		{"386 not shipped", "linux", "386", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetFor("v2.0.0", tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.name)
			assert.Equal(t, "v2.0.0", got.tag)
		})
	}
}

func TestReleaseAssetURLs(t *testing.T) {
	asset, err := assetFor("v1.2.3", "linux", "amd64")
	require.NoError(t, err)

	assert.Equal(t,
		"https://github.com/rushil/prepd/releases/download/v1.2.3/prepd_1.2.3_linux_amd64.tar.gz",
		asset.downloadURL("https://github.com/", "rushil", "prepd"))
	assert.Equal(t,
		"https://github.com/rushil/prepd/releases/download/v1.2.3/checksums.txt",
		asset.checksumsURL("https://github.com", "rushil", "prepd"))
}

func TestParseChecksums(t *testing.T) {
	manifest := strings.Join([]string{
		"abc123  prepd_2.0.0_linux_amd64.tar.gz",
		"def456  prepd_2.0.0_darwin_arm64.tar.gz",
		"not a checksum line at all",
		"",
	}, "\n")

	sums := parseChecksums(strings.NewReader(manifest))
	assert.Equal(t, map[string]string{
		"prepd_2.0.0_linux_amd64.tar.gz":  "abc123",
		"prepd_2.0.0_darwin_arm64.tar.gz": "def456",
	}, sums)
}

func TestUntarBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho prepd")

	t.Run("at archive root", func(t *testing.T) {
		got, err := untarBinary(buildTarGz(t, "prepd", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("nested by the packager", func(t *testing.T) {
		got, err := untarBinary(buildTarGz(t, "dist/prepd", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := untarBinary(buildTarGz(t, "README.md", content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestInstall(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "prepd")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	require.NoError(t, install([]byte("new-binary"), target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("new-binary"), got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	// No temp file left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUpdate(t *testing.T) {
	asset, err := currentAsset("v2.0.0")
	if err != nil {
		t.Skipf("no release build for this platform: %v", err)
	}

	binary := []byte("new-prepd-binary")
	archive := buildTarGz(t, "prepd", binary)

	serveRelease := func(checksum string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/rushil/prepd/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			case "/rushil/prepd/releases/download/v2.0.0/checksums.txt":
				_, _ = fmt.Fprintf(w, "%s  %s\n", checksum, asset.name)
			case "/rushil/prepd/releases/download/v2.0.0/" + asset.name:
				_, _ = w.Write(archive)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
	}

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "prepd")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := serveRelease(sha256Hex(archive))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
		assert.Equal(t, []string{"check", "manifest", "download", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":""}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		server := serveRelease(strings.Repeat("0", 64))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("checksum entry missing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/rushil/prepd/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":""}`))
			case "/rushil/prepd/releases/download/v2.0.0/checksums.txt":
				_, _ = w.Write([]byte("abc123  some_other_asset.tar.gz\n"))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no checksum")
	})

	t.Run("archive download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/rushil/prepd/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":""}`))
			case "/rushil/prepd/releases/download/v2.0.0/checksums.txt":
				_, _ = fmt.Fprintf(w, "%s  %s\n", sha256Hex(archive), asset.name)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz packs a single file into a gzipped tar archive.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0755,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	return buf.Bytes()
}
