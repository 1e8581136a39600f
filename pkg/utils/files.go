package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("archive is empty")

// LoadFile loads the given file and performs decompression if necessary.
// The compression type is taken from the file extension: .gz, .xz, .zst,
// .br and .lz4 streams are decompressed, and the first file of a .zip or .7z
// archive is returned. Any other file is returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filename, err)
	}

	data, err = Decompress(strings.ToLower(filepath.Ext(filename)), data)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", filename, err)
	}
	return data, nil
}

// Decompress decompresses data according to the given file extension,
// including the leading dot. Unknown extensions return data unchanged.
func Decompress(ext string, data []byte) ([]byte, error) {
	r := bytes.NewReader(data)

	var decoder io.Reader
	switch ext {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		decoder = gz
	case ".xz":
		x, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		decoder = x
	case ".zst":
		z, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer z.Close()
		decoder = z
	case ".br":
		decoder = brotli.NewReader(r)
	case ".lz4":
		decoder = lz4.NewReader(r)
	case ".zip":
		zipReader, err := zip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(zipReader.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the zip file
		rc, err := zipReader.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		archive, err := sevenzip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(archive.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the archive
		rc, err := archive.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	default:
		return data, nil
	}

	return io.ReadAll(decoder)
}
