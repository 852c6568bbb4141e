// Package fileutil provides verified file copy and move helpers used by the
// tranche relocation stages.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyFileVerified copies src to dst and confirms the bytes that landed on
// disk by re-reading and hashing the destination. A mismatched destination
// is removed so a failed copy never leaves a plausible-looking file behind.
func CopyFileVerified(src, dst string) error {
	wantSum, wantSize, err := copyHashed(src, dst)
	if err != nil {
		return err
	}

	gotSum, gotSize, err := hashFile(dst)
	if err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("verify copy: %w", err)
	}
	if gotSize != wantSize {
		_ = os.Remove(dst)
		return fmt.Errorf("verify copy: wrote %d bytes, destination holds %d", wantSize, gotSize)
	}
	if !bytes.Equal(gotSum, wantSum) {
		_ = os.Remove(dst)
		return fmt.Errorf("verify copy: destination content differs from source")
	}
	return nil
}

// MoveFileVerified moves src to dst by verified copy followed by source
// removal. The source survives any copy failure, so a mid-move crash leaves
// at worst a duplicate, never a loss.
func MoveFileVerified(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}
	if err := CopyFileVerified(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}

// copyHashed streams src into dst, returning the hash and byte count of
// what was read from the source.
func copyHashed(src, dst string) (sum []byte, size int64, err error) {
	in, err := os.Open(src)
	if err != nil {
		return nil, 0, fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, 0, fmt.Errorf("create destination: %w", err)
	}

	hasher := sha256.New()
	size, err = io.Copy(out, io.TeeReader(in, hasher))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dst)
		return nil, 0, fmt.Errorf("copy to destination: %w", err)
	}
	return hasher.Sum(nil), size, nil
}

func hashFile(path string) (sum []byte, size int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	hasher := sha256.New()
	size, err = io.Copy(hasher, f)
	if err != nil {
		return nil, 0, err
	}
	return hasher.Sum(nil), size, nil
}
