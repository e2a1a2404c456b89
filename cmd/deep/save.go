package main

import (
	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
)

// atomicWriteString writes content to path via a temp file in the same
// directory followed by a rename, so a crash mid-write never leaves a
// truncated file at path.
func atomicWriteString(path, content string) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644), renameio.WithExistingPermissions())
	if err != nil {
		return errors.Wrapf(err, "renameio.NewPendingFile")
	}
	defer pf.Cleanup()

	if _, err := pf.WriteString(content); err != nil {
		return errors.Wrapf(err, "pf.WriteString")
	}

	if err := pf.CloseAtomicallyReplace(); err != nil {
		return errors.Wrapf(err, "pf.CloseAtomicallyReplace")
	}
	return nil
}
