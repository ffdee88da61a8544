package backend

import (
	"fmt"
	"io"
	"path"

	"github.com/valensas/xfer"
	"github.com/valensas/xfer/utils"
)

// Upload stores everything read from r at remotePath, creating the parent directories first.
func Upload(client xfer.Client, remotePath string, r io.Reader) error {
	if dir := path.Dir(remotePath); dir != "/" && dir != "." {
		if err := client.MakeDirectory(dir); err != nil {
			return err
		}
	}

	ok, err := client.StoreFile(remotePath, r)
	if err != nil {
		return err
	}
	if !ok {
		return xfer.NewTransferError(fmt.Errorf("server did not accept %s", remotePath))
	}
	return nil
}

// Download copies remotePath into w and returns the number of bytes copied. The stream is always closed, so the
// client can be used again afterwards.
func Download(client xfer.Client, remotePath string, w io.Writer) (int64, error) {
	r, err := client.RetrieveFileStream(remotePath)
	if err != nil {
		return 0, err
	}

	n, err := utils.TouchCopyBuffered(w, r, 0)
	if closeErr := r.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return n, utils.WrapRetrieveError(err)
	}
	return n, nil
}
