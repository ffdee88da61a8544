// Package all imports all xfer client implementations.
package all

import (
	_ "github.com/valensas/xfer/backend/ftp"  // register ftp backend
	_ "github.com/valensas/xfer/backend/ftps" // register ftps backend
	_ "github.com/valensas/xfer/backend/sftp" // register sftp backend
)
