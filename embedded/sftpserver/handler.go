package sftpserver

import (
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/sftp"
)

// rootHandler serves sftp requests from a directory on disk. Client paths are resolved below root and can't
// escape it.
type rootHandler struct {
	root string
}

func newHandlers(root string) sftp.Handlers {
	h := &rootHandler{root: root}
	return sftp.Handlers{
		FileGet:  h,
		FilePut:  h,
		FileCmd:  h,
		FileList: h,
	}
}

func (h *rootHandler) resolve(p string) string {
	return filepath.Join(h.root, filepath.FromSlash(path.Clean("/"+p)))
}

func (h *rootHandler) Fileread(r *sftp.Request) (io.ReaderAt, error) {
	return os.Open(h.resolve(r.Filepath))
}

func (h *rootHandler) Filewrite(r *sftp.Request) (io.WriterAt, error) {
	flags := os.O_WRONLY | os.O_CREATE
	pflags := r.Pflags()
	if pflags.Trunc {
		flags |= os.O_TRUNC
	}
	if pflags.Excl {
		flags |= os.O_EXCL
	}
	return os.OpenFile(h.resolve(r.Filepath), flags, 0o644)
}

func (h *rootHandler) Filecmd(r *sftp.Request) error {
	p := h.resolve(r.Filepath)
	switch r.Method {
	case "Setstat":
		return nil
	case "Rename", "PosixRename":
		return os.Rename(p, h.resolve(r.Target))
	case "Rmdir", "Remove":
		return os.Remove(p)
	case "Mkdir":
		return os.Mkdir(p, 0o755)
	default:
		return sftp.ErrSSHFxOpUnsupported
	}
}

func (h *rootHandler) Filelist(r *sftp.Request) (sftp.ListerAt, error) {
	p := h.resolve(r.Filepath)
	switch r.Method {
	case "List":
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		infos := make([]os.FileInfo, 0, len(entries))
		for _, entry := range entries {
			info, err := entry.Info()
			if err != nil {
				return nil, err
			}
			infos = append(infos, info)
		}
		return listerAt(infos), nil
	case "Stat", "Lstat":
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		return listerAt{info}, nil
	default:
		return nil, sftp.ErrSSHFxOpUnsupported
	}
}

type listerAt []os.FileInfo

func (l listerAt) ListAt(ls []os.FileInfo, offset int64) (int, error) {
	if offset >= int64(len(l)) {
		return 0, io.EOF
	}
	n := copy(ls, l[offset:])
	if n < len(ls) {
		return n, io.EOF
	}
	return n, nil
}
