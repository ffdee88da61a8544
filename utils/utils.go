package utils

import (
	"io"
	"path"
	"regexp"
	"strings"
)

// TouchCopyMinBufferSize min buffer size used in TouchCopyBuffered in bytes
const TouchCopyMinBufferSize = 262144

// regex to test whether the first character is a '/'
var hasLeadingSlash = regexp.MustCompile("^/")

// RemoveLeadingSlash removes leading slash, if any
func RemoveLeadingSlash(p string) string {
	return strings.TrimLeft(p, "/")
}

// EnsureLeadingSlash adds the leading slash if needed. Remote paths always use /, never Windows separators.
func EnsureLeadingSlash(dir string) string {
	if hasLeadingSlash.MatchString(dir) {
		return dir
	}
	return "/" + dir
}

// IsDotEntry reports whether name is the "." or ".." pseudo entry returned by some servers' listings.
func IsDotEntry(name string) bool {
	return name == "." || name == ".."
}

// PathSegments returns every ancestor of p, outermost first, ending with p itself. It's the list of
// directories a mkdir -p has to visit:
//
//	/a/b/c : [/a /a/b /a/b/c]
//	a/b/   : [a a/b]
//	/      : []
func PathSegments(p string) []string {
	if p == "" {
		return nil
	}
	cleaned := path.Clean(p)
	if cleaned == "/" || cleaned == "." {
		return nil
	}

	prefix := ""
	if strings.HasPrefix(cleaned, "/") {
		prefix = "/"
	}

	parts := strings.Split(RemoveLeadingSlash(cleaned), "/")
	segments := make([]string, 0, len(parts))
	current := ""
	for _, part := range parts {
		if current == "" {
			current = prefix + part
		} else {
			current = current + "/" + part
		}
		segments = append(segments, current)
	}
	return segments
}

// TouchCopyBuffered is a wrapper around io.CopyBuffer which ensures that even empty source files (reader) will get written as an
// empty file. It guarantees a Write() call on the target file.
// bufferSize is in bytes and if is less than TouchCopyMinBufferSize will result in a buffer of size TouchCopyMinBufferSize
// bytes. If bufferSize is > TouchCopyMinBufferSize it will result in a buffer of size bufferSize bytes
func TouchCopyBuffered(writer io.Writer, reader io.Reader, bufferSize int) (int64, error) {
	if bufferSize < TouchCopyMinBufferSize {
		bufferSize = TouchCopyMinBufferSize
	}
	buffer := make([]byte, bufferSize)

	size, err := io.CopyBuffer(writer, reader, buffer)
	if err != nil {
		return size, err
	}
	if size == 0 {
		if _, err := writer.Write([]byte{}); err != nil {
			return 0, err
		}
	}
	return size, nil
}
