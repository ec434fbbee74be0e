package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"
)

// Error reports a hard assembly failure: a path collision, an encoding
// error, or a container that fails the post-write self check. There is
// never a partial-archive output.
type Error struct {
	Path   string
	Reason string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "archive: " + e.Reason
	}
	return fmt.Sprintf("archive: %s: %s", e.Path, e.Reason)
}

// Assemble serializes the resolved project into the container bytes.
// Entry order and timestamps are fixed so identical projects yield
// byte-identical archives.
func Assemble(p *ResolvedProject) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	written := make(map[string]bool)
	add := func(path string, data []byte) error {
		if written[path] {
			return &Error{Path: path, Reason: "path collision"}
		}
		written[path] = true
		header := &zip.FileHeader{Name: path, Method: zip.Deflate}
		if strings.HasSuffix(path, "/") {
			header.Method = zip.Store
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			return &Error{Path: path, Reason: err.Error()}
		}
		if _, err := w.Write(data); err != nil {
			return &Error{Path: path, Reason: err.Error()}
		}
		return nil
	}

	if err := add("assets/", nil); err != nil {
		return nil, err
	}

	packageDir := "src/" + strings.ReplaceAll(p.PackagePath, ".", "/")
	for i, screen := range p.Screens {
		scm, err := EncodeSCM(screen, i)
		if err != nil {
			return nil, &Error{Path: screen.Name + ".scm", Reason: err.Error()}
		}
		if err := add(packageDir+"/"+screen.Name+".scm", scm); err != nil {
			return nil, err
		}
		bky, err := EncodeBKY(screen.Blocks)
		if err != nil {
			return nil, &Error{Path: screen.Name + ".bky", Reason: err.Error()}
		}
		if err := add(packageDir+"/"+screen.Name+".bky", bky); err != nil {
			return nil, err
		}
	}

	if err := add("youngandroidproject/project.properties", EncodeProjectProperties(p)); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, &Error{Reason: err.Error()}
	}

	out := buf.Bytes()
	if err := selfCheck(out, p); err != nil {
		return nil, err
	}
	return out, nil
}

// selfCheck re-opens the archive and verifies the entries the host tool
// requires before any bytes are handed back.
func selfCheck(data []byte, p *ResolvedProject) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return &Error{Reason: "self check: " + err.Error()}
	}
	entries := make(map[string]bool, len(zr.File))
	hasSrc := false
	scmCount := 0
	for _, f := range zr.File {
		entries[f.Name] = true
		if strings.HasPrefix(f.Name, "src/") {
			hasSrc = true
		}
		if strings.HasSuffix(f.Name, ".scm") {
			scmCount++
		}
	}
	if !entries["youngandroidproject/project.properties"] {
		return &Error{Path: "youngandroidproject/project.properties", Reason: "self check: missing metadata document"}
	}
	if !hasSrc {
		return &Error{Path: "src/", Reason: "self check: missing source tree"}
	}
	if scmCount != len(p.Screens) {
		return &Error{Reason: fmt.Sprintf("self check: %d UI-layout documents for %d screens", scmCount, len(p.Screens))}
	}
	return nil
}
