package scaffold

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"text/template"

	"github.com/ccpsceo/classgen/internal/names"
	"github.com/ccpsceo/classgen/internal/platform"
)

const (
	templatesDir   = "scaffolds/cpp"
	headerTemplate = "header.tmpl"
	sourceTemplate = "source.tmpl"

	filePerm os.FileMode = 0644
)

// Result holds the outcome of a generation run.
type Result struct {
	OutputDir string
	Files     []string // paths as echoed, header first
}

// OutputDir returns the directory the files for d are written to. An
// identifier without a real directory resolves to ".", and one whose
// directory is empty (such as "/foo") resolves to the filesystem root.
func OutputDir(d names.Derived) string {
	if !d.HasDirectory() {
		return "."
	}
	if d.Directory == "" {
		return "/"
	}
	return d.Directory
}

// Generate materializes the output directory for d and writes the header and
// source files into it, echoing progress and file content to w. A failure on
// the header stops before the source is attempted; nothing already written is
// removed.
func Generate(d names.Derived, w io.Writer) (*Result, error) {
	fmt.Fprintln(w, "Preparing Directories...")

	outDir := OutputDir(d)
	if d.HasDirectory() {
		if err := platform.EnsureDir(d.Directory); err != nil {
			return nil, &FilesystemError{Path: d.Directory, Err: err}
		}
	}

	fmt.Fprintf(w, "Generating class %s\n", d.TypeName)

	result := &Result{OutputDir: outDir}

	headerPath := platform.Join(outDir, d.HeaderFileName)
	fmt.Fprintf(w, "Writing Header into %s\n", headerPath)
	if err := emit(headerPath, headerTemplate, d, w); err != nil {
		return result, err
	}
	result.Files = append(result.Files, headerPath)

	sourcePath := platform.Join(outDir, d.SourceFileName)
	fmt.Fprintf(w, "Writing Source into %s\n", sourcePath)
	if err := emit(sourcePath, sourceTemplate, d, w); err != nil {
		return result, err
	}
	result.Files = append(result.Files, sourcePath)

	return result, nil
}

// Render executes one of the embedded templates against d.
func Render(name string, d names.Derived) ([]byte, error) {
	tmplPath := path.Join(templatesDir, name)
	tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(name).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// emit opens outPath, echoes the rendered template to w and writes it to the
// file. The file is truncated if it already exists.
func emit(outPath, tmplName string, d names.Derived, w io.Writer) error {
	content, err := Render(tmplName, d)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return &IOError{Op: "open", Path: outPath, Err: err}
	}

	if _, err := w.Write(content); err != nil {
		f.Close()
		return fmt.Errorf("echoing %s: %w", outPath, err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: outPath, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: outPath, Err: err}
	}
	return nil
}
