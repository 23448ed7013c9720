// Package cmd is the top-level "driver" package of pl0dash: it contains all the
// functionality for parsing command-line arguments, locating source files, and
// running the front end over each of them.
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"pl0dash/config"
	"pl0dash/emit"
	"pl0dash/report"
	"pl0dash/syntax"
)

// Enumeration of driver output modes.
const (
	ModeTree   = iota // Write the syntax tree of each file (default).
	ModeTokens        // Write the token listing of each file.
)

var modeNames = map[int]string{
	ModeTree:   "parse",
	ModeTokens: "tokens",
}

// Driver runs the front end over a source file or a directory of source files.
// Every file is processed independently: an error in one file is reported
// against that file and never stops the others from being processed.
type Driver struct {
	// conf is the configuration of the run.
	conf *config.Config

	// mode is the output mode: it must be one of the enumerated modes.
	mode int

	// outDir is the directory to write outputs to.  If it is empty, outputs
	// are written next to their source files.
	outDir string

	// dumpOut receives a debug dump of every parsed tree.  It may be nil.
	dumpOut io.Writer

	// dumpMu serializes writes to dumpOut.
	dumpMu sync.Mutex
}

// sourceFile is a source file to be processed.
type sourceFile struct {
	// The absolute path to the file.
	absPath string

	// The path to the file relative to the root path of the run.  This is the
	// path displayed to the user.
	reprPath string
}

// NewDriver creates a new driver.
func NewDriver(conf *config.Config, mode int, outDir string) *Driver {
	return &Driver{
		conf:   conf,
		mode:   mode,
		outDir: outDir,
	}
}

// SetDump makes the driver write a debug dump of every parsed tree to w.
func (d *Driver) SetDump(w io.Writer) {
	d.dumpOut = w
}

// Run processes the source file or directory at rootPath.  It returns whether
// every file was processed successfully.
func (d *Driver) Run(rootPath string) bool {
	files, err := d.collectFiles(rootPath)
	if err != nil {
		report.ReportStdError(rootPath, err)
		return false
	}

	if len(files) == 0 {
		report.ReportWarning(rootPath, "no `%s` files found", d.conf.SourceExt)
		return true
	}

	report.ReportHeader(modeNames[d.mode], len(files))

	// Process all the source files concurrently: each file gets its own lexer
	// and parser, so nothing is shared between them but the reporter.
	ok := make([]bool, len(files))
	wg := &sync.WaitGroup{}
	for i, file := range files {
		wg.Add(1)
		go func(i int, file *sourceFile) {
			ok[i] = d.processFile(file)
			wg.Done()
		}(i, file)
	}

	wg.Wait()

	for _, fileOk := range ok {
		if !fileOk {
			return false
		}
	}

	return true
}

// -----------------------------------------------------------------------------

// collectFiles determines the source files to process for rootPath.
func (d *Driver) collectFiles(rootPath string) ([]*sourceFile, error) {
	rootAbsPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, err
	}

	finfo, err := os.Stat(rootAbsPath)
	if err != nil {
		return nil, err
	}

	// A file named explicitly is always processed, whatever its extension.
	if !finfo.IsDir() {
		return []*sourceFile{{absPath: rootAbsPath, reprPath: filepath.Base(rootAbsPath)}}, nil
	}

	var files []*sourceFile
	if err := d.collectDir(rootAbsPath, rootAbsPath, &files); err != nil {
		return nil, err
	}

	return files, nil
}

// collectDir appends the source files of the directory at dirAbsPath to files.
// Subdirectories are only searched if the run is recursive.
func (d *Driver) collectDir(rootAbsPath, dirAbsPath string, files *[]*sourceFile) error {
	// list the elements of the directory: these are sorted by name
	finfos, err := ioutil.ReadDir(dirAbsPath)
	if err != nil {
		return err
	}

	for _, finfo := range finfos {
		fileAbsPath := filepath.Join(dirAbsPath, finfo.Name())

		if finfo.IsDir() {
			if d.conf.Recursive {
				if err := d.collectDir(rootAbsPath, fileAbsPath, files); err != nil {
					return err
				}
			}

			continue
		}

		// select only files that are source files
		if filepath.Ext(finfo.Name()) != d.conf.SourceExt {
			continue
		}

		reprPath, err := filepath.Rel(rootAbsPath, fileAbsPath)
		if err != nil {
			return err
		}

		*files = append(*files, &sourceFile{absPath: fileAbsPath, reprPath: reprPath})
	}

	return nil
}

// outputPath returns the path the output for file is written to.
func (d *Driver) outputPath(file *sourceFile) string {
	base := filepath.Base(file.absPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if d.mode == ModeTokens {
		stem += d.conf.TokensSuffix
	}

	name := stem + d.conf.OutputExt

	if d.outDir == "" {
		return filepath.Join(filepath.Dir(file.absPath), name)
	}

	return filepath.Join(d.outDir, filepath.Dir(file.reprPath), name)
}

// processFile runs the front end over a single file and writes its output.
// All errors are reported.  It returns whether processing succeeded.
func (d *Driver) processFile(file *sourceFile) bool {
	buff := &bytes.Buffer{}

	switch d.mode {
	case ModeTokens:
		f, err := os.Open(file.absPath)
		if err != nil {
			report.ReportStdError(file.reprPath, err)
			return false
		}

		toks, err := syntax.Tokenize(f)
		f.Close()

		if err != nil {
			report.ReportError(file.absPath, file.reprPath, err)
			return false
		}

		if err := emit.WriteTokens(buff, toks); err != nil {
			report.ReportStdError(file.reprPath, err)
			return false
		}
	default:
		tree, err := syntax.ParseFile(file.absPath, syntax.WithMaxDepth(d.conf.MaxDepth))
		if err != nil {
			report.ReportError(file.absPath, file.reprPath, err)
			return false
		}

		if err := emit.WriteTree(buff, tree, d.conf.Indent); err != nil {
			report.ReportStdError(file.reprPath, err)
			return false
		}

		if d.dumpOut != nil {
			d.dump(file, tree)
		}
	}

	outPath := d.outputPath(file)
	if err := writeOutput(outPath, buff.Bytes()); err != nil {
		report.ReportStdError(file.reprPath, err)
		return false
	}

	report.ReportFileDone(file.reprPath, outPath)
	return true
}

// dump writes the debug dump of tree.
func (d *Driver) dump(file *sourceFile, tree *syntax.SyntaxTree) {
	d.dumpMu.Lock()
	defer d.dumpMu.Unlock()

	fmt.Fprintf(d.dumpOut, "// %s\n", file.reprPath)
	if err := emit.Dump(d.dumpOut, tree); err != nil {
		report.ReportStdError(file.reprPath, err)
	}
}

// writeOutput writes data to the file at path, creating its directory if
// necessary.
func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return ioutil.WriteFile(path, data, 0644)
}
