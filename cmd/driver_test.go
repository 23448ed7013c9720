package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pl0dash/config"
	"pl0dash/report"
)

// makeTree creates the given files (relative path to content) under a new
// temporary directory and returns its path.
func makeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}

		if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	return root
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var batch = map[string]string{
	"good.pl0":      "var x;\nbegin x := 1; write x end.",
	"bad.pl0":       "write #.",
	"notes.txt":     "not source",
	"sub/inner.pl0": "writeln.",
}

func silence() {
	report.InitReporter(report.LogLevelSilent, ioutil.Discard)
}

func TestBatchIsolation(t *testing.T) {
	silence()
	root := makeTree(t, batch)

	d := NewDriver(config.Default(), ModeTree, "")
	if d.Run(root) {
		t.Error("Run reported success despite a bad file")
	}

	if report.ErrorCount() != 1 {
		t.Errorf("got %d errors, want 1", report.ErrorCount())
	}

	out, err := ioutil.ReadFile(filepath.Join(root, "good.xml"))
	if err != nil {
		t.Fatalf("good file was not written: %v", err)
	}

	if !strings.HasPrefix(string(out), "<program>\n  <block>\n    <varDecl>\n") {
		t.Errorf("unexpected output:\n%s", out)
	}

	for _, rel := range []string{"bad.xml", "notes.xml", "sub/inner.xml"} {
		if exists(filepath.Join(root, rel)) {
			t.Errorf("%s should not have been written", rel)
		}
	}
}

func TestRecursive(t *testing.T) {
	silence()
	root := makeTree(t, batch)

	conf := config.Default()
	conf.Recursive = true

	NewDriver(conf, ModeTree, "").Run(root)

	if !exists(filepath.Join(root, "sub", "inner.xml")) {
		t.Error("nested file was not processed")
	}
}

func TestTokensToOutDir(t *testing.T) {
	silence()
	root := makeTree(t, batch)
	outDir := filepath.Join(t.TempDir(), "out")

	conf := config.Default()
	conf.Recursive = true

	NewDriver(conf, ModeTokens, outDir).Run(root)

	for _, rel := range []string{"goodT.xml", "sub/innerT.xml"} {
		if !exists(filepath.Join(outDir, filepath.FromSlash(rel))) {
			t.Errorf("%s was not written", rel)
		}
	}

	if exists(filepath.Join(outDir, "badT.xml")) || exists(filepath.Join(root, "goodT.xml")) {
		t.Error("unexpected output file")
	}

	out, err := ioutil.ReadFile(filepath.Join(outDir, "sub", "innerT.xml"))
	if err != nil {
		t.Fatal(err)
	}

	if string(out) != "<tokens>\n<keyword> writeln </keyword>\n<symbol> . </symbol>\n</tokens>\n" {
		t.Errorf("unexpected listing:\n%s", out)
	}
}

func TestCustomExtensions(t *testing.T) {
	silence()
	root := makeTree(t, map[string]string{
		"a.src":   "writeln.",
		"b.pl0":   "writeln.",
		"c.other": "writeln.",
	})

	conf := config.Default()
	conf.SourceExt = ".src"
	conf.OutputExt = ".tree"
	conf.TokensSuffix = "_tokens"

	if !NewDriver(conf, ModeTokens, "").Run(root) {
		t.Error("Run failed")
	}

	if !exists(filepath.Join(root, "a_tokens.tree")) {
		t.Error("a_tokens.tree was not written")
	}

	if exists(filepath.Join(root, "b_tokens.tree")) {
		t.Error("file with a different extension was processed")
	}
}

func TestEmptyIndent(t *testing.T) {
	silence()
	root := makeTree(t, map[string]string{"flat.pl0": "writeln."})

	conf := config.Default()
	conf.Indent = ""

	if !NewDriver(conf, ModeTree, "").Run(root) {
		t.Fatal("Run failed")
	}

	out, err := ioutil.ReadFile(filepath.Join(root, "flat.xml"))
	if err != nil {
		t.Fatal(err)
	}

	want := "<program>\n<block>\n<statement>\n<keyword> writeln </keyword>\n</statement>\n</block>\n<symbol> . </symbol>\n</program>\n"
	if string(out) != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestSingleFile(t *testing.T) {
	silence()
	root := makeTree(t, map[string]string{"prog.txt": "write 2."})

	if !NewDriver(config.Default(), ModeTree, "").Run(filepath.Join(root, "prog.txt")) {
		t.Fatal("Run failed")
	}

	if !exists(filepath.Join(root, "prog.xml")) {
		t.Error("explicitly named file was not processed")
	}
}

func TestEmptyAndMissing(t *testing.T) {
	silence()

	if !NewDriver(config.Default(), ModeTree, "").Run(t.TempDir()) {
		t.Error("an empty directory should not fail")
	}

	if NewDriver(config.Default(), ModeTree, "").Run(filepath.Join(t.TempDir(), "missing")) {
		t.Error("a missing path should fail")
	}
}

func TestMaxDepth(t *testing.T) {
	silence()
	root := makeTree(t, map[string]string{"deep.pl0": "write ((1))."})

	conf := config.Default()
	conf.MaxDepth = 8

	if NewDriver(conf, ModeTree, "").Run(root) {
		t.Error("nesting beyond max depth was accepted")
	}

	conf.MaxDepth = 12
	if !NewDriver(conf, ModeTree, "").Run(root) {
		t.Error("nesting within max depth was rejected")
	}
}

func TestDump(t *testing.T) {
	silence()
	root := makeTree(t, map[string]string{"a.pl0": "writeln.", "b.pl0": "write 1."})

	var buf bytes.Buffer
	d := NewDriver(config.Default(), ModeTree, "")
	d.SetDump(&buf)

	if !d.Run(root) {
		t.Fatal("Run failed")
	}

	for _, want := range []string{"// a.pl0", "// b.pl0", "SyntaxTree"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("dump is missing %q", want)
		}
	}
}
