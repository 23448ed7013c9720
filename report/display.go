package report

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"pl0dash/common"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = pterm.FgLightCyan
	InfoStyleBG    = pterm.NewStyle(pterm.BgLightCyan, pterm.FgBlack)
)

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	fmt.Fprint(rep.out, ErrorStyleBG.Sprint("fatal error"), " ", message, "\n\n")
}

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".
func displayCompileMessage(label, absPath, reprPath string, span *TextSpan, message string) {
	if span == nil {
		fmt.Fprintf(rep.out, "%s: %s %s\n\n", reprPath, ErrorColorFG.Sprint(label+":"), message)
	} else {
		fmt.Fprintf(rep.out, "%s:%d:%d: %s %s\n\n", reprPath, span.StartLine+1, span.StartCol+1, ErrorColorFG.Sprint(label+":"), message)
		displaySourceText(absPath, span)
	}
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	fmt.Fprintf(rep.out, "%s: %s %s\n\n", reprPath, ErrorColorFG.Sprint("error:"), err)
}

// displayWarning displays a warning that is not tied to source text.
func displayWarning(reprPath, message string) {
	fmt.Fprintf(rep.out, "%s: %s %s\n\n", reprPath, WarnColorFG.Sprint("warning:"), message)
}

// displayInfo displays a tagged informational message.
func displayInfo(tag, msg string) {
	fmt.Fprint(rep.out, InfoStyleBG.Sprint(tag), " ", InfoColorFG.Sprint(msg), "\n")
}

// -----------------------------------------------------------------------------

// displaySourceText displays a segment of source text defined by a text span.
// Nothing is displayed if the source file can't be read or the span lies
// outside of it: the error message itself has already been printed.
func displaySourceText(absPath string, span *TextSpan) {
	file, err := os.Open(absPath)
	if err != nil {
		return
	}
	defer file.Close()

	// Collect all the source lines containing the given source text.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if sc.Err() != nil || len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt32
	for _, line := range lines {
		lineIndent := len(line) - len(strings.TrimLeft(line, " "))
		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Generate the format string for line numbers.
	maxLineNumLen := len(strconv.Itoa(span.StartLine + len(lines)))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Fprint(rep.out, InfoColorFG.Sprintf(lineNumFmtStr, i+span.StartLine+1))
		fmt.Fprintln(rep.out, line[minIndent:])

		// Carets run from the start column on the first line to the end column
		// on the last line: every line in between is fully underlined.
		caretStart := 0
		if i == 0 {
			caretStart = span.StartCol - minIndent
		}

		caretEnd := len(line) - minIndent
		if i == len(lines)-1 && span.EndLine == span.StartLine+i {
			caretEnd = span.EndCol - minIndent
		}

		if caretStart < 0 {
			caretStart = 0
		}

		caretCount := caretEnd - caretStart
		if caretCount < 1 {
			caretCount = 1
		}

		fmt.Fprint(rep.out, strings.Repeat(" ", maxLineNumLen), " | ")
		fmt.Fprint(rep.out, strings.Repeat(" ", caretStart))
		fmt.Fprintln(rep.out, ErrorColorFG.Sprint(strings.Repeat("^", caretCount)))
	}

	fmt.Fprintln(rep.out)
}

// -----------------------------------------------------------------------------

// displayHeader displays the tool information before any file is processed.
func displayHeader(mode string, fileCount int) {
	fmt.Fprint(rep.out, "pl0dash ", InfoColorFG.Sprint("v"+common.Version))
	fmt.Fprint(rep.out, " -- mode: ", InfoColorFG.Sprint(mode))
	fmt.Fprintf(rep.out, " -- %d file(s)\n\n", fileCount)
}

// displayFileDone displays a processed file and where its output went.
func displayFileDone(reprPath, outPath string) {
	fmt.Fprint(rep.out, SuccessStyleBG.Sprint("Done"), " ", reprPath, " -> ", SuccessColorFG.Sprint(outPath), "\n")
}

// displayFinished displays the concluding summary message.
func displayFinished(doneCount, errorCount, warningCount int) {
	fmt.Fprint(rep.out, "\n")

	if errorCount == 0 {
		fmt.Fprint(rep.out, SuccessColorFG.Sprint("All done! "))
	} else {
		fmt.Fprint(rep.out, ErrorColorFG.Sprint("Oh no! "))
	}

	fmt.Fprintf(rep.out, "(%d written, ", doneCount)

	switch errorCount {
	case 0:
		fmt.Fprint(rep.out, SuccessColorFG.Sprint(0), " errors, ")
	case 1:
		fmt.Fprint(rep.out, ErrorColorFG.Sprint(1), " error, ")
	default:
		fmt.Fprint(rep.out, ErrorColorFG.Sprint(errorCount), " errors, ")
	}

	switch warningCount {
	case 0:
		fmt.Fprint(rep.out, SuccessColorFG.Sprint(0), " warnings)")
	case 1:
		fmt.Fprint(rep.out, WarnColorFG.Sprint(1), " warning)")
	default:
		fmt.Fprint(rep.out, WarnColorFG.Sprint(warningCount), " warnings)")
	}

	fmt.Fprintf(rep.out, " in %.3fs\n", time.Since(rep.startTime).Seconds())
}
