package report

import (
	"errors"
	"fmt"
)

// NOTE: All report functions will only display if the appropriate log level is
// set.  Errors are always counted regardless of the log level.

// ReportFatal reports a fatal error.  These are errors that should cause all
// processing to stop immediately: they generally result from invalid
// configuration or command-line usage.  The caller is responsible for exiting.
func ReportFatal(message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++
	if rep.logLevel > LogLevelSilent {
		displayFatal(fmt.Sprintf(message, args...))
	}
}

// ReportCompileError reports a compilation error: ie. erroneous input code. The
// absPath is the absolute path to the erroneous source file. The reprPath is
// the representative path to the erroneous source file: the path shown to the
// user.  The span may be nil in which case no position information will be
// printed.
func ReportCompileError(absPath, reprPath string, span *TextSpan, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++
	if rep.logLevel > LogLevelSilent {
		displayCompileMessage("error", absPath, reprPath, span, fmt.Sprintf(message, args...))
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(reprPath string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++
	if rep.logLevel > LogLevelSilent {
		displayStdError(reprPath, err)
	}
}

// ReportError reports err against the given source file.  Local compile errors
// are displayed with their source text; all other errors are reported as
// standard errors.
func ReportError(absPath, reprPath string, err error) {
	var cerr *LocalCompileError
	if errors.As(err, &cerr) {
		ReportCompileError(absPath, reprPath, cerr.Span, "%s", cerr.Message)
	} else {
		ReportStdError(reprPath, err)
	}
}

// ReportWarning reports a warning about the given path.
func ReportWarning(reprPath string, message string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warningCount++
	if rep.logLevel >= LogLevelWarn {
		displayWarning(reprPath, fmt.Sprintf(message, args...))
	}
}

// -----------------------------------------------------------------------------
// Below are all the "aesthetic" reporting functions that will only run if the
// log level is verbose.

// ReportHeader reports the header displayed before any files are processed.
func ReportHeader(mode string, fileCount int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel == LogLevelVerbose {
		displayHeader(mode, fileCount)
	}
}

// ReportFileDone reports that a source file was processed successfully and
// its output written to outPath.
func ReportFileDone(reprPath, outPath string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.doneCount++
	if rep.logLevel == LogLevelVerbose {
		displayFileDone(reprPath, outPath)
	}
}

// ReportFinished reports the concluding message of a run.
func ReportFinished() {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel > LogLevelSilent {
		displayFinished(rep.doneCount, rep.errorCount, rep.warningCount)
	}
}

// DisplayInfoMessage displays an informational message regardless of log level.
func DisplayInfoMessage(tag, msg string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayInfo(tag, msg)
}

// -----------------------------------------------------------------------------

// AnyErrors returns whether or not any errors were detected.
func AnyErrors() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount > 0
}

// ErrorCount returns the number of errors reported since initialization.
func ErrorCount() int {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount
}
