package report

import (
	"io"
	"os"
	"sync"
	"time"
)

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during program execution.  The reporter respects the set
// log level and is synchronized: its methods can be safely called from multiple
// goroutines.
type Reporter struct {
	// The mutex used to synchonize different error method calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// out is where all messages are written.
	out io.Writer

	// The number of errors reported so far.
	errorCount int

	// The number of warnings reported so far.
	warningCount int

	// The number of files that were processed successfully.
	doneCount int

	// When the reporter was initialized.
	startTime time.Time
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all messages to the user (default).
)

// logLevelNames maps the command-line names of the log levels to their values.
var logLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarn,
	"verbose": LogLevelVerbose,
}

// LogLevelNames lists the valid log level names in increasing verbosity.
var LogLevelNames = []string{"silent", "error", "warn", "verbose"}

// LogLevelFromName converts a log level name to its enumerated value.
func LogLevelFromName(name string) (int, bool) {
	level, ok := logLevelNames[name]
	return level, ok
}

// rep is the global reporter instance.
var rep = &Reporter{
	m:         &sync.Mutex{},
	logLevel:  LogLevelVerbose,
	out:       os.Stdout,
	startTime: time.Now(),
}

// InitReporter (re)initializes the global reporter to the given log level and
// output writer.  If out is nil, the reporter writes to standard out.
func InitReporter(logLevel int, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}

	rep.m.Lock()
	defer rep.m.Unlock()

	rep.logLevel = logLevel
	rep.out = out
	rep.errorCount = 0
	rep.warningCount = 0
	rep.doneCount = 0
	rep.startTime = time.Now()
}
