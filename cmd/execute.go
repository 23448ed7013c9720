package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ComedicChimera/olive"

	"pl0dash/common"
	"pl0dash/config"
	"pl0dash/report"
)

// Execute is the main entry point for the `pl0dash` CLI utility.  It returns the
// process exit code.
func Execute(args []string) int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("pl0dash", "pl0dash parses PL/0-dash source files into syntax trees", true)
	cli.AddSelectorArg("loglevel", "ll", "the log level", false, report.LogLevelNames)

	parseCmd := cli.AddSubcommand("parse", "write the syntax tree of each source file", true)
	parseCmd.AddPrimaryArg("path", "the source file or directory to parse", true)
	parseCmd.AddStringArg("outpath", "o", "the directory to write output files to", false)
	parseCmd.AddStringArg("config", "c", "the path to the configuration file", false)
	parseCmd.AddStringArg("max-depth", "md", "the maximum nesting depth of productions", false)
	parseCmd.AddFlag("recursive", "r", "search source directories recursively")
	parseCmd.AddFlag("dump", "d", "print a debug dump of each syntax tree")

	tokensCmd := cli.AddSubcommand("tokens", "write the token listing of each source file", true)
	tokensCmd.AddPrimaryArg("path", "the source file or directory to tokenize", true)
	tokensCmd.AddStringArg("outpath", "o", "the directory to write output files to", false)
	tokensCmd.AddStringArg("config", "c", "the path to the configuration file", false)
	tokensCmd.AddFlag("recursive", "r", "search source directories recursively")

	initCmd := cli.AddSubcommand("init", "write a default configuration file", true)
	initCmd.AddPrimaryArg("dir", "the directory to write the configuration file to", false)

	cli.AddSubcommand("version", "print the pl0dash version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, args)
	if err != nil {
		report.ReportFatal("%s", err)
		return 1
	}

	logLevelName := ""
	if value, ok := result.Arguments["loglevel"]; ok {
		logLevelName = value.(string)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "parse":
		return execRunCommand(subResult, ModeTree, logLevelName)
	case "tokens":
		return execRunCommand(subResult, ModeTokens, logLevelName)
	case "init":
		return execInitCommand(subResult)
	case "version":
		report.DisplayInfoMessage("pl0dash version", common.Version)
		return 0
	}

	report.ReportFatal("missing subcommand: run `pl0dash -h` for usage")
	return 1
}

// execRunCommand executes the parse and tokens subcommands.
func execRunCommand(result *olive.ArgParseResult, mode int, logLevelName string) int {
	conf, err := loadConfig(result)
	if err != nil {
		report.ReportFatal("%s", err)
		return 1
	}

	// command-line arguments override the configuration file
	if logLevelName != "" {
		conf.LogLevel = logLevelName
	}

	if value, ok := result.Arguments["max-depth"]; ok {
		maxDepth, err := strconv.Atoi(value.(string))
		if err != nil || maxDepth <= 0 {
			report.ReportFatal("max-depth must be a positive integer, not `%s`", value)
			return 1
		}

		conf.MaxDepth = maxDepth
	}

	if result.HasFlag("recursive") {
		conf.Recursive = true
	}

	logLevel, _ := report.LogLevelFromName(conf.LogLevel)
	report.InitReporter(logLevel, os.Stdout)

	outDir := ""
	if value, ok := result.Arguments["outpath"]; ok {
		outDir = value.(string)
	}

	d := NewDriver(conf, mode, outDir)
	if mode == ModeTree && result.HasFlag("dump") {
		d.SetDump(os.Stdout)
	}

	rootPath, _ := result.PrimaryArg()
	ok := d.Run(rootPath)

	report.ReportFinished()

	if !ok {
		return 1
	}

	return 0
}

// execInitCommand executes the init subcommand.
func execInitCommand(result *olive.ArgParseResult) int {
	dir, ok := result.PrimaryArg()
	if !ok {
		dir = "."
	}

	path, err := config.WriteDefault(dir)
	if err != nil {
		report.ReportFatal("failed to write configuration: %s", err)
		return 1
	}

	report.DisplayInfoMessage("Created", path)
	return 0
}

// loadConfig loads the configuration named on the command line or, if there
// is none, the configuration file in the working directory.
func loadConfig(result *olive.ArgParseResult) (*config.Config, error) {
	if value, ok := result.Arguments["config"]; ok {
		return config.Load(value.(string))
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("error getting working directory: %s", err)
	}

	return config.Find(workDir)
}
