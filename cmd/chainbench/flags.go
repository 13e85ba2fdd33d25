package main

import (
	"github.com/harmony-one/linkedqueue/internal/cli"
	"github.com/spf13/cobra"
)

var (
	generalFlags = []cli.Flag{
		elementsFlag,
		roundsFlag,
		parallelFlag,
		scenariosFlag,
		legacySizeFlag,
	}

	logFlags = []cli.Flag{
		logFolderFlag,
		logFileNameFlag,
		logRotateSizeFlag,
		logVerbosityFlag,
		logConsoleFlag,
	}
)

// overrideFlags returns the flags applied on top of the loaded config.
func overrideFlags() []cli.Flag {
	flags := append([]cli.Flag{}, generalFlags...)
	return append(flags, logFlags...)
}

var (
	elementsFlag = cli.IntFlag{
		Name:      "elements",
		Shorthand: "n",
		Usage:     "number of elements each scenario round works on",
		DefValue:  defaultConfig.General.Elements,
	}
	roundsFlag = cli.IntFlag{
		Name:     "rounds",
		Usage:    "number of timed rounds per scenario",
		DefValue: defaultConfig.General.Rounds,
	}
	parallelFlag = cli.IntFlag{
		Name:      "parallel",
		Shorthand: "p",
		Usage:     "maximum number of scenarios running at the same time",
		DefValue:  defaultConfig.General.Parallel,
	}
	scenariosFlag = cli.StringSliceFlag{
		Name:      "scenarios",
		Shorthand: "s",
		Usage:     "scenarios to run",
		DefValue:  defaultConfig.General.Scenarios,
	}
	legacySizeFlag = cli.IntFlag{
		Name:       "size",
		Usage:      "number of elements each scenario round works on",
		DefValue:   defaultConfig.General.Elements,
		Deprecated: "use --elements",
	}
)

func applyGeneralFlags(cmd *cobra.Command, config *benchConfig) {
	if cli.IsFlagChanged(cmd, legacySizeFlag) {
		config.General.Elements = cli.GetIntFlagValue(cmd, legacySizeFlag)
	}
	if cli.IsFlagChanged(cmd, elementsFlag) {
		config.General.Elements = cli.GetIntFlagValue(cmd, elementsFlag)
	}
	if cli.IsFlagChanged(cmd, roundsFlag) {
		config.General.Rounds = cli.GetIntFlagValue(cmd, roundsFlag)
	}
	if cli.IsFlagChanged(cmd, parallelFlag) {
		config.General.Parallel = cli.GetIntFlagValue(cmd, parallelFlag)
	}
	if cli.IsFlagChanged(cmd, scenariosFlag) {
		config.General.Scenarios = cli.GetStringSliceFlagValue(cmd, scenariosFlag)
	}
}

var (
	logFolderFlag = cli.StringFlag{
		Name:     "log.dir",
		Usage:    "directory path to put rotation logs, empty for no log file",
		DefValue: defaultConfig.Log.Folder,
	}
	logFileNameFlag = cli.StringFlag{
		Name:     "log.name",
		Usage:    "log file name (e.g. chainbench.log)",
		DefValue: defaultConfig.Log.FileName,
	}
	logRotateSizeFlag = cli.IntFlag{
		Name:     "log.max-size",
		Usage:    "rotation log size in megabytes",
		DefValue: defaultConfig.Log.RotateSize,
	}
	logVerbosityFlag = cli.IntFlag{
		Name:      "log.verb",
		Shorthand: "v",
		Usage:     "logging verbosity: 0=fatal, 1=error, 2=warn, 3=info, 4=debug",
		DefValue:  defaultConfig.Log.Verbosity,
	}
	logConsoleFlag = cli.BoolFlag{
		Name:     "log.console",
		Usage:    "also write logs to stderr",
		DefValue: defaultConfig.Log.Console,
	}
)

func applyLogFlags(cmd *cobra.Command, config *benchConfig) {
	if cli.IsFlagChanged(cmd, logFolderFlag) {
		config.Log.Folder = cli.GetStringFlagValue(cmd, logFolderFlag)
	}
	if cli.IsFlagChanged(cmd, logFileNameFlag) {
		config.Log.FileName = cli.GetStringFlagValue(cmd, logFileNameFlag)
	}
	if cli.IsFlagChanged(cmd, logRotateSizeFlag) {
		config.Log.RotateSize = cli.GetIntFlagValue(cmd, logRotateSizeFlag)
	}
	if cli.IsFlagChanged(cmd, logVerbosityFlag) {
		config.Log.Verbosity = cli.GetIntFlagValue(cmd, logVerbosityFlag)
	}
	if cli.IsFlagChanged(cmd, logConsoleFlag) {
		config.Log.Console = cli.GetBoolFlagValue(cmd, logConsoleFlag)
	}
}
