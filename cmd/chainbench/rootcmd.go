package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harmony-one/linkedqueue/internal/cli"
	"github.com/harmony-one/linkedqueue/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "chainbench",
	Short: "run workload scenarios over the copy on write chain and queue",
	Long: "run insert, append, remove, enqueue, dequeue, teardown and copy on write scenarios " +
		"over millions of elements and compare them with container/list and the Workiva queue",
	Run: runBench,
}

var dumpConfigCmd = &cobra.Command{
	Use:   "dumpconfig [config_file]",
	Short: "dump the default config to a toml file",
	Args:  cobra.ExactArgs(1),
	Run:   dumpConfig,
}

var configFlag = cli.StringFlag{
	Name:      "config",
	Usage:     "load bench config from the config toml file.",
	Shorthand: "c",
	DefValue:  "",
}

func registerRootCmdFlags() error {
	var flags []cli.Flag
	flags = append(flags, configFlag)
	flags = append(flags, overrideFlags()...)

	return cli.RegisterFlags(rootCmd, flags)
}

func runBench(cmd *cobra.Command, args []string) {
	cfg, err := getBenchConfig(cmd)
	if err != nil {
		fmt.Println(err)
		cmd.Help()
		os.Exit(128)
	}
	if err := setupLog(cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	results, err := runScenarios(context.Background(), cfg.General)
	if err != nil {
		utils.Logger().Error().Err(err).Msg("[chainbench] run failed")
		os.Exit(1)
	}
	renderResults(os.Stdout, results)
	if err := renderCounters(os.Stdout); err != nil {
		utils.Logger().Warn().Err(err).Msg("[chainbench] cannot render counters")
	}
}

func getBenchConfig(cmd *cobra.Command) (benchConfig, error) {
	var (
		config benchConfig
		err    error
	)
	if cli.IsFlagChanged(cmd, configFlag) {
		configFile := cli.GetStringFlagValue(cmd, configFlag)
		config, err = loadBenchConfig(configFile)
	} else {
		config = getDefaultBenchConfigCopy()
	}
	if err != nil {
		return benchConfig{}, err
	}

	if cli.IsFlagChanged(cmd, configFlag) && cli.HasFlagsChanged(cmd, overrideFlags()) {
		utils.Logger().Info().Msg("[chainbench] command line flags override the config file")
	}
	applyGeneralFlags(cmd, &config)
	applyLogFlags(cmd, &config)

	if err := validateBenchConfig(config); err != nil {
		return benchConfig{}, err
	}
	return config, nil
}

func setupLog(config benchConfig) error {
	if !config.Log.Console {
		utils.SetLogWriters()
	}
	if config.Log.Folder != "" {
		logPath := filepath.Join(config.Log.Folder, config.Log.FileName)
		if err := utils.AddLogFile(logPath, config.Log.RotateSize); err != nil {
			return err
		}
	}
	utils.SetLogVerbosity(config.Log.Verbosity)
	return nil
}

func dumpConfig(cmd *cobra.Command, args []string) {
	file := args[0]
	if err := writeBenchConfigToFile(getDefaultBenchConfigCopy(), file); err != nil {
		fmt.Println(err)
		os.Exit(128)
	}
	utils.Logger().Info().Str("file", file).Msg("[chainbench] default config written")
}
