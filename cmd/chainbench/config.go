package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

const tomlConfigVersion = "1.0.0"

type benchConfig struct {
	Version string
	General generalConfig
	Log     logConfig
}

type generalConfig struct {
	Elements  int
	Rounds    int
	Parallel  int
	Scenarios []string
}

type logConfig struct {
	Folder     string
	FileName   string
	RotateSize int
	Verbosity  int
	Console    bool
}

var defaultConfig = benchConfig{
	Version: tomlConfigVersion,
	General: generalConfig{
		Elements:  1_000_000,
		Rounds:    3,
		Parallel:  1,
		Scenarios: append([]string{}, scenarioNames...),
	},
	Log: logConfig{
		Folder:     "./latest",
		FileName:   "chainbench.log",
		RotateSize: 100,
		Verbosity:  3,
		Console:    true,
	},
}

func getDefaultBenchConfigCopy() benchConfig {
	config := defaultConfig
	config.General.Scenarios = append([]string{}, defaultConfig.General.Scenarios...)
	return config
}

func validateBenchConfig(config benchConfig) error {
	if len(config.General.Scenarios) == 0 {
		return errors.New("no scenario to run")
	}
	for _, name := range config.General.Scenarios {
		if err := checkStringAccepted("--scenarios", name, scenarioNames); err != nil {
			return err
		}
	}
	if err := checkPositive("--elements", config.General.Elements); err != nil {
		return err
	}
	if err := checkPositive("--rounds", config.General.Rounds); err != nil {
		return err
	}
	if err := checkPositive("--parallel", config.General.Parallel); err != nil {
		return err
	}
	if config.Log.Folder != "" {
		if err := checkPositive("--log.max-size", config.Log.RotateSize); err != nil {
			return err
		}
	}
	return nil
}

func checkStringAccepted(flag string, val string, accepts []string) error {
	for _, accept := range accepts {
		if val == accept {
			return nil
		}
	}
	acceptsStr := strings.Join(accepts, ", ")
	return fmt.Errorf("unknown arg for %s: %s (%v)", flag, val, acceptsStr)
}

func checkPositive(flag string, val int) error {
	if val <= 0 {
		return fmt.Errorf("%s must be positive: %d", flag, val)
	}
	return nil
}

func loadBenchConfig(file string) (benchConfig, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return benchConfig{}, errors.Wrap(err, "cannot read config file")
	}

	var config benchConfig
	if err := toml.Unmarshal(b, &config); err != nil {
		return benchConfig{}, errors.Wrapf(err, "cannot parse config file %v", file)
	}
	return config, nil
}

func writeBenchConfigToFile(config benchConfig, file string) error {
	b, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "cannot marshal config")
	}
	return os.WriteFile(file, b, 0644)
}
