package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/harmony-one/linkedqueue/internal/cli"
	"github.com/harmony-one/linkedqueue/internal/utils"
)

func TestGeneralFlags(t *testing.T) {
	tests := []struct {
		args      []string
		expConfig generalConfig
	}{
		{
			args:      []string{},
			expConfig: defaultConfig.General,
		},
		{
			args: []string{"-n", "100", "--rounds", "5", "-p", "3", "--scenarios", "insert,workiva"},
			expConfig: generalConfig{
				Elements:  100,
				Rounds:    5,
				Parallel:  3,
				Scenarios: []string{"insert", "workiva"},
			},
		},
		{
			args: []string{"--size", "42"},
			expConfig: generalConfig{
				Elements:  42,
				Rounds:    defaultConfig.General.Rounds,
				Parallel:  defaultConfig.General.Parallel,
				Scenarios: defaultConfig.General.Scenarios,
			},
		},
		{
			// the new flag wins over the deprecated one
			args: []string{"--size", "42", "--elements", "7"},
			expConfig: generalConfig{
				Elements:  7,
				Rounds:    defaultConfig.General.Rounds,
				Parallel:  defaultConfig.General.Parallel,
				Scenarios: defaultConfig.General.Scenarios,
			},
		},
	}
	for i, test := range tests {
		ts := newFlagTestSuite(t, generalFlags, applyGeneralFlags)

		got, err := ts.run(test.args)
		if err != nil {
			t.Fatalf("Test %v: %v", i, err)
		}
		if !reflect.DeepEqual(got.General, test.expConfig) {
			t.Errorf("Test %v: unexpected config: \n\t%+v\n\t%+v", i, got.General, test.expConfig)
		}
		ts.tearDown()
	}
}

func TestLogFlags(t *testing.T) {
	tests := []struct {
		args      []string
		expConfig logConfig
	}{
		{
			args:      []string{},
			expConfig: defaultConfig.Log,
		},
		{
			args: []string{"--log.dir", "/tmp/bench", "--log.name", "b.log", "--log.max-size", "5",
				"-v", "4", "--log.console=false"},
			expConfig: logConfig{
				Folder:     "/tmp/bench",
				FileName:   "b.log",
				RotateSize: 5,
				Verbosity:  4,
				Console:    false,
			},
		},
	}
	for i, test := range tests {
		ts := newFlagTestSuite(t, logFlags, applyLogFlags)

		got, err := ts.run(test.args)
		if err != nil {
			t.Fatalf("Test %v: %v", i, err)
		}
		assert.Equal(t, test.expConfig, got.Log, "Test %v", i)
		ts.tearDown()
	}
}

func TestGetBenchConfig(t *testing.T) {
	tests := []struct {
		args   []string
		expErr error
	}{
		{
			args:   []string{"-n", "10"},
			expErr: nil,
		},
		{
			args:   []string{"--scenarios", "insert,shuffle"},
			expErr: fmt.Errorf("unknown arg for --scenarios: shuffle"),
		},
		{
			args:   []string{"-c", ".testdata/not-exist.conf"},
			expErr: fmt.Errorf("cannot read config file"),
		},
	}
	for i, test := range tests {
		var gotErr error
		cmd := makeTestCommand(func(cmd *cobra.Command, args []string) {
			_, gotErr = getBenchConfig(cmd)
		})
		flags := append([]cli.Flag{configFlag}, generalFlags...)
		flags = append(flags, logFlags...)
		if err := cli.RegisterFlags(cmd, flags); err != nil {
			t.Fatal(err)
		}
		cmd.SetArgs(test.args)
		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}
		if assErr := assertError(gotErr, test.expErr); assErr != nil {
			t.Errorf("Test %v: %v", i, assErr)
		}
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	testDir := filepath.Join(testBaseDir, t.Name())
	os.RemoveAll(testDir)
	os.MkdirAll(testDir, 0777)
	file := filepath.Join(testDir, "bench.conf")
	fileCfg := makeTestConfig(func(cfg *benchConfig) {
		cfg.General.Elements = 64
		cfg.General.Rounds = 2
	})
	if err := writeBenchConfigToFile(fileCfg, file); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		args        []string
		expElements int
		expLogged   bool
	}{
		{
			args:        []string{"-c", file},
			expElements: 64,
			expLogged:   false,
		},
		{
			args:        []string{"-c", file, "-n", "8"},
			expElements: 8,
			expLogged:   true,
		},
		{
			// no config file, nothing is overridden
			args:        []string{"-n", "8"},
			expElements: 8,
			expLogged:   false,
		},
	}
	for i, test := range tests {
		redirector := utils.NewTestLogRedirector(t, 3)
		var buf bytes.Buffer
		utils.AddLogWriter(&buf)

		var (
			got    benchConfig
			gotErr error
		)
		cmd := makeTestCommand(func(cmd *cobra.Command, args []string) {
			got, gotErr = getBenchConfig(cmd)
		})
		flags := append([]cli.Flag{configFlag}, overrideFlags()...)
		if err := cli.RegisterFlags(cmd, flags); err != nil {
			t.Fatal(err)
		}
		cmd.SetArgs(test.args)
		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}
		redirector.Close()

		if gotErr != nil {
			t.Fatalf("Test %v: %v", i, gotErr)
		}
		assert.Equal(t, test.expElements, got.General.Elements, "Test %v", i)
		assert.Equal(t, test.expLogged, strings.Contains(buf.String(), "override the config file"), "Test %v", i)
	}
}

type flagTestSuite struct {
	t *testing.T

	cmd *cobra.Command
	bc  benchConfig
}

func newFlagTestSuite(t *testing.T, flags []cli.Flag, applyFlags func(*cobra.Command, *benchConfig)) *flagTestSuite {
	cli.SetParseErrorHandle(func(err error) { t.Fatal(err) })

	ts := &flagTestSuite{t: t, bc: getDefaultBenchConfigCopy()}
	ts.cmd = makeTestCommand(func(cmd *cobra.Command, args []string) {
		applyFlags(cmd, &ts.bc)
	})
	if err := cli.RegisterFlags(ts.cmd, flags); err != nil {
		t.Fatal(err)
	}

	return ts
}

func (ts *flagTestSuite) run(args []string) (benchConfig, error) {
	ts.cmd.SetArgs(args)
	err := ts.cmd.Execute()
	return ts.bc, err
}

func (ts *flagTestSuite) tearDown() {
	cli.SetParseErrorHandle(func(error) {})
}

func makeTestCommand(run func(cmd *cobra.Command, args []string)) *cobra.Command {
	return &cobra.Command{
		Use: "test",
		Run: run,
	}
}

func assertError(gotErr, expErr error) error {
	if (gotErr == nil) != (expErr == nil) {
		return fmt.Errorf("error unexpected [%v] / [%v]", gotErr, expErr)
	}
	if gotErr == nil {
		return nil
	}
	if !strings.Contains(gotErr.Error(), expErr.Error()) {
		return fmt.Errorf("error unexpected [%v] / [%v]", gotErr, expErr)
	}
	return nil
}
