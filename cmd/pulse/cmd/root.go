/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"context"
	"os"

	"github.com/jt05610/pulse"
	"github.com/jt05610/pulse/env"
	"github.com/jt05610/pulse/pulsefile"
	"github.com/jt05610/pulse/pulsefile/v1/text"
	"github.com/jt05610/pulse/pulsefile/v1/yaml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inputFile string
	format    string
	debug     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Simulate pulse propagation through a module network",
	Long: `pulse simulates a network of broadcaster, flip-flop and conjunction
modules exchanging low and high pulses, and extrapolates pulse totals over
arbitrarily many button presses by detecting when the system state repeats.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "network definition file")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "definition format (text|yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func newLogger() *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

// loadNet resolves the input path and format from flags, falling back to the
// environment, and loads the network.
func loadNet(logger *zap.Logger, environment *env.Environment) *pulse.Net {
	path, fmtName := inputFile, format
	if path == "" {
		path = environment.Input
	}
	if fmtName == "" {
		fmtName = environment.Format
	}
	if path == "" {
		logger.Fatal("no input file; use --input or PULSE_INPUT")
	}
	var service pulsefile.Service
	switch fmtName {
	case "", "text":
		service = &text.Service{}
	case "yaml":
		service = &yaml.Service{}
	default:
		logger.Fatal("unknown format", zap.String("format", fmtName))
	}
	f, err := os.Open(path)
	if err != nil {
		logger.Fatal("failed to open input", zap.Error(err))
	}
	defer func() {
		_ = f.Close()
	}()
	net, err := service.Load(context.Background(), f)
	if err != nil {
		logger.Fatal("failed to load network", zap.Error(err))
	}
	return net
}
