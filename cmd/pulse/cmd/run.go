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
	"fmt"

	"github.com/jt05610/pulse/cycle"
	"github.com/jt05610/pulse/env"
	"github.com/jt05610/pulse/press"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var presses uint64

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Press the button and count pulses",
	Long: `Load a network definition, press the button the requested number of
times and print the low and high pulse totals with their product. Press
counts far beyond the network's cycle length cost no extra time.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		defer func() {
			_ = logger.Sync()
		}()
		environment := env.LoadEnv(logger)
		if !cmd.Flags().Changed("presses") {
			presses = environment.Presses
		}
		net := loadNet(logger, environment)
		runner := cycle.New(
			press.New(net, press.WithLogger(logger)),
			cycle.WithLogger(logger),
		)
		total := runner.Total(presses)
		logger.Info("run complete",
			zap.String("net", net.Name),
			zap.Uint64("presses", presses),
			zap.Uint64("low", total.Low),
			zap.Uint64("high", total.High),
		)
		fmt.Printf("Pulse product after %d presses: %d * %d = %d\n",
			presses, total.Low, total.High, total.Low*total.High)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Uint64VarP(&presses, "presses", "n", 1000, "number of button presses")
}
