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
	"strings"

	"github.com/jt05610/pulse/analysis"
	"github.com/jt05610/pulse/env"
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Describe the wiring of a network",
	Long: `Load a network definition and report its module census, fan-in and
fan-out per module, dangling sinks and reachability from the broadcaster.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		defer func() {
			_ = logger.Sync()
		}()
		environment := env.LoadEnv(logger)
		net := &analysis.Net{Net: loadNet(logger, environment)}
		fmt.Printf("%s: %d modules\n", net.Name, net.Size())
		for _, m := range net.Modules() {
			fmt.Printf("  %-12s %-11s fan-in %d, fan-out %d -> %s\n",
				m.Name(), m.Kind(), net.FanIn(m.Name()), net.FanOut(m.Name()),
				strings.Join(m.Destinations(), ", "))
		}
		if sinks := net.Sinks(); len(sinks) > 0 {
			fmt.Printf("sinks: %s\n", strings.Join(sinks, ", "))
		}
		reachable := net.Reachable()
		fmt.Printf("reachable from broadcaster: %d of %d names\n",
			len(reachable), len(net.Names()))
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
