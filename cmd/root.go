/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/rstms/hexdump/hexdump"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Version: "0.1.2",
	Use:     "hexdump [flags] [file...]",
	Short:   "dump bytes as hex values and printable ASCII",
	Long: `
Dump the contents of each file as hexadecimal byte values alongside their
printable ASCII rendering.  With no files, standard input is dumped.  Use
--skip and --length to select a byte window; each file restarts its own
window.
`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		skip, err := hexdump.ParseCount(ViperGetString("skip"))
		cobra.CheckErr(err)
		length := hexdump.ReadAll
		if param := ViperGetString("length"); param != "" {
			count, err := hexdump.ParseCount(param)
			cobra.CheckErr(err)
			length = int64(count)
		}
		format := hexdump.Format
		if ViperGetBool("align") {
			format = hexdump.FormatAligned
		}
		if len(args) == 0 {
			data, err := hexdump.ReadWindow(os.Stdin, skip, length)
			cobra.CheckErr(err)
			fmt.Print(format(data, skip))
			return
		}
		for _, path := range args {
			data, err := hexdump.ReadFileWindow(path, skip, length)
			cobra.CheckErr(err)
			fmt.Print(format(data, skip))
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)
	OptionString(rootCmd, "config", "c", "", "config file")
	OptionSwitch(rootCmd, "debug", "d", "produce debug output")
	OptionString(rootCmd, "skip", "s", "0", "bytes to skip before dumping each source")
	OptionString(rootCmd, "length", "n", "", "maximum bytes to dump per source")
	OptionSwitch(rootCmd, "align", "a", "align dump lines to 16 byte boundaries")
}
