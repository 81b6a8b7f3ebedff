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
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func viperKey(key string) string {
	return "hexdump." + key
}

func ViperGetString(key string) string {
	return viper.GetString(viperKey(key))
}

func ViperGetBool(key string) bool {
	return viper.GetBool(viperKey(key))
}

func OptionString(cmd *cobra.Command, name, flag, defaultValue, help string) {
	cmd.PersistentFlags().StringP(name, flag, defaultValue, help)
	viper.BindPFlag(viperKey(name), cmd.PersistentFlags().Lookup(name))
}

func OptionSwitch(cmd *cobra.Command, name, flag, help string) {
	cmd.PersistentFlags().BoolP(name, flag, false, help)
	viper.BindPFlag(viperKey(name), cmd.PersistentFlags().Lookup(name))
}

func InitConfig() {
	cfgFile := ViperGetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(filepath.Join(home, ".config", "hexdump"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}
	viper.SetEnvPrefix("hexdump")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil && cfgFile != "" {
		cobra.CheckErr(err)
	}
	if ViperGetBool("debug") {
		var buf bytes.Buffer
		err := viper.WriteConfigTo(&buf)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("config file: %s\n### START ###\n%s\n### END ###\n", viper.ConfigFileUsed(), buf.String())
	}
}
