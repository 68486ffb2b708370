// Command tokenize is a small CLI front end over the tokenizer module:
// given a dictionary/affix data directory and a sentence, it prints the
// resulting lattice one slot per line.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "tokenize",
		Short:        "tokenize a sentence against a Link Grammar-style affix table and dictionary",
		SilenceUsage: true,
	}

	dataDir    string
	configPath string
	verbosity  int
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", ".", "directory of affix-class and word-list data files")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "optional YAML config file (see config.Config)")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "debug trace verbosity")
	return rootCmd.Execute()
}

func init() {
	logrus.SetOutput(os.Stderr)
}
