package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/linkgrammar/tokenizer/affix"
	"github.com/linkgrammar/tokenizer/config"
	"github.com/linkgrammar/tokenizer/dict"
	"github.com/linkgrammar/tokenizer/internal/intern"
	"github.com/linkgrammar/tokenizer/spell"
	"github.com/linkgrammar/tokenizer/tokenize"
)

var runCmd = &cobra.Command{
	Use:   "run [sentence...]",
	Short: "tokenize the sentence given as arguments and print the lattice (stdin is not read)",
	RunE:  runTokenize,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	log := logrus.NewEntry(logrus.StandardLogger())
	if verbosity > 0 {
		logrus.SetLevel(logrus.DebugLevel)
	}

	var cfg *config.Config
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	} else {
		cfg = &config.Config{DictionaryDir: dataDir}
	}

	root := dataDir
	if cfg.DictionaryDir != "" {
		root = cfg.DictionaryDir
	}

	table, err := affix.Load(os.DirFS(root), ".")
	if err != nil {
		return fmt.Errorf("run: loading affix table: %w", err)
	}
	cfg.ApplyLimits(table)

	d, err := dict.LoadMapDictionary(os.DirFS(root), ".", table.Unknown)
	if err != nil {
		return fmt.Errorf("run: loading dictionary: %w", err)
	}

	var oracle spell.Oracle = spell.None{}

	interner := new(intern.Table)
	tok := tokenize.New(interner, d, table, oracle, cfg.TokenizeOptions(), log, nil)

	sentence := strings.Join(args, " ")
	if sentence == "" {
		return fmt.Errorf("run: no sentence given")
	}

	sent, err := tok.Tokenize(sentence)
	if err != nil {
		return err
	}

	for i := 0; i < sent.Length(); i++ {
		slot := sent.Slot(i)
		alts := make([]string, 0, len(slot.Alternatives))
		for _, id := range slot.Alternatives {
			alts = append(alts, interner.Value(id))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", i, strings.Join(alts, " | "))
	}
	return nil
}
