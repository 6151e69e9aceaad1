// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/cybrota/ordset/orderedset"
	"github.com/spf13/cobra"
)

// loadConfigOrDefault never fails: a broken config file is reported and
// the defaults are used.
func loadConfigOrDefault() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return cfg
}

// inputOptions merges the persistent flags into the configured input
// options. Only flags given on the command line override the file.
func inputOptions(cmd *cobra.Command, cfg *Config) (InputConfig, bool) {
	opts := cfg.Input
	flags := cmd.Flags()

	if flags.Changed("numeric") {
		opts.Numeric, _ = flags.GetBool("numeric")
	}
	if flags.Changed("no-trim") {
		noTrim, _ := flags.GetBool("no-trim")
		opts.TrimSpace = !noTrim
	}
	if flags.Changed("keep-empty") {
		keepEmpty, _ := flags.GetBool("keep-empty")
		opts.SkipEmpty = !keepEmpty
	}

	noProgress, _ := flags.GetBool("no-progress")
	return opts, !noProgress
}

func mustLoadSet(cmd *cobra.Command, args []string) *orderedset.Set[string] {
	opts, showProgress := inputOptions(cmd, loadConfigOrDefault())
	set, err := loadSet(args, opts, showProgress)
	if err != nil {
		log.Fatalf("Error reading input: %v", err)
	}
	return set
}

func main() {
	banner := fmt.Sprintf("ordset %s%s%s: sorted, de-duplicated lines backed by an AVL ordered set", Green, version, Reset)

	var cmdSort = &cobra.Command{
		Use:   "sort [files...]",
		Short: "Print distinct lines in ascending order",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Sort reads every line into an ordered set and prints it back in order"),
		Run: func(cmd *cobra.Command, args []string) {
			set := mustLoadSet(cmd, args)

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			if reverse, _ := cmd.Flags().GetBool("reverse"); reverse {
				values := set.Values()
				for i := len(values) - 1; i >= 0; i-- {
					fmt.Fprintln(out, values[i])
				}
				return
			}
			for v := range set.All() {
				fmt.Fprintln(out, v)
			}
		},
	}
	cmdSort.Flags().BoolP("reverse", "r", false, "print in descending order")

	var cmdUniq = &cobra.Command{
		Use:   "uniq [files...]",
		Short: "Print distinct lines in first-seen order",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Uniq drops repeated lines anywhere in the input, not only adjacent ones"),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfigOrDefault()
			opts, showProgress := inputOptions(cmd, cfg)

			sources, closeAll, err := openSources(args)
			if err != nil {
				log.Fatalf("Error opening input: %v", err)
			}
			defer closeAll()

			d := NewDeduper(cfg.Dedup)
			if err := writeUnique(os.Stdout, sources, d, opts, showProgress); err != nil {
				log.Fatalf("Error writing output: %v", err)
			}
		},
	}

	var cmdTree = &cobra.Command{
		Use:   "tree [files...]",
		Short: "Draw the AVL tree built from the input",
		Run: func(cmd *cobra.Command, args []string) {
			set := mustLoadSet(cmd, args)

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()
			if _, err := set.Fprint(out); err != nil {
				log.Fatalf("Error writing tree: %v", err)
			}
		},
	}

	var cmdStats = &cobra.Command{
		Use:   "stats [files...]",
		Short: "Report size, height and shape of the tree",
		Run: func(cmd *cobra.Command, args []string) {
			set := mustLoadSet(cmd, args)
			verify, _ := cmd.Flags().GetBool("verify")

			var checkErr error
			if verify {
				checkErr = set.Check()
			}
			writeStats(os.Stdout, computeStats(set), checkErr, verify)
			if checkErr != nil {
				os.Exit(1)
			}
		},
	}
	cmdStats.Flags().Bool("verify", false, "check ordering, heights and balance of every node")

	var cmdInspect = &cobra.Command{
		Use:   "inspect [files...]",
		Short: "Open a dashboard of the tree shape",
		Run: func(cmd *cobra.Command, args []string) {
			set := mustLoadSet(cmd, args)
			name := "stdin"
			if len(args) > 0 {
				name = fmt.Sprintf("%s (+%d more)", args[0], len(args)-1)
				if len(args) == 1 {
					name = args[0]
				}
			}
			if err := runInspect(name, computeStats(set), set.Check()); err != nil {
				log.Fatalf("Error running dashboard: %v", err)
			}
		},
	}

	var cmdShell = &cobra.Command{
		Use:   "shell [files...]",
		Short: "Start an interactive shell over a live set",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfigOrDefault()
			opts, _ := inputOptions(cmd, cfg)

			set := newLineSet(opts)
			session := NewSession(set, opts, NewFileCache(cfg.Cache))
			if len(args) > 0 {
				if _, err := session.load(args); err != nil {
					log.Fatalf("Error loading input: %v", err)
				}
			}
			if err := runShell(session); err != nil {
				log.Fatalf("Error running shell: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print ordset usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating it when missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := displaySettings(); err != nil {
				log.Fatalf("Error: %v", err)
			}
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print ordset version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "ordset",
		Version: version,
		Long:    banner,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolP("numeric", "n", false, "order lines holding numbers by value")
	flags.Bool("no-trim", false, "keep surrounding whitespace")
	flags.Bool("keep-empty", false, "keep empty lines")
	flags.Bool("no-progress", false, "never show a progress bar")

	rootCmd.AddCommand(cmdSort, cmdUniq, cmdTree, cmdStats, cmdInspect, cmdShell, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
