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
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var version = "v0.3.0"

// app bundles what every command needs.
type app struct {
	config *Config
}

func newApp() *app {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	InitializeColors(config.Render.Color)
	return &app{config: config}
}

// workspace builds a workspace from positional keys and an optional keys file.
func (a *app) workspace(cmd *cobra.Command, keys []string) (*Workspace, LoadReport, error) {
	numeric := a.config.Keys.Numeric
	if f := cmd.Flag("numeric"); f != nil && f.Changed {
		numeric, _ = cmd.Flags().GetBool("numeric")
	}
	ws := NewWorkspace(numeric, a.config.Filter)

	var report LoadReport
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		fileReport, err := LoadKeysFile(ws, path, a.config.Loader.ProgressThreshold)
		if err != nil {
			return nil, report, err
		}
		report = fileReport
	}

	argReport := InsertKeys(ws, keys)
	report.Read += argReport.Read
	report.Inserted += argReport.Inserted
	report.Duplicates += argReport.Duplicates
	report.Rejected += argReport.Rejected

	return ws, report, nil
}

func addTreeFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "read keys from a file, one per line")
	cmd.Flags().Bool("numeric", false, "treat keys as 64-bit integers")
}

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ██╗  ██╗██╗████████╗
██╔══██╗██║   ██║██║     ██║ ██╔╝██║╚══██╔══╝
███████║██║   ██║██║     █████╔╝ ██║   ██║
██╔══██║╚██╗ ██╔╝██║     ██╔═██╗ ██║   ██║
██║  ██║ ╚████╔╝ ███████╗██║  ██╗██║   ██║
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝╚═╝   ╚═╝
Height-balanced binary search trees in your terminal [Version: %s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, version)

	a := newApp()

	var cmdBuild = &cobra.Command{
		Use:   "build [keys...]",
		Short: "Build a tree and print a traversal",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Build inserts every key, applies the deletions and prints the chosen traversal"),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			ws, report, err := a.workspace(cmd, args)
			if err != nil {
				log.Fatalf("Error loading keys: %v", err)
			}

			orderFlag, _ := cmd.Flags().GetString("order")
			order, err := ParseOrder(orderFlag)
			if err != nil {
				log.Fatalf("%v", err)
			}

			deletes, _ := cmd.Flags().GetStringSlice("delete")
			removed := 0
			for _, key := range deletes {
				ok, err := ws.Delete(key)
				if err != nil {
					log.Printf("skipping delete: %v", err)
					continue
				}
				if ok {
					removed++
				}
			}

			fmt.Printf("%s%s-order:%s %s\n", Green, order, Reset, strings.Join(ws.Traverse(order), " "))
			fmt.Printf("%s\n", formatStats(ws))
			fmt.Fprintf(os.Stderr, "%s, deleted %d\n", report, removed)
		},
	}
	addTreeFlags(cmdBuild)
	cmdBuild.Flags().StringSlice("delete", nil, "keys to delete after building")
	cmdBuild.Flags().String("order", string(OrderIn), "traversal to print: in, pre, post or level")

	var cmdShow = &cobra.Command{
		Use:   "show [keys...]",
		Short: "Draw the tree sideways",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Show draws the tree with larger keys on top and each subtree height in brackets"),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			ws, _, err := a.workspace(cmd, args)
			if err != nil {
				log.Fatalf("Error loading keys: %v", err)
			}
			fmt.Println(NewRenderer(a.config.Render).Render(ws))
		},
	}
	addTreeFlags(cmdShow)

	var cmdQuery = &cobra.Command{
		Use:       "query contains|depth|height|min|max [key]",
		Short:     "Answer one question about a tree",
		Long:      fmt.Sprintf("%s\n%s", asciiLogo, "Query builds a tree from --keys and --file, then answers a single question"),
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"contains", "depth", "height", "min", "max"},
		Run: func(cmd *cobra.Command, args []string) {
			keys, _ := cmd.Flags().GetStringSlice("keys")
			ws, _, err := a.workspace(cmd, keys)
			if err != nil {
				log.Fatalf("Error loading keys: %v", err)
			}

			answer, err := runQuery(ws, args[0], args[1:])
			if err != nil {
				log.Fatalf("%v", err)
			}
			fmt.Println(answer)
		},
	}
	addTreeFlags(cmdQuery)
	cmdQuery.Flags().StringSlice("keys", nil, "keys to build the tree from")

	var cmdCheck = &cobra.Command{
		Use:   "check [keys...]",
		Short: "Stress the tree with random operations and verify it",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Check replays random inserts and deletes and validates the AVL invariants after every step"),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			ws, _, err := a.workspace(cmd, args)
			if err != nil {
				log.Fatalf("Error loading keys: %v", err)
			}
			rounds, _ := cmd.Flags().GetInt("rounds")
			seed, _ := cmd.Flags().GetInt64("seed")

			pool := ws.InOrder()
			if len(pool) == 0 {
				pool = randomPool(rounds)
			}
			if err := stressCheck(ws, pool, rounds, rand.New(rand.NewSource(seed))); err != nil {
				fmt.Printf("%sInvariant violated: %v%s\n", Error, err, Reset)
				os.Exit(1)
			}
			fmt.Printf("%s%d operations, all invariants hold%s\n", Green, rounds, Reset)
			fmt.Println(formatStats(ws))
		},
	}
	addTreeFlags(cmdCheck)
	cmdCheck.Flags().Int("rounds", 10000, "number of random operations")
	cmdCheck.Flags().Int64("seed", time.Now().UnixNano(), "random seed")

	var cmdShell = &cobra.Command{
		Use:   "shell [keys...]",
		Short: "Interactive tree shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Shell opens an interactive session that redraws the tree after every command"),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			ws, _, err := a.workspace(cmd, args)
			if err != nil {
				log.Fatalf("Error loading keys: %v", err)
			}
			if err := RunShell(ws, NewRenderer(a.config.Render)); err != nil {
				log.Fatalf("Error running shell: %v", err)
			}
		},
	}
	addTreeFlags(cmdShell)

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlkit usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlkit CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration, creating it on first use",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlkit version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlkit",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the shell when no subcommand is provided
			ws := NewWorkspace(a.config.Keys.Numeric, a.config.Filter)
			if err := RunShell(ws, NewRenderer(a.config.Render)); err != nil {
				log.Fatalf("Error running shell: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdBuild, cmdShow, cmdQuery, cmdCheck, cmdShell, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runQuery(ws *Workspace, question string, args []string) (string, error) {
	needKey := func() (string, error) {
		if len(args) != 1 {
			return "", fmt.Errorf("query %s needs exactly one key", question)
		}
		return args[0], nil
	}

	switch question {
	case "contains":
		key, err := needKey()
		if err != nil {
			return "", err
		}
		found, err := ws.Contains(key)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(found), nil

	case "depth", "height":
		if question == "height" && len(args) == 0 {
			return strconv.Itoa(ws.Stats().Height), nil
		}
		key, err := needKey()
		if err != nil {
			return "", err
		}
		lookup := ws.Depth
		if question == "height" {
			lookup = ws.HeightOf
		}
		n, ok, err := lookup(key)
		if err != nil {
			return "", err
		}
		if !ok {
			return "not found", nil
		}
		return strconv.Itoa(n), nil

	case "min", "max":
		get := ws.Min
		if question == "max" {
			get = ws.Max
		}
		key, ok := get()
		if !ok {
			return "empty", nil
		}
		return key, nil
	}

	return "", fmt.Errorf("unknown query %q (want contains, depth, height, min or max)", question)
}

func randomPool(n int) []string {
	pool := make([]string, max(n/2, 1))
	for i := range pool {
		pool[i] = strconv.Itoa(i)
	}
	return pool
}

// stressCheck applies rounds random inserts and deletes drawn from pool and
// validates the tree after each one.
func stressCheck(ws *Workspace, pool []string, rounds int, rng *rand.Rand) error {
	for i := 0; i < rounds; i++ {
		key := pool[rng.Intn(len(pool))]
		op := "insert"
		var err error
		if rng.Intn(2) == 0 {
			op = "delete"
			_, err = ws.Delete(key)
		} else {
			_, err = ws.Insert(key)
		}
		if err != nil {
			return fmt.Errorf("step %d: %s %s: %w", i, op, key, err)
		}
		if err := ws.Validate(); err != nil {
			return fmt.Errorf("step %d: after %s %s: %w", i, op, key, err)
		}
	}
	return nil
}
