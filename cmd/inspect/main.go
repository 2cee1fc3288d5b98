// inspect: command-line harness over the inspector library.
//
// Reads type-tree documents (JSON or YAML) and prints their rendered form,
// their resolved terminal, or an assignability verdict. Also hosts a small
// REPL (repl.go). The library itself performs no I/O; everything file- and
// terminal-shaped lives here.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gotasource/inspector"
)

var outputFormat string

func main() {
	cobra.OnInitialize(initConfig)

	root := &cobra.Command{
		Use:           "inspect",
		Short:         "Query, resolve, format, and compare type-description trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format for show: tree or path (default from config)")

	root.AddCommand(newTreeCmd(), newPathCmd(), newResolveCmd(), newAssignableCmd(), newReplCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config"))
	}
	viper.SetConfigName("inspect")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("INSPECT")

	viper.SetDefault("format", "tree")
	viper.SetDefault("history_file", ".inspect_history")

	// Missing config file is the normal case.
	_ = viper.ReadInConfig()
}

func resolvedFormat() string {
	if outputFormat != "" {
		return outputFormat
	}
	return viper.GetString("format")
}

// loadTree reads and decodes a tree document. The extension picks the codec;
// anything that is not .yaml/.yml is treated as JSON.
func loadTree(path string) (inspector.Type, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return inspector.ParseTypeYAML(data)
	default:
		return inspector.ParseType(data)
	}
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the fully indented tree of a type document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(args[0])
			if err != nil {
				return err
			}
			fmt.Println(inspector.TypeTree(t))
			return nil
		},
	}
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path FILE",
		Short: "Print the one-line resolution path of a type document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(args[0])
			if err != nil {
				return err
			}
			fmt.Println(inspector.TypePath(t))
			return nil
		},
	}
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve FILE",
		Short: "Print the deepest-resolved node of a type document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(args[0])
			if err != nil {
				return err
			}
			deep := inspector.ResolveDeepest(t)
			switch resolvedFormat() {
			case "path":
				fmt.Println(inspector.TypePath(deep))
			default:
				fmt.Println(inspector.TypeTree(deep))
			}
			return nil
		},
	}
}

func newAssignableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assignable SOURCE TARGET",
		Short: "Check whether SOURCE is structurally assignable to TARGET",
		Long:  "Exits 0 when the source document's type is assignable to the target document's type, 1 otherwise.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadTree(args[0])
			if err != nil {
				return err
			}
			dst, err := loadTree(args[1])
			if err != nil {
				return err
			}
			if inspector.AssignableTo(src, dst) {
				fmt.Printf("%s -> %s: assignable\n", inspector.TypePath(src), inspector.TypePath(dst))
				return nil
			}
			fmt.Printf("%s -> %s: not assignable\n", inspector.TypePath(src), inspector.TypePath(dst))
			os.Exit(1)
			return nil
		},
	}
}
