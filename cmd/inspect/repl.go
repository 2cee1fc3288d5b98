// repl.go: interactive loop for poking at type documents.
//
// Inline JSON is decoded and pretty-printed as a tree. Colon commands work
// on files:
//
//	:tree FILE           indented dump
//	:path FILE           one-line path
//	:resolve FILE        deepest-resolved node
//	:assignable SRC DST  assignability verdict
//	:quit                exit
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gotasource/inspector"
)

const promptMain = "==> "

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive type-tree inspector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func historyPath() string {
	name := viper.GetString("history_file")
	if filepath.IsAbs(name) {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}

func runRepl() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("inspector REPL. Paste a JSON type document, or :tree/:path/:resolve/:assignable/:quit.")
	for {
		input, err := line.Prompt(promptMain)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, ":") {
			if done := runReplCommand(input); done {
				return nil
			}
			continue
		}

		// Anything else is an inline JSON document.
		t, err := inspector.ParseType([]byte(input))
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(inspector.TypeTree(t))
	}
}

// runReplCommand executes a colon command; it returns true on :quit.
func runReplCommand(input string) bool {
	fields := strings.Fields(input)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case ":quit", ":q":
		return true
	case ":tree", ":path", ":resolve":
		if len(args) != 1 {
			fmt.Printf("usage: %s FILE\n", cmd)
			return false
		}
		t, err := loadTree(args[0])
		if err != nil {
			fmt.Println("error:", err)
			return false
		}
		switch cmd {
		case ":tree":
			fmt.Println(inspector.TypeTree(t))
		case ":path":
			fmt.Println(inspector.TypePath(t))
		case ":resolve":
			fmt.Println(inspector.TypePath(inspector.ResolveDeepest(t)))
		}
	case ":assignable":
		if len(args) != 2 {
			fmt.Println("usage: :assignable SOURCE TARGET")
			return false
		}
		src, err := loadTree(args[0])
		if err != nil {
			fmt.Println("error:", err)
			return false
		}
		dst, err := loadTree(args[1])
		if err != nil {
			fmt.Println("error:", err)
			return false
		}
		if inspector.AssignableTo(src, dst) {
			fmt.Println("assignable")
		} else {
			fmt.Println("not assignable")
		}
	default:
		fmt.Println("unknown command", cmd)
	}
	return false
}
