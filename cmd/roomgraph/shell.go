package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/katalvlaran/roomgraph/report"
	"github.com/katalvlaran/roomgraph/room"
)

const shellHelp = `commands:
  analyze                         run both phases over the current rooms
  weights [all]                   weight table of the activity graph
  reset                           clear the weight cache
  rooms                           list rooms
  add <id> <category> <area>      add a room
  remove <id>                     remove a room
  metrics                         print prometheus metrics
  help                            this text
  exit                            leave the shell
`

// errQuit ends the shell loop.
var errQuit = errors.New("quit")

// runShell reads commands until exit or end of input. Command errors are
// printed and the loop continues.
func (a *app) runShell(ctx context.Context, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "roomgraph> ",
		Stdin:           io.NopCloser(in),
		Stdout:          out,
		Stderr:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("analyze"),
			readline.PcItem("weights", readline.PcItem("all")),
			readline.PcItem("reset"),
			readline.PcItem("rooms"),
			readline.PcItem("add"),
			readline.PcItem("remove"),
			readline.PcItem("metrics"),
			readline.PcItem("help"),
			readline.PcItem("exit"),
		),
	})
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	defer rl.Close()

	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("shell: %w", err)
		}

		if err := a.exec(ctx, line, out); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

// exec runs one shell line. Blank lines are no-ops.
func (a *app) exec(ctx context.Context, line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "analyze":
		return a.analyze(ctx, out)
	case "weights":
		all := len(args) > 0 && args[0] == "all"
		return a.lab.DumpWeights(out, all)
	case "reset":
		n := a.lab.ResetWeights()
		_, err := fmt.Fprintf(out, "cleared %d cached weights\n", n)
		return err
	case "rooms":
		return report.WriteRooms(out, a.catalog.Rooms())
	case "add":
		return a.addRoom(args, out)
	case "remove":
		return a.removeRoom(args, out)
	case "metrics":
		return a.metrics.WriteText(out)
	case "help", "?":
		_, err := io.WriteString(out, shellHelp)
		return err
	case "exit", "quit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
}

func (a *app) addRoom(args []string, out io.Writer) error {
	if len(args) != 3 {
		return errors.New("usage: add <id> <category> <area>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("add: bad id %q", args[0])
	}
	area, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("add: bad area %q", args[2])
	}
	r, err := room.New(id, args[1], area)
	if err != nil {
		return err
	}
	if err := a.catalog.Add(r); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "added room %d\n", id)
	return err
}

func (a *app) removeRoom(args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: remove <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("remove: bad id %q", args[0])
	}
	if err := a.catalog.Remove(id); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "removed room %d\n", id)
	return err
}
