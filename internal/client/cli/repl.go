package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// replCommands feeds tab completion.
var replCommands = []string{"help", "list", "next", "prev", "show", "new", "edit", "delete", "reload", "exit"}

const replHelp = `Available commands:
  list [PAGE]   show a page of entries (l)
  next, prev    turn the page (n, p)
  show REF      show an entry in full (s)
  new           write a new entry
  edit REF      edit an entry (e)
  delete REF    delete an entry (rm)
  reload        fetch the list again (r)
  exit          leave the program (quit, q)
REF is the entry number in the list or its id.`

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Reload(ctx context.Context) error
	List(ctx context.Context, page int) error
	Turn(ctx context.Context, delta int) error
	Show(ctx context.Context, ref string) error
	New(ctx context.Context) error
	Edit(ctx context.Context, ref string) error
	Delete(ctx context.Context, ref string, confirmed bool) error
}

// runREPL loads the list, prints the first page and then reads commands
// until the user exits or aborts the prompt.
//
// Errors returned by command handlers are ignored here; handlers print
// their own error banner.
func runREPL(ctx context.Context, a execIface, p Prompter) error {
	printlnFn("diary: type 'help' for commands")
	if err := a.Reload(ctx); err == nil {
		_ = a.List(ctx, 0)
	}

	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := p.Ask("diary> ", "")
		if err != nil {
			if isAbort(err) {
				printlnFn("Bye!")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if h, ok := p.(interface{ AppendHistory(string) }); ok {
			h.AppendHistory(line)
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help", "?":
			printlnFn(replHelp)

		case "l", "ls", "list":
			page := 0
			if len(args) > 0 {
				page, _ = strconv.Atoi(args[0])
			}
			_ = a.List(ctx, page)

		case "n", "next":
			_ = a.Turn(ctx, 1)

		case "p", "prev":
			_ = a.Turn(ctx, -1)

		case "r", "reload":
			if err := a.Reload(ctx); err == nil {
				_ = a.List(ctx, 0)
			}

		case "new", "add", "create":
			_ = a.New(ctx)

		case "s", "show", "e", "edit", "rm", "del", "delete":
			if len(args) == 0 {
				printlnFn("Usage:", cmd, "REF")
				continue
			}
			switch cmd {
			case "s", "show":
				_ = a.Show(ctx, args[0])
			case "e", "edit":
				_ = a.Edit(ctx, args[0])
			default:
				_ = a.Delete(ctx, args[0], false)
			}

		case "exit", "quit", "q":
			printlnFn("Bye!")
			return nil

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
