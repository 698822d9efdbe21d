// Package console implements A6: an optional interactive operator console,
// started by cmd/zerobot when stdin is a TTY. It reuses the teacher's
// scanner/interactive split (console.Console's runScanner/runInteractive)
// but issues a small fixed command set against a running controller instead
// of dispatching through a world command registry.
package console

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"

	"github.com/dm-vev/zerobot/zero/blackboard"
	"github.com/dm-vev/zerobot/zero/controller"
	"github.com/dm-vev/zerobot/zero/game"
)

var lowerCaser = cases.Lower(language.Und)

const defaultPromptPrefix = "> "

// Console reads operator commands from an io.Reader (os.Stdin by default)
// and applies them to a running Controller and its network OutputSink.
type Console struct {
	ctrl   *controller.Controller
	out    game.OutputSink
	log    *slog.Logger
	reader io.Reader
}

// New returns a Console controlling ctrl, sending ship/chat requests
// through out. It reads from os.Stdin unless WithReader overrides it.
func New(ctrl *controller.Controller, out game.OutputSink, log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{ctrl: ctrl, out: out, log: log, reader: os.Stdin}
}

// WithReader overrides the input reader, primarily for tests.
func (c *Console) WithReader(r io.Reader) *Console {
	if r != nil {
		c.reader = r
	}
	return c
}

// Run consumes commands until ctx is cancelled or the reader hits EOF. If
// the reader is os.Stdin, an interactive go-prompt loop with history and
// completion is used; any other reader falls back to a plain line scanner.
func (c *Console) Run(ctx context.Context) {
	if c.reader != os.Stdin {
		c.runScanner(ctx)
		return
	}
	c.runInteractive(ctx)
}

func (c *Console) runScanner(ctx context.Context) {
	scanner := bufio.NewScanner(c.reader)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				c.log.Error("console input error", "err", err)
			}
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c.execute(line)
	}
}

func (c *Console) runInteractive(ctx context.Context) {
	var history []string
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		line := prompt.Input(defaultPromptPrefix, func(doc prompt.Document) []prompt.Suggest {
			return c.complete(doc)
		},
			prompt.OptionTitle("zerobot console"),
			prompt.OptionHistory(history),
			prompt.OptionPrefix(defaultPromptPrefix),
			prompt.OptionCompletionOnDown(),
		)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		history = append(history, line)
		c.execute(line)
	}
}

func (c *Console) complete(doc prompt.Document) []prompt.Suggest {
	word := strings.TrimPrefix(doc.GetWordBeforeCursor(), "/")
	suggestions := []prompt.Suggest{
		{Text: "goto", Description: "/goto <x> <y>"},
		{Text: "say", Description: "/say <message>"},
		{Text: "ship", Description: "/ship <0-7>"},
		{Text: "region", Description: "/region <x> <y>"},
		{Text: "stop", Description: "/stop"},
	}
	return prompt.FilterHasPrefix(suggestions, word, true)
}

func (c *Console) execute(line string) {
	line = strings.TrimPrefix(strings.TrimSpace(line), "/")
	if line == "" {
		return
	}
	fields := strings.Fields(line)
	name := lowerCaser.String(fields[0])
	args := fields[1:]

	switch name {
	case "goto":
		c.cmdGoto(args)
	case "say":
		c.cmdSay(args)
	case "ship":
		c.cmdShip(args)
	case "region":
		c.cmdRegion(args)
	case "stop":
		c.cmdStop()
	default:
		c.log.Warn("console: unknown command", "command", name)
	}
}

func (c *Console) cmdGoto(args []string) {
	if len(args) != 2 {
		c.log.Warn("usage: /goto <x> <y>")
		return
	}
	x, errX := strconv.ParseFloat(args[0], 32)
	y, errY := strconv.ParseFloat(args[1], 32)
	if errX != nil || errY != nil {
		c.log.Warn("console: invalid /goto coordinates", "x", args[0], "y", args[1])
		return
	}
	blackboard.Set(c.ctrl.Blackboard, controller.ConsoleGotoKey, mgl32.Vec2{float32(x), float32(y)})
	c.log.Info("console: goto target set", "x", x, "y", y)
}

func (c *Console) cmdSay(args []string) {
	if len(args) == 0 {
		c.log.Warn("usage: /say <message>")
		return
	}
	msg := game.ChatMessage{Kind: game.ChatPublic, Text: width.Fold.String(strings.Join(args, " "))}
	select {
	case c.out.Chat() <- msg:
	default:
		c.log.Warn("console: chat queue full, message dropped")
	}
}

func (c *Console) cmdShip(args []string) {
	if len(args) != 1 {
		c.log.Warn("usage: /ship <0-7>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n > 7 {
		c.log.Warn("console: ship must be 0-7", "value", args[0])
		return
	}
	c.out.RequestShip(uint8(n))
}

func (c *Console) cmdRegion(args []string) {
	if len(args) != 2 {
		c.log.Warn("usage: /region <x> <y>")
		return
	}
	x, errX := strconv.Atoi(args[0])
	y, errY := strconv.Atoi(args[1])
	if errX != nil || errY != nil {
		c.log.Warn("console: invalid /region coordinates", "x", args[0], "y", args[1])
		return
	}
	idx, tiles, ok := c.ctrl.RegionInfo(x, y)
	if !ok {
		c.log.Warn("console: no region registry built yet")
		return
	}
	c.log.Info("console: region", "x", x, "y", y, "region", idx, "tiles", tiles)
}

func (c *Console) cmdStop() {
	c.out.SendDisconnect()
}
