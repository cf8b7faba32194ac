package display

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/minaorangina/klondike/protocol"
)

var ErrQuit = errors.New("quit")

const HelpText = `s: click the stock   w: click the waste
f N: click foundation N (0-3)   p N: click pile N (0-6)
n: new game   q: quit`

// ParseCommand turns a line like "p 3" into a click.
// Indices are range checked by the engine, not here.
func ParseCommand(line string) (protocol.InboundMessage, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return protocol.InboundMessage{}, fmt.Errorf("empty command")
	}

	var cmd protocol.Cmd
	switch fields[0] {
	case "s", "stock":
		cmd = protocol.StockClicked
	case "w", "waste":
		cmd = protocol.WasteClicked
	case "f", "foundation":
		cmd = protocol.FoundationClicked
	case "p", "pile":
		cmd = protocol.PileClicked
	case "n", "new":
		cmd = protocol.NewGame
	case "q", "quit":
		return protocol.InboundMessage{}, ErrQuit
	default:
		return protocol.InboundMessage{}, fmt.Errorf("unknown command %q", fields[0])
	}

	if cmd.MaxIndex() < 0 {
		if len(fields) != 1 {
			return protocol.InboundMessage{}, fmt.Errorf("%s takes no index", fields[0])
		}
		return protocol.InboundMessage{Command: cmd}, nil
	}

	if len(fields) != 2 {
		return protocol.InboundMessage{}, fmt.Errorf("%s needs an index", fields[0])
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		return protocol.InboundMessage{}, fmt.Errorf("bad index %q: %w", fields[1], err)
	}

	return protocol.InboundMessage{Command: cmd, Index: index}, nil
}
