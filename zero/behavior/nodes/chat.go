package nodes

import (
	"golang.org/x/text/width"

	"github.com/dm-vev/zerobot/zero/behavior"
	"github.com/dm-vev/zerobot/zero/game"
)

// ChatMessageNode enqueues a fixed chat line of the given kind onto the
// network collaborator's chat channel. Succeeds when the line is queued;
// fails if the output channel is unset or its queue is full.
type ChatMessageNode struct {
	kind      game.ChatKind
	frequency uint16
	to        string
	text      string
}

// NewChatMessageNode returns a leaf that sends text as kind. frequency only
// matters for ChatFrequency, to only for ChatPrivate.
func NewChatMessageNode(kind game.ChatKind, frequency uint16, to, text string) *ChatMessageNode {
	return &ChatMessageNode{kind: kind, frequency: frequency, to: to, text: text}
}

func (n *ChatMessageNode) Tick(ctx *behavior.Context) behavior.Result {
	ch := ctx.Output.Chat()
	if ch == nil {
		return behavior.Failure
	}
	// Fold full-width characters down to their ASCII form before queueing;
	// the proprietary chat wire format only carries the narrow set and the
	// external collaborator does not normalize on our behalf.
	text := width.Fold.String(n.text)
	msg := game.ChatMessage{Kind: n.kind, Frequency: n.frequency, To: n.to, Text: text}
	select {
	case ch <- msg:
		return behavior.Success
	default:
		return behavior.Failure // queue full; let the tree retry next tick
	}
}

func (n *ChatMessageNode) Reset() {}
