// Package bridge finds bridge words: the words b for which the graph holds
// both word1→b and b→word2.
//
// Lookups never fail with a Go error. Every outcome, including a missing
// graph or missing words, is a Kind on the returned Result, and
// Result.String renders the user-facing sentence for it.
package bridge

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/tokenize"
)

// Kind classifies a bridge lookup. Checks run in declaration order; the first
// that applies wins.
type Kind int

const (
	NoGraph Kind = iota
	BothMissing
	FirstMissing
	SecondMissing
	NoBridges
	OneBridge
	ManyBridges
)

var kindNames = [...]string{
	NoGraph:       "no-graph",
	BothMissing:   "both-missing",
	FirstMissing:  "first-missing",
	SecondMissing: "second-missing",
	NoBridges:     "no-bridges",
	OneBridge:     "one-bridge",
	ManyBridges:   "many-bridges",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Result is the outcome of Find. Word1 and Word2 hold the normalized query words.
type Result struct {
	Kind    Kind
	Word1   string
	Word2   string
	Bridges []string
}

// NoGraphMessage is shown whenever a query runs before any text was loaded.
const NoGraphMessage = "No graph exists. Please load a file first."

// String renders r as the sentence a user sees.
func (r Result) String() string {
	switch r.Kind {
	case NoGraph:
		return NoGraphMessage
	case BothMissing:
		return fmt.Sprintf(`No "%s" and "%s" in the graph!`, r.Word1, r.Word2)
	case FirstMissing:
		return fmt.Sprintf(`No "%s" in the graph!`, r.Word1)
	case SecondMissing:
		return fmt.Sprintf(`No "%s" in the graph!`, r.Word2)
	case NoBridges:
		return fmt.Sprintf(`No bridge words from "%s" to "%s"!`, r.Word1, r.Word2)
	case OneBridge:
		return fmt.Sprintf(`The bridge word from "%s" to "%s" is: "%s".`, r.Word1, r.Word2, r.Bridges[0])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `The bridge words from "%s" to "%s" are: `, r.Word1, r.Word2)
	last := len(r.Bridges) - 1
	for _, b := range r.Bridges[:last] {
		fmt.Fprintf(&sb, `"%s", `, b)
	}
	fmt.Fprintf(&sb, `and "%s".`, r.Bridges[last])

	return sb.String()
}

// Find classifies the relationship between word1 and word2 in g.
// Both words are lowercased and trimmed before lookup; a nil graph counts as empty.
func Find(g *core.Graph, word1, word2 string) Result {
	r := Result{Word1: tokenize.Word(word1), Word2: tokenize.Word(word2)}
	if g.IsEmpty() {
		r.Kind = NoGraph
		return r
	}

	has1, has2 := g.HasVertex(r.Word1), g.HasVertex(r.Word2)
	switch {
	case !has1 && !has2:
		r.Kind = BothMissing
		return r
	case !has1:
		r.Kind = FirstMissing
		return r
	case !has2:
		r.Kind = SecondMissing
		return r
	}

	r.Bridges = Words(g, r.Word1, r.Word2)
	switch len(r.Bridges) {
	case 0:
		r.Kind = NoBridges
	case 1:
		r.Kind = OneBridge
	default:
		r.Kind = ManyBridges
	}

	return r
}

// Words returns the bridge words from a to b in a's outgoing-edge discovery
// order. a and b are used verbatim. The result is empty (never nil) when
// either word is missing or nothing bridges them.
//
// Complexity: O(deg(a)).
func Words(g *core.Graph, a, b string) []string {
	out := []string{}
	if g.IsEmpty() || !g.HasVertex(b) {
		return out
	}
	mids, err := g.NeighborIDs(a)
	if err != nil {
		return out
	}
	for _, m := range mids {
		if g.HasEdge(m, b) {
			out = append(out, m)
		}
	}

	return out
}
