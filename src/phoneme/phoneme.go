package phoneme

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gobuffalo/packr/v2"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Node is one entry of the taxonomy table. Leaf types list their symbols.
type Node struct {
	Name     string   `json:"name"`
	Children []Node   `json:"children,omitempty"`
	Symbols  []string `json:"symbols,omitempty"`
}

// Type is a class in the hierarchy, e.g. "unvoiced_stops" under "stops".
type Type struct {
	Name  string
	Depth int
}

type entry struct {
	name   string
	parent int
	depth  int
	symbol bool
}

// Hierarchy is an immutable phoneme taxonomy with every pairwise hop distance
// computed at construction.
type Hierarchy struct {
	entries  []entry
	byName   map[string]int
	dist     [][]int
	diameter int
}

var defaultHierarchy *Hierarchy

func init() {
	box := packr.New("phoneme-static", "./static")
	data, err := box.Find("taxonomy.json")
	if err != nil {
		panic(err)
	}

	root := Node{}
	if err := json.Unmarshal(data, &root); err != nil {
		panic(err)
	}

	defaultHierarchy, err = New(root)
	if err != nil {
		panic(err)
	}
}

// Default returns the ARPAbet hierarchy shipped with the binary.
func Default() *Hierarchy {
	return defaultHierarchy
}

// New builds a hierarchy from a taxonomy tree. Names must be unique across the
// whole tree.
func New(root Node) (*Hierarchy, error) {
	h := &Hierarchy{byName: map[string]int{}}
	if err := h.add(root, -1, 0); err != nil {
		return nil, err
	}

	n := len(h.entries)
	h.dist = make([][]int, n)
	for i := range h.dist {
		h.dist[i] = make([]int, n)
		for j := 0; j < i; j++ {
			d := h.hops(i, j)
			h.dist[i][j] = d
			h.dist[j][i] = d
			if d > h.diameter {
				h.diameter = d
			}
		}
	}

	return h, nil
}

func (h *Hierarchy) add(n Node, parent, depth int) error {
	if err := h.insert(n.Name, parent, depth, false); err != nil {
		return err
	}
	self := len(h.entries) - 1
	for _, c := range n.Children {
		if err := h.add(c, self, depth+1); err != nil {
			return err
		}
	}
	for _, s := range n.Symbols {
		if err := h.insert(Normalize(s), self, depth+1, true); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hierarchy) insert(name string, parent, depth int, symbol bool) error {
	if name == "" {
		return fmt.Errorf("empty name in taxonomy")
	}
	if _, ok := h.byName[name]; ok {
		return fmt.Errorf("duplicate taxonomy name %q", name)
	}
	h.byName[name] = len(h.entries)
	h.entries = append(h.entries, entry{name: name, parent: parent, depth: depth, symbol: symbol})
	return nil
}

func (h *Hierarchy) hops(a, b int) int {
	d := 0
	for h.entries[a].depth > h.entries[b].depth {
		a = h.entries[a].parent
		d++
	}
	for h.entries[b].depth > h.entries[a].depth {
		b = h.entries[b].parent
		d++
	}
	for a != b {
		a = h.entries[a].parent
		b = h.entries[b].parent
		d += 2
	}
	return d
}

func (h *Hierarchy) lookup(name string) (int, bool) {
	if i, ok := h.byName[name]; ok {
		return i, true
	}
	i, ok := h.byName[Normalize(name)]
	return i, ok
}

// UnknownPenalty is the distance between two different names when at least one
// of them is not part of the taxonomy.
func (h *Hierarchy) UnknownPenalty() float64 {
	return float64(h.diameter + 1)
}

// Distance returns the number of tree hops between two symbols or types.
func (h *Hierarchy) Distance(a, b string) float64 {
	if a == b || Normalize(a) == Normalize(b) {
		return 0
	}
	i, ok := h.lookup(a)
	if !ok {
		return h.UnknownPenalty()
	}
	j, ok := h.lookup(b)
	if !ok {
		return h.UnknownPenalty()
	}
	return float64(h.dist[i][j])
}

// TypeOf returns the leaf type a symbol belongs to.
func (h *Hierarchy) TypeOf(symbol string) (Type, bool) {
	i, ok := h.lookup(symbol)
	if !ok || !h.entries[i].symbol {
		return Type{}, false
	}
	p := h.entries[h.entries[i].parent]
	return Type{Name: p.name, Depth: p.depth}, true
}

// IsSymbol reports whether name is a phoneme symbol of the taxonomy.
func (h *Hierarchy) IsSymbol(name string) bool {
	i, ok := h.lookup(name)
	return ok && h.entries[i].symbol
}

// IsCompatible reports whether symbol satisfies desired, which is either an
// exact symbol or a type that has symbol somewhere beneath it.
func (h *Hierarchy) IsCompatible(symbol, desired string) bool {
	if symbol == desired || Normalize(symbol) == Normalize(desired) {
		return true
	}
	i, ok := h.lookup(symbol)
	if !ok {
		return false
	}
	j, ok := h.lookup(desired)
	if !ok || h.entries[j].symbol {
		return false
	}
	for i != -1 {
		if i == j {
			return true
		}
		i = h.entries[i].parent
	}
	return false
}

// Symbols lists every symbol in taxonomy order.
func (h *Hierarchy) Symbols() []string {
	var out []string
	for _, e := range h.entries {
		if e.symbol {
			out = append(out, e.name)
		}
	}
	return out
}

// Normalize upper-cases a symbol and strips ARPAbet stress digits ("ah0" -> "AH").
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimRightFunc(strings.TrimSpace(symbol), unicode.IsDigit))
}
