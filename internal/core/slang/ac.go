package slang

import "sort"

// A stdlib-only Aho-Corasick automaton over byte strings, used for
// single-pass dictionary substitution. Nodes carry a fixed 256-way
// transition table to avoid map lookups in hot paths

type acNode struct {
	// trans[b] = next state or -1 if absent
	trans  [256]int
	fail   int
	output []int // pattern IDs ending at this node
}

type acAutomaton struct {
	nodes []acNode
	// patLen[id] = byte length of pattern id, for recovering match starts
	patLen []int
}

func newAutomaton() *acAutomaton {
	a := &acAutomaton{nodes: make([]acNode, 1)}
	for i := range a.nodes[0].trans {
		a.nodes[0].trans[i] = -1
	}
	a.nodes[0].fail = 0
	return a
}

// AddPattern inserts a pattern and returns its ID, or (-1, false) when the
// pattern is empty or a duplicate of an earlier one. First insertion wins
func (a *acAutomaton) AddPattern(pat []byte) (int, bool) {
	if len(pat) == 0 {
		return -1, false
	}
	state := 0
	for _, b := range pat {
		nxt := a.nodes[state].trans[b]
		if nxt == -1 {
			nxt = len(a.nodes)
			a.nodes[state].trans[b] = nxt
			var n acNode
			for i := range n.trans {
				n.trans[i] = -1
			}
			a.nodes = append(a.nodes, n)
		}
		state = nxt
	}
	if len(a.nodes[state].output) > 0 {
		return -1, false
	}
	id := len(a.patLen)
	a.patLen = append(a.patLen, len(pat))
	a.nodes[state].output = append(a.nodes[state].output, id)
	return id, true
}

// Build finalizes failure links using a simple queue
func (a *acAutomaton) Build() {
	q := make([]int, 0, 64)
	for b := 0; b < 256; b++ {
		s := a.nodes[0].trans[byte(b)]
		if s != -1 {
			a.nodes[s].fail = 0
			q = append(q, s)
		}
	}

	// BFS over trie
	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		for b := 0; b < 256; b++ {
			s := a.nodes[r].trans[byte(b)]
			if s == -1 {
				continue
			}
			q = append(q, s)

			f := a.nodes[r].fail
			for f != 0 && a.nodes[f].trans[byte(b)] == -1 {
				f = a.nodes[f].fail
			}
			if nxt := a.nodes[f].trans[byte(b)]; nxt != -1 {
				a.nodes[s].fail = nxt
			} else {
				a.nodes[s].fail = 0
			}

			a.nodes[s].output = append(a.nodes[s].output, a.nodes[a.nodes[s].fail].output...)
		}
	}
}

type acMatch struct {
	start, end, id int
}

// findAll scans text and returns every occurrence of every pattern,
// including overlapping ones
func (a *acAutomaton) findAll(text []byte) []acMatch {
	var matches []acMatch
	state := 0
	for i, b := range text {
		for state != 0 && a.nodes[state].trans[b] == -1 {
			state = a.nodes[state].fail
		}
		if nxt := a.nodes[state].trans[b]; nxt != -1 {
			state = nxt
		}
		for _, id := range a.nodes[state].output {
			matches = append(matches, acMatch{start: i + 1 - a.patLen[id], end: i + 1, id: id})
		}
	}
	return matches
}

// selectLeftmostLongest reduces overlapping matches to the set a single
// left-to-right scan would substitute: the earliest-starting match wins,
// and among matches sharing a start the longest wins
func selectLeftmostLongest(matches []acMatch) []acMatch {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		return matches[i].end > matches[j].end
	})
	kept := matches[:0]
	pos := 0
	for _, m := range matches {
		if m.start < pos {
			continue
		}
		kept = append(kept, m)
		pos = m.end
	}
	return kept
}
