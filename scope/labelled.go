package scope

import (
	"math/bits"
	"sort"

	"github.com/katalvlaran/mene/core"
)

// labelSet is a bitset over label indices.
type labelSet []uint64

func newLabelSet(n int) labelSet { return make(labelSet, (n+63)/64) }

func (s labelSet) add(i int) { s[i/64] |= 1 << (uint(i) % 64) }

// merge ors o into s and reports whether s grew.
func (s labelSet) merge(o labelSet) bool {
	grew := false
	for i := range s {
		v := s[i] | o[i]
		if v != s[i] {
			s[i] = v
			grew = true
		}
	}

	return grew
}

func (s labelSet) each(fn func(i int)) {
	for w, word := range s {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			fn(w*64 + b)
			word &^= 1 << uint(b)
		}
	}
}

// Labelled expands net from labelled seeds and tracks, for every compound in
// scope, the labels of the seeds it can be derived from. The outputs of a
// fired reaction inherit the union of the labels of its inputs; labels are
// propagated with a worklist until no set grows. Outputs of reactant-less
// reactions carry no label unless another route brings one.
func Labelled(net *core.Network, seeds core.SpeciesSet, opts ...Option) (*LabelledResult, error) {
	x, err := expand(net, seeds.IDs(), opts)
	if err != nil {
		return nil, err
	}

	labelOf := seeds.LabelOf()
	names := make([]string, 0, len(labelOf))
	seen := make(map[string]int)
	for _, l := range labelOf {
		if _, ok := seen[l]; !ok {
			seen[l] = 0
			names = append(names, l)
		}
	}
	sort.Strings(names)
	for i, l := range names {
		seen[l] = i
	}

	sets := make([]labelSet, net.NumCompounds())
	for c := range sets {
		sets[c] = newLabelSet(len(names))
	}
	queued := make([]bool, net.NumCompounds())
	var queue []int
	push := func(c int) {
		if !queued[c] {
			queued[c] = true
			queue = append(queue, c)
		}
	}
	for id, l := range labelOf {
		if c, ok := net.CompoundIndex(id); ok {
			sets[c].add(seen[l])
			push(c)
		}
	}

	acc := newLabelSet(len(names))
	propagate := func(in, out []int) {
		for i := range acc {
			acc[i] = 0
		}
		for _, c := range in {
			acc.merge(sets[c])
		}
		for _, c := range out {
			if sets[c].merge(acc) {
				push(c)
			}
		}
	}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		queued[c] = false
		for _, r := range net.ConsumersOf(c) {
			if x.firedFwd[r] {
				propagate(net.Reactants(r), net.Products(r))
			}
		}
		for _, r := range net.ProducersOf(c) {
			if x.firedRev[r] {
				propagate(net.Products(r), net.Reactants(r))
			}
		}
	}

	res := &LabelledResult{
		ByLabel:  make(map[string][]string, len(names)),
		LabelsOf: make(map[string][]string),
	}
	for _, l := range names {
		res.ByLabel[l] = []string{}
	}
	for c, ok := range x.avail {
		if !ok {
			continue
		}
		id := net.CompoundID(c)
		sets[c].each(func(i int) {
			res.ByLabel[names[i]] = append(res.ByLabel[names[i]], id)
			res.LabelsOf[id] = append(res.LabelsOf[id], names[i])
		})
	}

	return res, nil
}
