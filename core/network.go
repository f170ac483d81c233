// SPDX-License-Identifier: MIT
// File: network.go
// Role: read-only accessors, by id and by dense index.
// Determinism:
//   - Every slice-returning method yields ascending id order.
// Concurrency:
//   - All methods are safe for concurrent use; returned slices are copies
//     unless documented as shared index views.

package core

// Name returns the descriptive network name given at build time.
func (n *Network) Name() string { return n.name }

// NumCompounds returns |C|.
func (n *Network) NumCompounds() int { return len(n.compounds) }

// NumReactions returns |R|.
func (n *Network) NumReactions() int { return len(n.reactions) }

// Compounds returns all compound ids mentioned by some reaction, sorted.
func (n *Network) Compounds() []string {
	out := make([]string, len(n.compounds))
	copy(out, n.compounds)

	return out
}

// Reactions returns a copy of all reactions, sorted by id.
func (n *Network) Reactions() []Reaction {
	out := make([]Reaction, len(n.reactions))
	copy(out, n.reactions)

	return out
}

// HasCompound reports whether id is mentioned by some reaction.
func (n *Network) HasCompound(id string) bool {
	_, ok := n.compoundIdx[id]

	return ok
}

// HasReaction reports whether a reaction with this id exists.
func (n *Network) HasReaction(id string) bool {
	_, ok := n.reactionIdx[id]

	return ok
}

// Reaction looks up a reaction by id.
func (n *Network) Reaction(id string) (Reaction, bool) {
	i, ok := n.reactionIdx[id]
	if !ok {
		return Reaction{}, false
	}

	return n.reactions[i], true
}

// CompoundIndex maps a compound id to its dense index.
func (n *Network) CompoundIndex(id string) (int, bool) {
	i, ok := n.compoundIdx[id]

	return i, ok
}

// ReactionIndex maps a reaction id to its dense index.
func (n *Network) ReactionIndex(id string) (int, bool) {
	i, ok := n.reactionIdx[id]

	return i, ok
}

// CompoundID returns the id of compound index c.
func (n *Network) CompoundID(c int) string { return n.compounds[c] }

// ReactionID returns the id of reaction index r.
func (n *Network) ReactionID(r int) string { return n.reactions[r].ID }

// Reversible reports whether reaction index r is reversible.
func (n *Network) Reversible(r int) bool { return n.reactions[r].Reversible }

// Reactants returns the reactant compound indices of reaction r.
// The slice is shared with the network and must not be modified.
func (n *Network) Reactants(r int) []int { return n.lhs[r] }

// Products returns the product compound indices of reaction r.
// The slice is shared with the network and must not be modified.
func (n *Network) Products(r int) []int { return n.rhs[r] }

// ConsumersOf returns the reactions listing compound c as a reactant.
// The slice is shared with the network and must not be modified.
func (n *Network) ConsumersOf(c int) []int { return n.consumers[c] }

// ProducersOf returns the reactions listing compound c as a product.
// The slice is shared with the network and must not be modified.
func (n *Network) ProducersOf(c int) []int { return n.producers[c] }

// Occurrences counts how many reaction sides reference compound c.
func (n *Network) Occurrences(c int) int {
	return len(n.consumers[c]) + len(n.producers[c])
}

// CompoundIndices resolves ids to indices, keeping only ids present in the
// network. Missing ids are returned separately, in input order.
func (n *Network) CompoundIndices(ids []string) (present []int, missing []string) {
	present = make([]int, 0, len(ids))
	for _, id := range ids {
		if i, ok := n.compoundIdx[id]; ok {
			present = append(present, i)
		} else {
			missing = append(missing, id)
		}
	}

	return present, missing
}

// CompoundIDs maps a compound mask back to sorted ids.
func (n *Network) CompoundIDs(mask []bool) []string {
	out := make([]string, 0)
	for c, ok := range mask {
		if ok {
			out = append(out, n.compounds[c])
		}
	}

	return out
}

// ReactionIDs maps a reaction mask back to sorted ids.
func (n *Network) ReactionIDs(mask []bool) []string {
	out := make([]string, 0)
	for r, ok := range mask {
		if ok {
			out = append(out, n.reactions[r].ID)
		}
	}

	return out
}
