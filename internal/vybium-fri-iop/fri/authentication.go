package fri

import (
	"fmt"

	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/field"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/merkle"
	"github.com/vybium/vybium-fri-iop/internal/vybium-fri-iop/poly"
)

// AuthenticationHash is a sibling digest at one tree level, paired with
// whether it stands to the left of the running digest (§3).
type AuthenticationHash struct {
	Hash   merkle.Hash
	IsLeft bool
}

// AuthenticationPath proves membership of a leaf pair in a commitment's
// tree: the two leaf evaluations, and the sibling chain from the lowest
// internal level upward (§3).
type AuthenticationPath struct {
	FirstEvaluation  field.Element
	SecondEvaluation field.Element
	Siblings         []AuthenticationHash
}

// ContainsEvaluation reports whether v is one of the path's two leaf
// evaluations.
func (p *AuthenticationPath) ContainsEvaluation(v field.Element) bool {
	return v.Equal(p.FirstEvaluation) || v.Equal(p.SecondEvaluation)
}

// DeriveRoot reconstructs the tree root from the path: hash the leaf pair,
// then fold in each sibling in order according to its IsLeft flag (§4.F).
func (p *AuthenticationPath) DeriveRoot() merkle.Hash {
	running := merkle.HashLeafPair(p.FirstEvaluation.Bytes(), p.SecondEvaluation.Bytes())
	for _, sib := range p.Siblings {
		if sib.IsLeft {
			running = merkle.HashNodePair(sib.Hash, running)
		} else {
			running = merkle.HashNodePair(running, sib.Hash)
		}
	}
	return running
}

// AuthenticationPathFor builds the authentication path proving the leaf
// pair that point lands in under p's blown-up NTT: point is a domain
// point, evaluated against p (matching the original's
// `self.eval_single(root)` before searching) to get the leaf value
// actually hashed into the tree (§4.F).
func AuthenticationPathFor(p *poly.Polynomial, point field.Element) (*AuthenticationPath, error) {
	evals, err := blownUpEvaluations(p)
	if err != nil {
		return nil, fmt.Errorf("fri: AuthenticationPathFor: %w", err)
	}

	target := p.Eval(point)

	index := -1
	for i := 0; i < len(evals); i += 2 {
		if evals[i].Equal(target) || evals[i+1].Equal(target) {
			index = i / 2
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("fri: AuthenticationPathFor: evaluation %s not found among blown-up evaluations", target.String())
	}

	first := evals[2*index]
	second := evals[2*index+1]

	level := leafPairHashes(evals)
	siblings := make([]AuthenticationHash, 0)

	for len(level) > 1 {
		var sibIdx int
		var isLeft bool
		if index%2 == 0 {
			sibIdx = index + 1
			isLeft = false
		} else {
			sibIdx = index - 1
			isLeft = true
		}
		siblings = append(siblings, AuthenticationHash{Hash: level[sibIdx], IsLeft: isLeft})

		next := make([]merkle.Hash, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next[i/2] = merkle.HashNodePair(level[i], level[i+1])
		}
		level = next
		index /= 2
	}

	return &AuthenticationPath{
		FirstEvaluation:  first,
		SecondEvaluation: second,
		Siblings:         siblings,
	}, nil
}
