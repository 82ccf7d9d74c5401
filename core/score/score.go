// core/score/score.go
//
// Profile-to-sequence scoring. Costs are non-positive integers in units of
// Unity; an aligner maximizes their sum.
//
//   - substitution: consensus penalty of the plain symbol in the profile column
//   - horizontal gap (profile column vs nothing): driven by the column's
//     gap-symbol penalty, or a flat cost before the plain sequence starts
//   - vertical gap (plain symbol vs nothing): flat affine cost
package score

import (
	"profseq-core/consensus"
	"profseq-core/profile"
)

// DefaultUnity is the base cost unit of gaps and mismatches.
const DefaultUnity = 1000

// Scheme is the capability set a dynamic-programming aligner consumes.
// The first argument of every cost addresses the profile side, the second
// the plain side.
type Scheme interface {
	Score(prof, plain Entry) int
	GapOpenHorizontal(prof, plain Entry) int
	GapExtendHorizontal(prof, plain Entry) int
	GapOpenVertical(prof, plain Entry) int
	GapExtendVertical(prof, plain Entry) int
	Entry(seq Sequence, pos int) Entry
}

// ProfileSeq scores a plain sequence against a profile's consensus sets.
//
// Profile-side entries must address a valid column and must never be
// before-start; violating either is a caller error. Builds tagged profdebug
// panic with a message, default builds panic on the slice access or, for an
// out-of-range column that still lands inside the table, return a
// neighbouring column's penalty. Aligners should check bounds once per
// alignment, not per cell.
//
// A ProfileSeq is immutable after NewProfileSeq / AssignProfile and may be
// shared by any number of goroutines.
type ProfileSeq struct {
	unity int
	gap   int
	table consensus.Table
}

var _ Scheme = (*ProfileSeq)(nil)

// Option configures a ProfileSeq.
type Option func(*ProfileSeq)

// WithUnity sets the base cost unit. Non-positive values keep DefaultUnity.
func WithUnity(n int) Option {
	return func(s *ProfileSeq) {
		if n > 0 {
			s.unity = n
		}
	}
}

// NewProfileSeq builds the consensus table of p.
func NewProfileSeq(p *profile.Profile, opts ...Option) *ProfileSeq {
	s := &ProfileSeq{unity: DefaultUnity}
	for _, o := range opts {
		o(s)
	}
	s.AssignProfile(p)
	return s
}

// AssignProfile replaces the consensus table. It must not run concurrently
// with any query.
func (s *ProfileSeq) AssignProfile(p *profile.Profile) {
	s.table = consensus.FromProfile(p, s.unity)
	s.gap = p.Alphabet.Gap()
}

func (s *ProfileSeq) Unity() int { return s.unity }

func (s *ProfileSeq) Table() consensus.Table { return s.table }

// Entry returns At(seq, pos).
func (s *ProfileSeq) Entry(seq Sequence, pos int) Entry { return At(seq, pos) }

// Score is the consensus penalty of plain's symbol in prof's column. plain
// must not be before-start.
func (s *ProfileSeq) Score(prof, plain Entry) int {
	return s.table.At(column(prof), plain.Ord())
}

// GapExtendHorizontal charges -Unity before the plain sequence starts and the
// column's gap-symbol penalty otherwise.
func (s *ProfileSeq) GapExtendHorizontal(prof, plain Entry) int {
	if plain.IsBeforeStart() {
		return -s.unity
	}
	return s.table.At(column(prof), s.gap)
}

// GapOpenHorizontal is twice GapExtendHorizontal.
func (s *ProfileSeq) GapOpenHorizontal(prof, plain Entry) int {
	if plain.IsBeforeStart() {
		return -2 * s.unity
	}
	return 2 * s.table.At(column(prof), s.gap)
}

// GapOpenVertical ignores its arguments; a gap in the profile has no column
// to consult.
func (s *ProfileSeq) GapOpenVertical(_, _ Entry) int { return -2 * s.unity }

func (s *ProfileSeq) GapExtendVertical(_, _ Entry) int { return -s.unity }
