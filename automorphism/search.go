package automorphism

import (
	"context"
	"fmt"
	"math"
)

// infinity marks an open partition position (no cell closes there).
const infinity = math.MaxInt32

type state int

const (
	stateInitial state = iota
	stateFirstLoop
	stateOtherLoop
	stateFirstToFirst
	stateFirstToOther
	stateOtherToOther
)

func (st state) String() string {
	switch st {
	case stateInitial:
		return "initial"
	case stateFirstLoop:
		return "first-loop"
	case stateOtherLoop:
		return "other-loop"
	case stateFirstToFirst:
		return "first-to-first"
	case stateFirstToOther:
		return "first-to-other"
	case stateOtherToOther:
		return "other-to-other"
	default:
		return fmt.Sprintf("state(%d)", int(st))
	}
}

// frame is one suspended search node.
type frame struct {
	level    int
	numcells int
	k        int // cursor into tcells[level]
	tc       int // start of the target cell
	tv1      int // first vertex of the target cell
	state    state
}

// Stats counts the work done by the last Process call.
type Stats struct {
	Nodes            int `json:"nodes" yaml:"nodes"`
	Leaves           int `json:"leaves" yaml:"leaves"`
	Automorphisms    int `json:"automorphisms" yaml:"automorphisms"`
	CanonUpdates     int `json:"canon_updates" yaml:"canon_updates"`
	Pruned           int `json:"pruned" yaml:"pruned"`
	HistoryEvictions int `json:"history_evictions" yaml:"history_evictions"`
}

// Search runs the partition-backtracking search. Create one with New and call
// Process for every graph; buffers are reused between calls.
type Search struct {
	opts Options

	g       Graph
	ctx     context.Context
	order   int
	n       int
	ig      internalGraph
	mapping []int // internal index -> original vertex id
	inv     []int // original vertex id -> internal index, -1 when ignored
	origDeg []int

	lab      []int
	ptn      []int
	active   []bool
	count    []int
	bucket   []int
	workperm []int
	scratch  []int
	seen     []bool
	firstlab []int
	canonlab []int
	fixedpts []bool
	orbits   []int
	tcells   [][]int
	stack    []frame
	history  history

	rankSeen  []int
	workCells [][2]int
	mapA      []int
	mapB      []int
	permOrig  []int

	orbitsNum      int
	gcaFirst       int
	gcaCanon       int
	canonLevel     int
	cosetIndex     int
	needShortPrune bool

	stats Stats
	valid bool
}

// New validates opts and returns a ready Search.
func New(opts ...Option) (*Search, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Err(); err != nil {
		return nil, err
	}

	return &Search{opts: o, history: history{capacity: o.Worksize}}, nil
}

// Options returns a copy of the effective options.
func (s *Search) Options() Options { return s.opts }

func (s *Search) canonical() bool { return s.opts.CompareMapped != nil }

// Process searches g. On success the accessors describe g until the next
// call; on failure they return nil.
func (s *Search) Process(ctx context.Context, g Graph) (err error) {
	s.valid = false
	s.stats = Stats{}
	if g == nil {
		return ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	s.g, s.ctx = g, ctx
	defer func() {
		s.ctx = nil
		if err != nil {
			s.release()
			s.opts.Logger.Debug("automorphism search failed", "error", err)
		}
	}()

	if err = s.prepare(g); err != nil {
		return err
	}
	s.reset()
	if s.n == 0 {
		s.valid = true
		return nil
	}

	numcells := 0
	s.ptn[s.n-1] = 0
	for i := 0; i < s.n; i++ {
		if s.ptn[i] != 0 {
			s.ptn[i] = infinity
		} else {
			numcells++
		}
	}
	for i := 0; i < s.n; i++ {
		s.active[i] = true
		for s.ptn[i] != 0 {
			i++
		}
	}
	for i := range s.orbits {
		s.orbits[i] = i
	}
	s.orbitsNum = s.n
	s.stack = append(s.stack[:0], frame{level: 1, numcells: numcells, state: stateInitial})

	if err = s.run(); err != nil {
		return err
	}
	s.valid = true
	s.opts.Logger.Debug("automorphism search done",
		"vertices", s.n,
		"edges", len(s.ig.edges),
		"orbits", s.orbitsNum,
		"nodes", s.stats.Nodes,
		"leaves", s.stats.Leaves,
		"automorphisms", s.stats.Automorphisms,
	)

	return nil
}

// reset sizes per-call buffers for s.n internal vertices.
func (s *Search) reset() {
	n := s.n
	s.active = resizeBools(s.active, n)
	s.count = resizeInts(s.count, n)
	s.workperm = resizeInts(s.workperm, n)
	s.scratch = resizeInts(s.scratch, n)
	s.firstlab = resizeInts(s.firstlab, n)
	s.canonlab = resizeInts(s.canonlab, n)
	s.fixedpts = resizeBools(s.fixedpts, n)
	s.orbits = resizeInts(s.orbits, n)
	s.tcells = s.tcells[:0]
	s.stack = s.stack[:0]
	s.history.reset()
	s.needShortPrune = false
	s.gcaFirst, s.gcaCanon, s.canonLevel, s.cosetIndex = 0, 0, 0, 0
}

// release drops per-call results after a failure.
func (s *Search) release() {
	s.valid = false
	s.stack = s.stack[:0]
	s.tcells = s.tcells[:0]
	s.history.reset()
}

// run drives the frame stack until it is empty.
func (s *Search) run() error {
	retval := -1
	for len(s.stack) > 0 {
		top := len(s.stack) - 1
		call := s.stack[top]

		switch call.state {
		case stateInitial, stateFirstToFirst:
			rv, err := s.firstNode(call.level, call.numcells)
			if err != nil {
				return err
			}
			retval = rv
			if rv >= 0 {
				s.pop()
			}

		case stateFirstToOther, stateOtherToOther:
			rv, err := s.otherNode(call.level, call.numcells)
			if err != nil {
				return err
			}
			retval = rv
			if rv >= 0 {
				s.pop()
			}

		case stateFirstLoop:
			tv := -1
			if retval != -1 {
				tv = s.tcells[call.level][call.k]
				if tv == call.tv1 {
					s.gcaFirst = call.level
				}
				s.fixedpts[tv] = false
				if retval < call.level {
					s.pop()
					continue
				}
				if s.needShortPrune {
					s.needShortPrune = false
					call.k = s.shortPruneLevel(call.level, call.k)
				}
				if err := s.recover(call.level); err != nil {
					return err
				}
				call.k++
			}

			cell := s.tcells[call.level]
			for ; call.k < len(cell); call.k++ {
				tv = cell[call.k]
				if s.orbits[tv] == tv {
					break
				}
			}
			if call.k >= len(cell) {
				retval = call.level - 1
				s.pop()
				continue
			}

			s.stack[top] = call
			s.breakout(call.level+1, call.tc, tv)
			s.cosetIndex = tv
			s.fixedpts[tv] = true
			next := stateFirstToOther
			if tv == call.tv1 {
				next = stateFirstToFirst
			}
			s.stack = append(s.stack, frame{level: call.level + 1, numcells: call.numcells + 1, state: next})
			retval = -1

		case stateOtherLoop:
			if retval != -1 {
				tv := s.tcells[call.level][call.k]
				s.fixedpts[tv] = false
				if retval < call.level {
					s.pop()
					continue
				}
				if s.needShortPrune {
					s.needShortPrune = false
					call.k = s.shortPruneLevel(call.level, call.k)
				}
				if tv == call.tv1 {
					call.k = s.longPruneLevel(call.level, call.k)
				}
				if err := s.recover(call.level); err != nil {
					return err
				}
				call.k++
			}

			if call.k >= len(s.tcells[call.level]) {
				retval = call.level - 1
				s.pop()
				continue
			}

			s.stack[top] = call
			tv := s.tcells[call.level][call.k]
			s.breakout(call.level+1, call.tc, tv)
			s.fixedpts[tv] = true
			s.stack = append(s.stack, frame{level: call.level + 1, numcells: call.numcells + 1, state: stateOtherToOther})
			retval = -1

		default:
			return fmt.Errorf("%w: bad frame state %v", ErrInternalInvariant, call.state)
		}
	}

	return nil
}

func (s *Search) pop() { s.stack = s.stack[:len(s.stack)-1] }

// levelCell sizes the target-cell table to level+1 entries; buffers of
// deeper levels are kept for reuse.
func (s *Search) levelCell(level int) {
	if cap(s.tcells) > level {
		s.tcells = s.tcells[:level+1]
		return
	}
	s.tcells = append(s.tcells[:cap(s.tcells)], make([][]int, level+1-cap(s.tcells))...)
}

// firstNode refines a node on the leftmost path and either records the first
// leaf or replaces the top frame with a first-loop over the target cell.
func (s *Search) firstNode(level, numcells int) (int, error) {
	s.refine(level, &numcells)
	s.levelCell(level)
	s.stats.Nodes++

	if numcells == s.n {
		if err := s.checkCancelled(); err != nil {
			return 0, err
		}
		s.stats.Leaves++
		s.gcaFirst = level
		copy(s.firstlab, s.lab)
		if s.canonical() {
			s.canonLevel, s.gcaCanon = level, level
			copy(s.canonlab, s.lab)
		}

		return level - 1, nil
	}

	tc, err := s.targetCell(level)
	if err != nil {
		return 0, err
	}
	s.stack[len(s.stack)-1] = frame{
		level:    level,
		numcells: numcells,
		tc:       tc,
		tv1:      s.tcells[level][0],
		state:    stateFirstLoop,
	}

	return -1, nil
}

// otherNode refines a node off the leftmost path, processes leaves and
// replaces the top frame with an other-loop for inner nodes.
func (s *Search) otherNode(level, numcells int) (int, error) {
	s.refine(level, &numcells)
	s.levelCell(level)
	s.stats.Nodes++

	rtn, err := s.processNode(level, numcells)
	if err != nil {
		return 0, err
	}
	if rtn < level {
		return rtn, nil
	}

	tc, err := s.targetCell(level)
	if err != nil {
		return 0, err
	}
	if s.needShortPrune {
		s.needShortPrune = false
		s.shortPruneLevel(level, 0)
	}
	if len(s.tcells[level]) == 0 {
		return level - 1, nil
	}
	s.stack[len(s.stack)-1] = frame{
		level:    level,
		numcells: numcells,
		tc:       tc,
		tv1:      s.tcells[level][0],
		state:    stateOtherLoop,
	}

	return -1, nil
}

// recover reopens every cell closed below level.
func (s *Search) recover(level int) error {
	for i := 0; i < s.n; i++ {
		if s.ptn[i] > level {
			s.ptn[i] = infinity
		}
	}
	if s.canonical() {
		if level < s.gcaCanon {
			s.gcaCanon = level
		}
		if level < s.gcaFirst {
			return fmt.Errorf("%w: recover to level %d above first-path ancestor %d",
				ErrInternalInvariant, level, s.gcaFirst)
		}
	}

	return nil
}

// breakout individualises tv: it moves to the front of the cell starting at
// tc and becomes a singleton closed at level. Only that cell stays active.
func (s *Search) breakout(level, tc, tv int) {
	for i := range s.active {
		s.active[i] = false
	}
	s.active[tc] = true

	i, prev := tc, tv
	for {
		next := s.lab[i]
		s.lab[i] = prev
		i++
		prev = next
		if prev == tv {
			break
		}
	}
	s.ptn[tc] = level
}

func (s *Search) checkCancelled() error {
	if err := s.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	return nil
}
