// Package solver implements the local-search timetabling engine: a score
// calculator with full and incremental modes, a random move generator and a
// simulated-annealing search loop under a configurable termination budget.
package solver

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/kherve/classplan/core/events"
	"github.com/kherve/classplan/core/logger"
	"github.com/kherve/classplan/core/metrics"
	"github.com/kherve/classplan/core/model"
	"github.com/kherve/classplan/internal/eventbus"
)

// Phase is the engine's lifecycle state.
type Phase int32

const (
	PhaseUnsolved Phase = iota
	PhaseSolving
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseUnsolved:
		return "unsolved"
	case PhaseSolving:
		return "solving"
	case PhaseTerminated:
		return "terminated"
	}
	return "unknown"
}

// moveSource abstracts move generation so tests can inject handcrafted
// moves. The production source is the seeded Generator.
type moveSource interface {
	Next(s *model.Solution) Move
}

var newMoveSource = func(seed int64) moveSource { return NewGenerator(seed) }

// hardScalarWeight folds a score into a single scalar for the annealing
// acceptance probability only. Best-solution tracking stays strictly
// lexicographic, so the weight only needs to dwarf any realistic soft range.
const hardScalarWeight = 10000

// Solver drives one generate -> evaluate -> accept/reject loop per run.
// The loop is sequential: each move's incremental score depends on the
// current committed state. A Solver is safe for repeated, non-concurrent
// Solve calls; use SolveParallel for multi-start runs.
type Solver struct {
	cfg   Config
	calc  *Calculator
	log   logger.Logger
	bus   eventbus.Bus
	sink  metrics.SolveSink
	phase atomic.Int32
}

// Option configures optional solver collaborators.
type Option func(*Solver)

// WithLogger attaches a structured logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.log = l
		}
	}
}

// WithBus publishes lifecycle events on the given bus.
func WithBus(b eventbus.Bus) Option {
	return func(s *Solver) { s.bus = b }
}

// WithSink records a SolveRecord on termination.
func WithSink(sink metrics.SolveSink) Option {
	return func(s *Solver) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// New validates the configuration and builds a solver. Config defaults are
// applied first, so only the termination budget is mandatory.
func New(cfg Config, opts ...Option) (*Solver, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Solver{
		cfg:  cfg,
		calc: NewCalculator(),
		log:  logger.Nop{},
		sink: metrics.NopSink{},
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Phase returns the current lifecycle state.
func (s *Solver) Phase() Phase { return Phase(s.phase.Load()) }

// Solve runs the local search on a private copy of the given solution and
// returns the best solution found within the budget. The input is never
// mutated. Configuration errors (empty fact sets, duplicate lesson IDs) are
// reported before any solving iteration. Reaching the budget or context
// cancellation is normal completion, even if the best solution is still
// infeasible.
func (s *Solver) Solve(ctx context.Context, sol *model.Solution) (*model.Solution, error) {
	if sol == nil {
		return nil, fmt.Errorf("%w: nil solution", model.ErrInvalidProblem)
	}
	if err := sol.Validate(); err != nil {
		return nil, err
	}

	s.phase.Store(int32(PhaseSolving))
	defer s.phase.Store(int32(PhaseTerminated))

	started := time.Now()
	work := sol.Clone()
	rng := rand.New(rand.NewSource(s.cfg.Seed))
	gen := newMoveSource(s.cfg.Seed + 1)

	s.construct(work)
	cur := s.calc.Full(work)
	work.Score = cur

	best := takeSnapshot(work)
	bestScore := cur

	s.publish(events.SolveStarted{
		Lessons:   len(work.Lessons),
		Rooms:     len(work.Rooms),
		Timeslots: len(work.Timeslots),
		Initial:   cur,
	})
	s.log.Infof("solving %d lessons over %d timeslots x %d rooms, initial score %s",
		len(work.Lessons), len(work.Timeslots), len(work.Rooms), cur)

	var deadline time.Time
	if s.cfg.TimeLimitSeconds > 0 {
		deadline = started.Add(s.cfg.TimeLimit())
	}

	temp := s.cfg.StartingTemperature
	steps, accepted, discarded, unimproved := 0, 0, 0, 0

	for {
		// Termination is only ever checked here, never mid-move, so a
		// move is always fully applied or fully discarded.
		if ctx.Err() != nil {
			break
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}
		if s.cfg.MaxSteps > 0 && steps >= s.cfg.MaxSteps {
			break
		}
		if s.cfg.UnimprovedSteps > 0 && unimproved >= s.cfg.UnimprovedSteps {
			break
		}

		mv := gen.Next(work)
		if mv == nil {
			// Degenerate neighborhood, nothing left to try.
			break
		}
		if !mv.Valid(work) {
			// Internal invariant violation: the generator only draws from
			// the solution's fact sets. Drop the move and keep searching.
			discarded++
			movesDiscarded.Inc()
			s.log.Warnf("discarding invalid move %s", mv)
			s.publish(events.MoveDiscarded{Move: mv.String()})
			continue
		}

		steps++
		movesEvaluated.Inc()
		delta := s.calc.Delta(work, mv)
		candidate := cur.Add(delta)

		if s.accept(candidate, cur, temp, rng) {
			mv.Apply(work)
			cur = candidate
			work.Score = cur
			accepted++
			movesAccepted.Inc()
			if cur.Better(bestScore) {
				bestScore = cur
				best = takeSnapshot(work)
				unimproved = 0
				bestHardScore.Set(float64(cur.Hard))
				bestSoftScore.Set(float64(cur.Soft))
				s.publish(events.BestSolutionChanged{
					Step:    steps,
					Score:   cur,
					Elapsed: time.Since(started),
				})
				s.log.Debugw("new best solution", map[string]any{
					"step": steps,
					"hard": cur.Hard,
					"soft": cur.Soft,
				})
			} else {
				unimproved++
			}
		} else {
			unimproved++
		}

		if temp > 0 {
			temp *= s.cfg.CoolingRate
		}
	}

	restoreSnapshot(work, best)
	// Final full recompute guards the incremental path and scores the
	// returned solution.
	work.Score = s.calc.Full(work)

	elapsed := time.Since(started)
	solveDuration.Observe(elapsed.Seconds())
	s.publish(events.SolveEnded{
		Steps:     steps,
		Accepted:  accepted,
		Discarded: discarded,
		Best:      work.Score,
		Elapsed:   elapsed,
	})
	if err := s.sink.RecordSolve(metrics.SolveRecord{
		SolveID:   uuid.NewString(),
		Started:   started,
		Duration:  elapsed,
		Steps:     steps,
		Accepted:  accepted,
		Discarded: discarded,
		Best:      work.Score,
		Feasible:  work.Score.Feasible(),
		Lessons:   len(work.Lessons),
		Starts:    1,
	}); err != nil {
		s.log.Errorf("metrics sink: %v", err)
	}
	s.log.Infof("terminated after %d steps (%d accepted) in %s, best %s",
		steps, accepted, elapsed.Round(time.Millisecond), work.Score)
	return work, nil
}

// accept implements the simulated-annealing policy: improving or equal
// moves always pass, worsening moves pass with probability exp(delta/T).
func (s *Solver) accept(candidate, current model.Score, temp float64, rng *rand.Rand) bool {
	if candidate.Cmp(current) >= 0 {
		return true
	}
	if temp <= 0 {
		return false
	}
	delta := float64(scalarize(candidate) - scalarize(current))
	return rng.Float64() < math.Exp(delta/temp)
}

func scalarize(sc model.Score) int {
	return sc.Hard*hardScalarWeight + sc.Soft
}

// construct greedily assigns every unassigned lesson to the (timeslot, room)
// pair with the best incremental score, in lesson order. Already assigned
// lessons are left alone so pre-seeded solutions survive.
func (s *Solver) construct(sol *model.Solution) {
	for _, l := range sol.Lessons {
		if l.Assigned() {
			continue
		}
		var bestT *model.Timeslot
		var bestR *model.Room
		var bestDelta model.Score
		first := true
		for _, t := range sol.Timeslots {
			for _, r := range sol.Rooms {
				l.SetTimeslot(t)
				l.SetRoom(r)
				d := s.calc.partial(sol, []*model.Lesson{l})
				l.SetTimeslot(nil)
				l.SetRoom(nil)
				if first || d.Better(bestDelta) {
					bestT, bestR, bestDelta = t, r, d
					first = false
				}
			}
		}
		l.SetTimeslot(bestT)
		l.SetRoom(bestR)
	}
}

func (s *Solver) publish(e any) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// assignment captures one lesson's planning fields for best-solution
// snapshots. Fact pointers are shared, so copying the two pointers per
// lesson is enough.
type assignment struct {
	timeslot *model.Timeslot
	room     *model.Room
}

func takeSnapshot(sol *model.Solution) []assignment {
	snap := make([]assignment, len(sol.Lessons))
	for i, l := range sol.Lessons {
		snap[i] = assignment{timeslot: l.Timeslot(), room: l.Room()}
	}
	return snap
}

func restoreSnapshot(sol *model.Solution, snap []assignment) {
	for i, l := range sol.Lessons {
		l.SetTimeslot(snap[i].timeslot)
		l.SetRoom(snap[i].room)
	}
}
