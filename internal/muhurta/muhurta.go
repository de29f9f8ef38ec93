// Package muhurta scans a time window for auspicious instants. Every
// candidate instant runs the full computation pipeline independently; the
// scan is embarrassingly parallel and imposes no ordering during
// evaluation, sorting only at aggregation.
package muhurta

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/mihira/jyotish/internal/domain"
	"github.com/mihira/jyotish/internal/engine"
	"github.com/mihira/jyotish/internal/yoga"
)

// Candidate is one evaluated instant.
type Candidate struct {
	Instant time.Time `json:"instant"`
	Score   float64   `json:"score"`

	// Winning and losing factors, for reporting.
	Positives []string `json:"positives,omitempty"`
	Negatives []string `json:"negatives,omitempty"`
}

// Summary carries scan-wide statistics over the candidate scores.
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Best   float64 `json:"best"`
	Worst  float64 `json:"worst"`
}

// Result is the aggregated outcome of one scan, candidates sorted by score
// descending with the instant as tie-break.
type Result struct {
	Candidates []Candidate `json:"candidates"`
	Summary    Summary     `json:"summary"`
}

// Request fixes the scan parameters.
type Request struct {
	From      time.Time
	To        time.Time
	Step      time.Duration
	Latitude  float64
	Longitude float64
	Options   engine.Options

	// Parallelism bounds the concurrent pipeline evaluations; zero means 4.
	Parallelism int
}

// Scanner evaluates candidates over an engine service.
type Scanner struct {
	svc *engine.Service
	log zerolog.Logger
}

// NewScanner wraps an engine service.
func NewScanner(svc *engine.Service, log zerolog.Logger) *Scanner {
	return &Scanner{
		svc: svc,
		log: log.With().Str("component", "muhurta").Logger(),
	}
}

// Scan evaluates every step instant in [From, To). The window and step are
// validated up front; a failed candidate aborts the whole scan.
func (s *Scanner) Scan(ctx context.Context, req Request) (*Result, error) {
	if !req.To.After(req.From) {
		return nil, domain.NewInputError("window", "scan window must end after it starts")
	}
	if req.Step <= 0 {
		return nil, domain.NewInputError("step", "scan step must be positive")
	}

	var instants []time.Time
	for at := req.From; at.Before(req.To); at = at.Add(req.Step) {
		instants = append(instants, at)
	}

	parallelism := req.Parallelism
	if parallelism <= 0 {
		parallelism = 4
	}

	candidates := make([]Candidate, len(instants))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, at := range instants {
		i, at := i, at
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			moment, err := domain.NewBirthMoment(at, req.Latitude, req.Longitude)
			if err != nil {
				return err
			}
			k, err := s.svc.Compute(moment, req.Options)
			if err != nil {
				return err
			}
			candidates[i] = score(at, k)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Instant.Before(candidates[j].Instant)
	})

	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		scores[i] = c.Score
	}
	result := &Result{
		Candidates: candidates,
		Summary: Summary{
			Mean:   domain.Round3(stat.Mean(scores, nil)),
			StdDev: domain.Round3(stat.StdDev(scores, nil)),
			Best:   scores[0],
			Worst:  scores[len(scores)-1],
		},
	}

	s.log.Info().
		Int("candidates", len(candidates)).
		Float64("best", result.Summary.Best).
		Msg("Muhurta scan complete")

	return result, nil
}

// Match weights by importance for the candidate score.
var importanceWeight = map[yoga.Importance]float64{
	yoga.Major:    1.0,
	yoga.Moderate: 0.6,
	yoga.Minor:    0.3,
}

// score folds a Kundli into one comparable number: the mean planetary
// strength plus weighted uncancelled positive matches minus weighted doshas
// and negative matches.
func score(at time.Time, k *engine.Kundli) Candidate {
	c := Candidate{Instant: at}

	totals := make([]float64, 0, len(k.Strengths))
	for _, p := range domain.Planets {
		totals = append(totals, k.Strengths[p].Total)
	}
	c.Score = stat.Mean(totals, nil)

	for _, m := range k.Matches {
		if m.Cancelled {
			continue
		}
		w := importanceWeight[m.Importance] * m.Strength * 0.1
		switch m.Impact {
		case yoga.Positive:
			c.Score += w
			c.Positives = append(c.Positives, m.Name)
		case yoga.Negative:
			c.Score -= w
			c.Negatives = append(c.Negatives, m.Name)
		}
	}
	if !k.Panchang.Yoga.Auspicious {
		c.Score -= 0.05
	}

	c.Score = domain.Round3(c.Score)
	return c
}
