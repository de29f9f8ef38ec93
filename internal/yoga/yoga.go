// Package yoga detects the named classical planetary combinations and
// affliction patterns of a chart. Every yoga is a declarative rule: a pure
// predicate over an immutable evaluation context plus metadata. The detector
// runs all rules independently against the same snapshot, then applies the
// explicit cancellation predicates as a second pass, marking matches rather
// than deleting them. Overlapping general and specific variants matching the
// same chart is intended.
package yoga

import (
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/mihira/jyotish/internal/chart"
	"github.com/mihira/jyotish/internal/domain"
	"github.com/mihira/jyotish/internal/strength"
	"github.com/mihira/jyotish/internal/varga"
)

// Category groups rules by classical family.
type Category string

const (
	CategoryNitya       Category = "NITYA"
	CategoryNabhasa     Category = "NABHASA"
	CategoryMahapurusha Category = "MAHAPURUSHA"
	CategoryLunar       Category = "LUNAR"
	CategorySolar       Category = "SOLAR"
	CategoryRaja        Category = "RAJA"
	CategoryDhana       Category = "DHANA"
	CategorySanyas      Category = "SANYAS"
	CategoryBhava       Category = "BHAVA"
	CategoryDosha       Category = "DOSHA"
)

// Impact is the overall effect direction of a combination.
type Impact string

const (
	Positive Impact = "POSITIVE"
	Negative Impact = "NEGATIVE"
	Mixed    Impact = "MIXED"
	Neutral  Impact = "NEUTRAL"
)

// Importance ranks how much weight interpretation gives a match.
type Importance string

const (
	Major    Importance = "MAJOR"
	Moderate Importance = "MODERATE"
	Minor    Importance = "MINOR"
)

// Context is the immutable evaluation snapshot every rule reads.
type Context struct {
	Chart     *chart.Chart
	Vargas    map[int]*varga.DivisionalChart
	Strengths map[domain.Planet]strength.Score
}

// Rule is one declarative yoga or dosha. Detect reports whether the rule
// matches and which grahas participate. Cancel, when set, runs in the second
// pass over an already matched rule. Strength, when set, overrides the
// default participant-mean match strength.
type Rule struct {
	Name        string
	Category    Category
	Impact      Impact
	Importance  Importance
	LifeArea    string
	Description string
	Detect      func(*Context) (bool, []domain.Planet)
	Cancel      func(*Context) bool
	Strength    func(*Context) float64
}

// Match is one detected combination.
type Match struct {
	Name         string          `json:"name"`
	Category     Category        `json:"category"`
	Impact       Impact          `json:"impact"`
	Importance   Importance      `json:"importance"`
	LifeArea     string          `json:"life_area"`
	Description  string          `json:"description"`
	Participants []domain.Planet `json:"participants,omitempty"`
	Strength     float64         `json:"strength"`
	Cancelled    bool            `json:"cancelled"`
}

// defaultRules accumulates the rule files' registrations at init time.
var defaultRules []Rule

func register(rules ...Rule) {
	defaultRules = append(defaultRules, rules...)
}

// Rules returns a copy of the full registered rule set.
func Rules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// Detector evaluates the registered rule set.
type Detector struct {
	rules []Rule
	log   zerolog.Logger
}

// NewDetector creates a detector over the default registry.
func NewDetector(log zerolog.Logger) *Detector {
	return &Detector{
		rules: defaultRules,
		log:   log.With().Str("component", "yoga_detector").Logger(),
	}
}

// Detect runs every rule against the context and returns all matches.
// Rules never fail on a valid chart; there is no error path here.
func (d *Detector) Detect(ctx *Context) []Match {
	var matches []Match

	for _, rule := range d.rules {
		ok, participants := rule.Detect(ctx)
		if !ok {
			continue
		}

		m := Match{
			Name:         rule.Name,
			Category:     rule.Category,
			Impact:       rule.Impact,
			Importance:   rule.Importance,
			LifeArea:     rule.LifeArea,
			Description:  rule.Description,
			Participants: participants,
			Strength:     matchStrength(rule, ctx, participants),
		}
		if rule.Cancel != nil && rule.Cancel(ctx) {
			m.Cancelled = true
		}
		matches = append(matches, m)
	}

	d.log.Debug().
		Int("rules", len(d.rules)).
		Int("matches", len(matches)).
		Msg("Yoga detection complete")

	return matches
}

// matchStrength scores a match as the mean composite strength of its
// participants, unless the rule carries its own strength function.
func matchStrength(rule Rule, ctx *Context, participants []domain.Planet) float64 {
	if rule.Strength != nil {
		return domain.Round3(rule.Strength(ctx))
	}
	if len(participants) == 0 || ctx.Strengths == nil {
		return 0.5
	}
	totals := make([]float64, 0, len(participants))
	for _, p := range participants {
		if s, ok := ctx.Strengths[p]; ok {
			totals = append(totals, s.Total)
		}
	}
	if len(totals) == 0 {
		return 0.5
	}
	return domain.Round3(stat.Mean(totals, nil))
}

// Classical house groupings.
var (
	kendraHouses   = map[int]bool{1: true, 4: true, 7: true, 10: true}
	panapharHouses = map[int]bool{2: true, 5: true, 8: true, 11: true}
	apoklimaHouses = map[int]bool{3: true, 6: true, 9: true, 12: true}
	trikonaHouses  = map[int]bool{1: true, 5: true, 9: true}
	dusthanaHouses = map[int]bool{6: true, 8: true, 12: true}
)

func inHouses(c *chart.Chart, p domain.Planet, set map[int]bool) bool {
	return set[c.HouseOf(p)]
}

// classicalHouses returns the occupied-house set of the seven classical
// planets and the per-house counts.
func classicalHouses(c *chart.Chart) map[int][]domain.Planet {
	out := make(map[int][]domain.Planet)
	for _, p := range domain.ClassicalPlanets {
		h := c.HouseOf(p)
		out[h] = append(out[h], p)
	}
	return out
}

// allClassicalIn reports whether every classical planet occupies one of the
// given houses.
func allClassicalIn(c *chart.Chart, houses map[int]bool) bool {
	for _, p := range domain.ClassicalPlanets {
		if !houses[c.HouseOf(p)] {
			return false
		}
	}
	return true
}

func houseSet(houses ...int) map[int]bool {
	out := make(map[int]bool, len(houses))
	for _, h := range houses {
		out[h] = true
	}
	return out
}

// benefic reports natural benefic nature among the classical seven.
func benefic(p domain.Planet) bool {
	return domain.NaturalBenefics[p]
}

func malefic(p domain.Planet) bool {
	return domain.NaturalMalefics[p]
}
