package yoga

import (
	"fmt"

	"github.com/mihira/jyotish/internal/domain"
)

// Bhava yogas read the placement of each house lord: the lord of a source
// house sitting in a target house colors the source house's affairs. Of the
// 144 combinatorial placements a curated table is interpreted, each entry
// with its own metadata.

type bhavaEntry struct {
	source, target int
	impact         Impact
	importance     Importance
	area           string
	desc           string
}

var bhavaTable = []bhavaEntry{
	{1, 1, Positive, Moderate, "self", "Strong constitution and a self-directed life."},
	{1, 6, Negative, Moderate, "health", "The self tied to illness, debt and rivals."},
	{1, 8, Mixed, Moderate, "longevity", "A probing, crisis-tested life."},
	{1, 10, Positive, Moderate, "career", "Identity realized through profession and rank."},

	{2, 2, Positive, Minor, "wealth", "Stored wealth grows on its own ground."},
	{2, 8, Negative, Minor, "wealth", "Family assets drained through upheavals."},
	{2, 11, Positive, Moderate, "wealth", "Earnings multiply through gains and networks."},
	{2, 12, Negative, Minor, "wealth", "Income leaks into expenses and distant causes."},

	{3, 3, Positive, Minor, "courage", "Initiative backed by its own strength."},
	{3, 6, Mixed, Minor, "competition", "Valor spent on contest and service."},
	{3, 10, Positive, Minor, "career", "Enterprise lifted into public work."},
	{3, 12, Negative, Minor, "siblings", "Efforts and siblings scattered abroad."},

	{4, 4, Positive, Minor, "home", "Comforts, property and a settled heart."},
	{4, 8, Negative, Minor, "home", "Domestic peace shaken by hidden troubles."},
	{4, 10, Positive, Moderate, "property", "Lands and vehicles feed public standing."},
	{4, 12, Mixed, Minor, "home", "Residence far from the birthplace."},

	{5, 1, Positive, Minor, "intellect", "Creative intelligence shapes the personality."},
	{5, 5, Positive, Moderate, "children", "Blessings of progeny and learning."},
	{5, 6, Negative, Minor, "children", "Worry through children and speculation."},
	{5, 9, Positive, Moderate, "fortune", "Merit compounds into fortune."},

	{6, 1, Negative, Moderate, "health", "Disease and debt cling to the body."},
	{6, 2, Negative, Minor, "wealth", "Obligations eat the family purse."},
	{6, 6, Mixed, Minor, "rivals", "Opposition contained on its own ground."},
	{6, 10, Mixed, Minor, "career", "A career in service, litigation or healing."},

	{7, 1, Positive, Minor, "marriage", "Partnership woven into the sense of self."},
	{7, 6, Negative, Moderate, "marriage", "Discord and litigation in unions."},
	{7, 7, Positive, Moderate, "marriage", "A steady, supportive spouse."},
	{7, 8, Negative, Minor, "marriage", "Unions strained by secrecy and loss."},

	{8, 1, Negative, Moderate, "longevity", "Chronic vulnerability of health."},
	{8, 2, Negative, Minor, "wealth", "Inheritance disputes and broken savings."},
	{8, 8, Mixed, Minor, "longevity", "Endurance through repeated crises."},
	{8, 12, Positive, Minor, "resilience", "Losses annulled by their own kind."},

	{9, 1, Positive, Moderate, "fortune", "Luck favors the native personally."},
	{9, 6, Negative, Minor, "fortune", "Fortune obstructed by service and strife."},
	{9, 9, Positive, Moderate, "fortune", "Dharma established in its own house."},
	{9, 10, Positive, Major, "career", "Fortune crowned in public life."},

	{10, 1, Positive, Moderate, "career", "A self-made professional rise."},
	{10, 8, Negative, Moderate, "career", "Career interrupted by sudden breaks."},
	{10, 9, Positive, Moderate, "career", "Work aligned with principle and favor."},
	{10, 10, Positive, Moderate, "career", "Authority secure in its own seat."},

	{11, 1, Positive, Minor, "gains", "Gains flow toward the native directly."},
	{11, 2, Positive, Minor, "wealth", "Income consolidates into holdings."},
	{11, 5, Mixed, Minor, "speculation", "Profits through ventures and children."},
	{11, 11, Positive, Moderate, "gains", "Desires fulfilled through wide networks."},

	{12, 1, Negative, Minor, "expenses", "Vitality spent faster than replenished."},
	{12, 3, Mixed, Minor, "expenses", "Outlays on travel and ventures of courage."},
	{12, 9, Mixed, Minor, "spirituality", "Expenditure turned toward pilgrimage."},
	{12, 12, Positive, Minor, "liberation", "Expenses disciplined, solitude fruitful."},
}

var ordinals = [13]string{
	"", "1st", "2nd", "3rd", "4th", "5th", "6th",
	"7th", "8th", "9th", "10th", "11th", "12th",
}

func init() {
	for _, e := range bhavaTable {
		entry := e
		register(Rule{
			Name:        fmt.Sprintf("%s Lord in %s House", ordinals[entry.source], ordinals[entry.target]),
			Category:    CategoryBhava,
			Impact:      entry.impact,
			Importance:  entry.importance,
			LifeArea:    entry.area,
			Description: entry.desc,
			Detect: func(ctx *Context) (bool, []domain.Planet) {
				lord := ctx.Chart.HouseLord(entry.source)
				if ctx.Chart.HouseOf(lord) != entry.target {
					return false, nil
				}
				return true, []domain.Planet{lord}
			},
		})
	}
}
