package printers

import (
	"io"
)

const (
	objectiveBanner   = "========== OBJECTIVE =========="
	leaderboardBanner = "========= LEADERBOARD ========="
)

// LeaderboardPrinter prints an objective followed by its ranked testtuples.
type LeaderboardPrinter struct {
	objectiveFields []Field
	testtupleFields []Field
}

// NewLeaderboardPrinter creates a leaderboard printer.
func NewLeaderboardPrinter() *LeaderboardPrinter {
	return &LeaderboardPrinter{
		objectiveFields: append([]Field{NewField("Key", "key")}, objectiveSingleFields...),
		testtupleFields: []Field{
			NewField("Perf", "perf"),
			NewField("Algo name", "algo.name"),
			NewField("Traintuple key", "model.traintupleKey"),
		},
	}
}

// Print prints leaderboard, a mapping holding an "objective" mapping and a
// "testtuples" list. Testtuples are printed in the given order.
func (p *LeaderboardPrinter) Print(w io.Writer, leaderboard Item, raw, expand bool) error {
	if raw {
		return printRaw(w, leaderboard)
	}

	objective, _ := asMap(leaderboard["objective"])
	testtuples := toItems(leaderboard["testtuples"])

	if _, err := io.WriteString(w, objectiveBanner+"\n"); err != nil {
		return err
	}
	if err := printDetails(w, objective, p.objectiveFields, expand); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"+leaderboardBanner+"\n"); err != nil {
		return err
	}
	return printTable(w, testtuples, p.testtupleFields)
}

// toItems converts a decoded JSON list to items; entries that are not
// mappings become empty items.
func toItems(v interface{}) []Item {
	list, _ := asList(v)
	items := make([]Item, 0, len(list))
	for _, elem := range list {
		m, ok := asMap(elem)
		if !ok {
			m = Item{}
		}
		items = append(items, m)
	}
	return items
}
