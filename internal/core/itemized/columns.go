package itemized

import (
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
)

// parsedGroups holds the parsed detail of every item, aligned with the groups
// it was computed from, so each particulars string is parsed once per build.
type parsedGroups [][]domain.ParsedItemDetail

func parseGroups(groups []domain.InvoiceGroup, parser ItemDetailParser) parsedGroups {
	parsed := make(parsedGroups, len(groups))
	for i, g := range groups {
		parsed[i] = make([]domain.ParsedItemDetail, len(g.Items))
		for j, item := range g.Items {
			parsed[i][j] = parser.Parse(item.Particulars)
		}
	}
	return parsed
}

// BuildColumns returns the distinct item descriptions across groups in first
// occurrence order. In ColumnModeCapped the result is clipped to the item
// count of the largest group.
func BuildColumns(groups []domain.InvoiceGroup, mode domain.ColumnMode) []string {
	columns, _ := buildColumns(groups, parseGroups(groups, DefaultParser), mode)
	return columns
}

// buildColumns also returns the descriptions the cap dropped.
func buildColumns(groups []domain.InvoiceGroup, parsed parsedGroups, mode domain.ColumnMode) ([]string, []string) {
	seen := make(map[string]struct{})
	distinct := make([]string, 0)
	for _, details := range parsed {
		for _, d := range details {
			if _, ok := seen[d.Description]; ok {
				continue
			}
			seen[d.Description] = struct{}{}
			distinct = append(distinct, d.Description)
		}
	}

	if mode == domain.ColumnModeComplete {
		return distinct, []string{}
	}

	limit := maxItemCount(groups)
	if len(distinct) <= limit {
		return distinct, []string{}
	}
	return distinct[:limit], distinct[limit:]
}

// maxItemCount is 0 for no groups.
func maxItemCount(groups []domain.InvoiceGroup) int {
	largest := 0
	for _, g := range groups {
		if len(g.Items) > largest {
			largest = len(g.Items)
		}
	}
	return largest
}

// MatchForColumn returns the first item of group whose parsed description is itemName.
func MatchForColumn(group domain.InvoiceGroup, itemName string) (domain.TransactionLine, bool) {
	for _, item := range group.Items {
		if DefaultParser.Parse(item.Particulars).Description == itemName {
			return item, true
		}
	}
	return domain.TransactionLine{}, false
}

// matchIndex is MatchForColumn over pre-parsed details; -1 when nothing matches.
func matchIndex(details []domain.ParsedItemDetail, itemName string) int {
	for j, d := range details {
		if d.Description == itemName {
			return j
		}
	}
	return -1
}
