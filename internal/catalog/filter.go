package catalog

import (
	"sort"
	"strings"

	"doceencanto/internal/models"
)

// SortOption selects the ordering of the filtered catalog view.
type SortOption string

const (
	SortRelevance   SortOption = "relevancia"
	SortBestSelling SortOption = "mais-vendidos"
	SortPriceAsc    SortOption = "preco-asc"
	SortPriceDesc   SortOption = "preco-desc"
)

// SortOptionInfo is a sort option with its display label.
type SortOptionInfo struct {
	Value SortOption `json:"value"`
	Label string     `json:"label"`
}

// SortOptions lists the sort options in display order.
var SortOptions = []SortOptionInfo{
	{Value: SortRelevance, Label: "Relevância"},
	{Value: SortBestSelling, Label: "Mais vendidos"},
	{Value: SortPriceAsc, Label: "Menor preço"},
	{Value: SortPriceDesc, Label: "Maior preço"},
}

// tagRank orders products for the best-selling sort. Untagged products and
// tags outside the map rank last; ties keep their catalog order.
var tagRank = map[models.ProductTag]int{
	models.TagBestSeller: 0,
	models.TagPremium:    1,
	models.TagNew:        2,
}

const unrankedTag = 3

// FilterAndSort returns a new slice with the catalog view for the menu page.
// The input is never mutated.
//
// Category filtering is an exact match, with models.CategoryAll bypassing it.
// The search filter is a case-insensitive substring match on name or
// description; blank search bypasses it. All sorts are stable, and the
// default relevance sort keeps the original catalog order.
func FilterAndSort(products []models.Product, category, search string, sortBy SortOption) []models.Product {
	filtered := make([]models.Product, 0, len(products))

	needle := strings.ToLower(strings.TrimSpace(search))
	for _, p := range products {
		if category != models.CategoryAll && category != "" && p.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.GreaterThan(filtered[j].Price)
		})
	case SortBestSelling:
		sort.SliceStable(filtered, func(i, j int) bool {
			return rankOf(filtered[i].Tag) < rankOf(filtered[j].Tag)
		})
	default:
		// relevance: keep catalog order
	}

	return filtered
}

func rankOf(tag models.ProductTag) int {
	if tag == "" {
		return unrankedTag
	}
	if rank, ok := tagRank[tag]; ok {
		return rank
	}
	return unrankedTag
}
