package reporting

import (
	"sort"

	"araucarias-admin-service/internal/store"
)

type RankKey string

const (
	RankByQuantity RankKey = "quantitySold"
	RankByRevenue  RankKey = "revenue"
)

type RankedProduct struct {
	ProductID    int64   `json:"productId"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	QuantitySold float64 `json:"quantitySold"`
	Revenue      float64 `json:"revenue"`
	Rank         int     `json:"rank"`
}

type RankedCategory struct {
	CategoryID   int64   `json:"categoryId"`
	Name         string  `json:"name"`
	QuantitySold float64 `json:"quantitySold"`
	Revenue      float64 `json:"revenue"`
	Rank         int     `json:"rank"`
}

// TopProducts groups pooled line items by product, sorts descending by the
// chosen key with ties broken by ascending product id, and truncates to n.
// Line items referencing deleted products keep their placeholder name and
// still count.
func TopProducts(items []store.LineItem, key RankKey, n int) []RankedProduct {
	if n <= 0 || len(items) == 0 {
		return []RankedProduct{}
	}

	grouped := make(map[int64]*RankedProduct)
	for _, item := range items {
		entry, ok := grouped[item.ProductID]
		if !ok {
			entry = &RankedProduct{
				ProductID: item.ProductID,
				Name:      item.ProductName,
				Category:  item.CategoryName,
			}
			grouped[item.ProductID] = entry
		}
		entry.QuantitySold += item.Quantity
		entry.Revenue += item.Quantity * item.UnitPrice
	}

	ranked := make([]RankedProduct, 0, len(grouped))
	for _, entry := range grouped {
		ranked = append(ranked, *entry)
	}
	sortRanked(ranked, key, false)

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// BottomProducts is the ascending counterpart, used for the "least sold"
// section of the business summary.
func BottomProducts(items []store.LineItem, key RankKey, n int) []RankedProduct {
	if n <= 0 || len(items) == 0 {
		return []RankedProduct{}
	}

	all := TopProducts(items, key, len(items))
	sortRanked(all, key, true)

	if len(all) > n {
		all = all[:n]
	}
	for i := range all {
		all[i].Rank = i + 1
	}
	return all
}

// TopCategories ranks menu categories by revenue. Items whose product (and
// therefore category) is gone fall into a synthetic "Sin categoría" group
// with id 0.
func TopCategories(items []store.LineItem, n int) []RankedCategory {
	if n <= 0 || len(items) == 0 {
		return []RankedCategory{}
	}

	grouped := make(map[int64]*RankedCategory)
	for _, item := range items {
		entry, ok := grouped[item.CategoryID]
		if !ok {
			name := item.CategoryName
			if name == "" {
				name = "Sin categoría"
			}
			entry = &RankedCategory{CategoryID: item.CategoryID, Name: name}
			grouped[item.CategoryID] = entry
		}
		entry.QuantitySold += item.Quantity
		entry.Revenue += item.Quantity * item.UnitPrice
	}

	ranked := make([]RankedCategory, 0, len(grouped))
	for _, entry := range grouped {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].CategoryID < ranked[j].CategoryID
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func sortRanked(ranked []RankedProduct, key RankKey, ascending bool) {
	value := func(p RankedProduct) float64 {
		if key == RankByRevenue {
			return p.Revenue
		}
		return p.QuantitySold
	}
	sort.Slice(ranked, func(i, j int) bool {
		vi, vj := value(ranked[i]), value(ranked[j])
		if vi != vj {
			if ascending {
				return vi < vj
			}
			return vi > vj
		}
		return ranked[i].ProductID < ranked[j].ProductID
	})
}
