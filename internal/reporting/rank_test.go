package reporting

import (
	"testing"

	"araucarias-admin-service/internal/store"
)

func rankItems() []store.LineItem {
	return []store.LineItem{
		{ProductID: 1, ProductName: "Empanada", CategoryID: 10, CategoryName: "Entradas", Quantity: 3, UnitPrice: 2},
		{ProductID: 1, ProductName: "Empanada", CategoryID: 10, CategoryName: "Entradas", Quantity: 2, UnitPrice: 2},
		{ProductID: 2, ProductName: "Cazuela", CategoryID: 20, CategoryName: "Fondos", Quantity: 4, UnitPrice: 8},
		{ProductID: 3, ProductName: "Mote con huesillo", CategoryID: 30, CategoryName: "Postres", Quantity: 1, UnitPrice: 3},
	}
}

func TestTopProductsByQuantity(t *testing.T) {
	top := TopProducts(rankItems(), RankByQuantity, 2)

	if len(top) != 2 {
		t.Fatalf("got %d products, want 2", len(top))
	}
	if top[0].ProductID != 1 || top[0].QuantitySold != 5 {
		t.Fatalf("first = %+v, want product 1 with quantity 5", top[0])
	}
	if top[1].ProductID != 2 || top[1].QuantitySold != 4 {
		t.Fatalf("second = %+v, want product 2 with quantity 4", top[1])
	}
	if top[0].Rank != 1 || top[1].Rank != 2 {
		t.Fatalf("ranks not sequential: %d, %d", top[0].Rank, top[1].Rank)
	}
}

func TestTopProductsByRevenue(t *testing.T) {
	top := TopProducts(rankItems(), RankByRevenue, 3)

	if top[0].ProductID != 2 || top[0].Revenue != 32 {
		t.Fatalf("first = %+v, want product 2 with revenue 32", top[0])
	}
	if top[1].ProductID != 1 || top[1].Revenue != 10 {
		t.Fatalf("second = %+v, want product 1 with revenue 10", top[1])
	}
}

func TestTopProductsTieBreaksByID(t *testing.T) {
	items := []store.LineItem{
		{ProductID: 7, ProductName: "Sopaipilla", Quantity: 5, UnitPrice: 1},
		{ProductID: 2, ProductName: "Pastel de choclo", Quantity: 5, UnitPrice: 1},
	}

	top := TopProducts(items, RankByQuantity, 1)
	if len(top) != 1 {
		t.Fatalf("got %d products, want 1", len(top))
	}
	if top[0].ProductID != 2 {
		t.Fatalf("tie must resolve to the lower product id, got %d", top[0].ProductID)
	}
}

func TestTopProductsEdgeCases(t *testing.T) {
	if got := TopProducts(nil, RankByQuantity, 5); len(got) != 0 {
		t.Fatalf("nil items must yield empty slice")
	}
	if got := TopProducts(rankItems(), RankByQuantity, 0); len(got) != 0 {
		t.Fatalf("n=0 must yield empty slice")
	}
}

func TestTopProductsCountsDeletedProducts(t *testing.T) {
	items := []store.LineItem{
		{ProductID: 0, ProductName: store.PlaceholderProductName, Quantity: 9, UnitPrice: 0},
		{ProductID: 1, ProductName: "Empanada", Quantity: 2, UnitPrice: 2},
	}

	top := TopProducts(items, RankByQuantity, 2)
	if len(top) != 2 {
		t.Fatalf("got %d products, want 2", len(top))
	}
	if top[0].Name != store.PlaceholderProductName || top[0].QuantitySold != 9 {
		t.Fatalf("deleted product must still rank: %+v", top[0])
	}
}

func TestBottomProducts(t *testing.T) {
	bottom := BottomProducts(rankItems(), RankByQuantity, 1)
	if len(bottom) != 1 {
		t.Fatalf("got %d products, want 1", len(bottom))
	}
	if bottom[0].ProductID != 3 {
		t.Fatalf("least sold = %+v, want product 3", bottom[0])
	}
	if bottom[0].Rank != 1 {
		t.Fatalf("rank = %d, want 1", bottom[0].Rank)
	}
}

func TestTopCategories(t *testing.T) {
	top := TopCategories(rankItems(), 3)

	if len(top) != 3 {
		t.Fatalf("got %d categories, want 3", len(top))
	}
	if top[0].CategoryID != 20 || top[0].Revenue != 32 {
		t.Fatalf("first = %+v, want Fondos with revenue 32", top[0])
	}
}

func TestTopCategoriesOrphanGroup(t *testing.T) {
	items := []store.LineItem{
		{ProductID: 0, ProductName: store.PlaceholderProductName, CategoryID: 0, Quantity: 2, UnitPrice: 0},
		{ProductID: 1, ProductName: "Empanada", CategoryID: 10, CategoryName: "Entradas", Quantity: 1, UnitPrice: 2},
	}

	top := TopCategories(items, 5)
	if len(top) != 2 {
		t.Fatalf("got %d categories, want 2", len(top))
	}
	var orphan *RankedCategory
	for i := range top {
		if top[i].CategoryID == 0 {
			orphan = &top[i]
		}
	}
	if orphan == nil || orphan.Name != "Sin categoría" {
		t.Fatalf("orphaned items must group under Sin categoría, got %+v", top)
	}
}
