package store

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"araucarias-admin-service/internal/utils"
)

// scanLineItems consumes rows shaped as
// (order_id, product_id, quantity, product_name, product_price, category_id, category_name)
// and groups them by order id. A missing product keeps the line item with a
// placeholder name and zero price snapshot.
func scanLineItems(rows pgx.Rows) (map[int64][]LineItem, error) {
	out := make(map[int64][]LineItem)
	for rows.Next() {
		var (
			orderID      int64
			productID    pgtype.Int8
			quantity     int32
			productName  pgtype.Text
			productPrice pgtype.Numeric
			categoryID   pgtype.Int8
			categoryName pgtype.Text
		)
		if err := rows.Scan(&orderID, &productID, &quantity,
			&productName, &productPrice, &categoryID, &categoryName); err != nil {
			return nil, dataSourceError("line items scan", err)
		}

		item := LineItem{
			Quantity:  float64(quantity),
			UnitPrice: utils.NumericToFloat64(productPrice),
		}
		if productID.Valid {
			item.ProductID = productID.Int64
		}
		item.ProductName = utils.TextOrDefault(productName, PlaceholderProductName)
		if categoryID.Valid {
			item.CategoryID = categoryID.Int64
		}
		if categoryName.Valid {
			item.CategoryName = categoryName.String
		}

		out[orderID] = append(out[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, dataSourceError("line items rows", err)
	}
	return out, nil
}
