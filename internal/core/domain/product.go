package domain

// Product is an inventory item. SKU is unique across all tenants, not per
// tenant. Products are hard-deleted.
type Product struct {
	ID           string  `json:"id" bson:"_id"`
	Name         string  `json:"name" bson:"name"`
	SKU          string  `json:"sku" bson:"sku"`
	Description  string  `json:"description,omitempty" bson:"description,omitempty"`
	Category     string  `json:"category,omitempty" bson:"category,omitempty"`
	Price        float64 `json:"price" bson:"price"`
	Cost         float64 `json:"cost" bson:"cost"`
	StockMin     int     `json:"stock_min" bson:"stock_min"`
	StockMax     int     `json:"stock_max" bson:"stock_max"`
	StockCurrent int     `json:"stock_current" bson:"stock_current"`
	TenantID     string  `json:"tenant_id" bson:"tenant_id"`
}

// LowStock reports whether the product has reached its minimum stock level.
// A product sitting exactly at stock_min counts as low.
func (p *Product) LowStock() bool {
	return p.StockCurrent <= p.StockMin
}
