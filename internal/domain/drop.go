package domain

type DropStatus string

const (
	DropStatusActive   DropStatus = "active"
	DropStatusArchived DropStatus = "archived"
)

// Drop é uma coleção de produtos lançada em uma data específica
type Drop struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	LaunchDate string     `json:"launch_date"` // Formato yyyy-mm-dd
	Status     DropStatus `json:"status"`
	Products   []*Product `json:"products"`
}

// Product pertence exclusivamente a um Drop
type Product struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	SKU          string                  `json:"sku"`
	Price        float64                 `json:"price"`
	COGS         float64                 `json:"cogs"`
	InitialStock int                     `json:"initial_stock"`
	MonthlyData  map[string]PeriodRecord `json:"monthly_data"` // Chave no formato yyyy-mm
}

// PeriodRecord contém as vendas de um produto em um período. Campos ausentes valem zero.
type PeriodRecord struct {
	Sold             int     `json:"sold"`
	Returned         int     `json:"returned"`
	SoldWithDiscount int     `json:"sold_with_discount"`
	DiscountPercent  float64 `json:"discount_percent"`
	NewCustomers     int     `json:"new_customers"`
}

func (r PeriodRecord) NetSold() int {
	return r.Sold - r.Returned
}

// PeriodRecordPatch traz apenas os campos informados; os nulos mantêm o valor gravado
type PeriodRecordPatch struct {
	Sold             *int     `json:"sold,omitempty"`
	Returned         *int     `json:"returned,omitempty"`
	SoldWithDiscount *int     `json:"sold_with_discount,omitempty"`
	DiscountPercent  *float64 `json:"discount_percent,omitempty"`
	NewCustomers     *int     `json:"new_customers,omitempty"`
}

// FullPatch monta um patch que sobrescreve todos os campos do registro
func FullPatch(record PeriodRecord) PeriodRecordPatch {
	return PeriodRecordPatch{
		Sold:             &record.Sold,
		Returned:         &record.Returned,
		SoldWithDiscount: &record.SoldWithDiscount,
		DiscountPercent:  &record.DiscountPercent,
		NewCustomers:     &record.NewCustomers,
	}
}

// ApplyTo sobrepõe os campos informados ao registro atual
func (p PeriodRecordPatch) ApplyTo(record PeriodRecord) PeriodRecord {
	if p.Sold != nil {
		record.Sold = *p.Sold
	}
	if p.Returned != nil {
		record.Returned = *p.Returned
	}
	if p.SoldWithDiscount != nil {
		record.SoldWithDiscount = *p.SoldWithDiscount
	}
	if p.DiscountPercent != nil {
		record.DiscountPercent = *p.DiscountPercent
	}
	if p.NewCustomers != nil {
		record.NewCustomers = *p.NewCustomers
	}
	return record
}

// FindProduct busca um produto do drop pelo ID
func (d *Drop) FindProduct(productID string) *Product {
	for _, product := range d.Products {
		if product.ID == productID {
			return product
		}
	}
	return nil
}

func (p *Product) Clone() *Product {
	clone := *p
	clone.MonthlyData = make(map[string]PeriodRecord, len(p.MonthlyData))
	for period, record := range p.MonthlyData {
		clone.MonthlyData[period] = record
	}
	return &clone
}

func (d *Drop) Clone() *Drop {
	clone := *d
	clone.Products = make([]*Product, 0, len(d.Products))
	for _, product := range d.Products {
		clone.Products = append(clone.Products, product.Clone())
	}
	return &clone
}

type CreateDropRequest struct {
	Name       string `json:"name" validate:"required"`
	LaunchDate string `json:"launch_date" validate:"required,datetime=2006-01-02"`
}

type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required"`
	SKU          string  `json:"sku" validate:"required"`
	Price        float64 `json:"price" validate:"gt=0"`
	COGS         float64 `json:"cogs" validate:"gte=0"`
	InitialStock int     `json:"initial_stock" validate:"gt=0"`
}
