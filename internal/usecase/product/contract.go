package product

import domprod "github.com/shopkart/prodex/internal/domain/product"

// Repository defines the catalog storage contract.
type Repository interface {
	Add(p domprod.Params) (domprod.Product, error)
	BulkAdd(batch []domprod.Params) ([]domprod.Product, error)
	Get(id int64) (domprod.Product, error)
	Update(id int64, p domprod.Params) (domprod.Product, error)
	UpdateMetadata(id int64, patch domprod.Metadata) (domprod.Product, error)
	Delete(id int64) error
	All() []domprod.Product
	Count() int
}
