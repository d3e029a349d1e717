// Package product holds the catalog's read-only product model.
package product

import (
	"fmt"
	"time"

	"github.com/shopkart/prodex/internal/domain"
)

// Params carries the fields needed to build a Product.
type Params struct {
	ID          int64
	Title       string
	Description string
	Rating      float64
	RatingCount int
	Price       float64
	MRP         float64
	Stock       int
	UnitsSold   int
	ReturnRate  float64
	Complaints  int
	CreatedAt   time.Time
	Metadata    Metadata
}

// Product is an immutable catalog record. The ranking core only ever reads
// it; all mutation goes through the catalog repository, which replaces the
// stored value wholesale.
type Product struct {
	id          int64
	title       string
	description string
	rating      float64
	ratingCount int
	price       float64
	mrp         float64
	stock       int
	unitsSold   int
	returnRate  float64
	complaints  int
	createdAt   time.Time
	metadata    Metadata
}

// New validates and creates a Product.
func New(p Params) (Product, error) {
	if p.Title == "" {
		return Product{}, fmt.Errorf("%w: title is required", domain.ErrInvalidProduct)
	}
	if p.Description == "" {
		return Product{}, fmt.Errorf("%w: description is required", domain.ErrInvalidProduct)
	}
	if p.Price < 0 || p.MRP < 0 {
		return Product{}, fmt.Errorf("%w: price and mrp must be non-negative", domain.ErrInvalidProduct)
	}
	if p.Price > p.MRP {
		return Product{}, fmt.Errorf("%w: price %.2f exceeds mrp %.2f", domain.ErrInvalidProduct, p.Price, p.MRP)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return Product{}, fmt.Errorf("%w: rating must be between 0 and 5", domain.ErrInvalidProduct)
	}
	if p.RatingCount < 0 || p.Stock < 0 || p.UnitsSold < 0 || p.Complaints < 0 || p.ReturnRate < 0 {
		return Product{}, fmt.Errorf("%w: counters must be non-negative", domain.ErrInvalidProduct)
	}
	return Reconstruct(p), nil
}

// Reconstruct builds a Product from trusted data without validation.
func Reconstruct(p Params) Product {
	return Product{
		id:          p.ID,
		title:       p.Title,
		description: p.Description,
		rating:      p.Rating,
		ratingCount: p.RatingCount,
		price:       p.Price,
		mrp:         p.MRP,
		stock:       p.Stock,
		unitsSold:   p.UnitsSold,
		returnRate:  p.ReturnRate,
		complaints:  p.Complaints,
		createdAt:   p.CreatedAt,
		metadata:    p.Metadata.Clone(),
	}
}

// ID returns the immutable product identifier.
func (p *Product) ID() int64 { return p.id }

// Title returns the product title.
func (p *Product) Title() string { return p.title }

// Description returns the product description.
func (p *Product) Description() string { return p.description }

// Rating returns the average rating (0-5).
func (p *Product) Rating() float64 { return p.rating }

// RatingCount returns the number of ratings.
func (p *Product) RatingCount() int { return p.ratingCount }

// Price returns the selling price.
func (p *Product) Price() float64 { return p.price }

// MRP returns the maximum retail price.
func (p *Product) MRP() float64 { return p.mrp }

// Stock returns the units in stock.
func (p *Product) Stock() int { return p.stock }

// InStock reports whether the product has any stock.
func (p *Product) InStock() bool { return p.stock > 0 }

// UnitsSold returns the lifetime units sold.
func (p *Product) UnitsSold() int { return p.unitsSold }

// ReturnRate returns the return rate in percent.
func (p *Product) ReturnRate() float64 { return p.returnRate }

// Complaints returns the complaint count.
func (p *Product) Complaints() int { return p.complaints }

// CreatedAt returns the catalog insertion time.
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// Metadata returns the open attribute map. Callers must not mutate it.
func (p *Product) Metadata() Metadata { return p.metadata }

// DiscountPercent returns the discount over MRP in percent, 0 when MRP is 0.
func (p *Product) DiscountPercent() float64 {
	if p.mrp == 0 {
		return 0
	}
	return (p.mrp - p.price) / p.mrp * 100
}

// Params returns the product's fields for rebuilding an updated copy.
func (p *Product) Params() Params {
	return Params{
		ID:          p.id,
		Title:       p.title,
		Description: p.description,
		Rating:      p.rating,
		RatingCount: p.ratingCount,
		Price:       p.price,
		MRP:         p.mrp,
		Stock:       p.stock,
		UnitsSold:   p.unitsSold,
		ReturnRate:  p.returnRate,
		Complaints:  p.complaints,
		CreatedAt:   p.createdAt,
		Metadata:    p.metadata.Clone(),
	}
}
