package catalog

import (
	"fmt"

	"github.com/shopkart/prodex/internal/domain/product"
)

type seedEntry struct {
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
	ageDays     int
	metadata    product.Metadata
}

// seedEntries is a compact demo inventory across the supported categories,
// standing in for the scraped catalog.
var seedEntries = []seedEntry{
	{
		title:       "Apple iPhone 16 Pro Max",
		description: "Flagship smartphone with A18 Pro chip, titanium body and ProMotion OLED display",
		rating:      4.7, ratingCount: 8450, price: 144900, mrp: 149900,
		stock: 120, unitsSold: 45200, returnRate: 1.2, complaints: 3, ageDays: 20,
		metadata: product.Metadata{"brand": "Apple", "model": "iPhone 16 Pro Max", "category": "phone", "color": "Black", "storage": "512GB", "ram": "8GB"},
	},
	{
		title:       "Apple iPhone 15",
		description: "Smartphone with A16 Bionic chip, Dynamic Island and 48MP camera",
		rating:      4.6, ratingCount: 21300, price: 69900, mrp: 74900,
		stock: 85, unitsSold: 78100, returnRate: 1.8, complaints: 6, ageDays: 200,
		metadata: product.Metadata{"brand": "Apple", "model": "iPhone 15", "category": "phone", "color": "Blue", "storage": "128GB", "ram": "6GB"},
	},
	{
		title:       "Apple iPhone 13",
		description: "Smartphone with A15 Bionic chip and Super Retina XDR display",
		rating:      4.5, ratingCount: 54200, price: 49900, mrp: 54900,
		stock: 0, unitsSold: 95600, returnRate: 2.1, complaints: 9, ageDays: 700,
		metadata: product.Metadata{"brand": "Apple", "model": "iPhone 13", "category": "phone", "color": "Red", "storage": "128GB", "ram": "4GB"},
	},
	{
		title:       "Samsung Galaxy S24 Ultra",
		description: "Premium smartphone with Snapdragon 8 Gen 3, S Pen and 200MP camera",
		rating:      4.6, ratingCount: 12800, price: 134999, mrp: 139999,
		stock: 60, unitsSold: 38900, returnRate: 1.5, complaints: 4, ageDays: 80,
		metadata: product.Metadata{"brand": "Samsung", "model": "Galaxy S24 Ultra", "category": "phone", "color": "Gray", "storage": "512GB", "ram": "12GB"},
	},
	{
		title:       "Samsung Galaxy A54",
		description: "Mid-range smartphone with Super AMOLED display and 5000mAh battery",
		rating:      4.2, ratingCount: 31500, price: 34999, mrp: 39999,
		stock: 240, unitsSold: 61200, returnRate: 3.4, complaints: 12, ageDays: 320,
		metadata: product.Metadata{"brand": "Samsung", "model": "Galaxy A54", "category": "phone", "color": "White", "storage": "256GB", "ram": "8GB"},
	},
	{
		title:       "OnePlus 12",
		description: "Flagship killer with Snapdragon 8 Gen 3 and 100W fast charging",
		rating:      4.4, ratingCount: 9800, price: 64999, mrp: 69999,
		stock: 45, unitsSold: 22400, returnRate: 2.0, complaints: 5, ageDays: 110,
		metadata: product.Metadata{"brand": "OnePlus", "model": "OnePlus 12", "category": "phone", "color": "Green", "storage": "256GB", "ram": "12GB"},
	},
	{
		title:       "Redmi Note 13 Pro",
		description: "Budget smartphone with AMOLED display and 67W turbo charging",
		rating:      4.1, ratingCount: 42100, price: 23999, mrp: 27999,
		stock: 380, unitsSold: 88500, returnRate: 4.2, complaints: 18, ageDays: 260,
		metadata: product.Metadata{"brand": "Redmi", "model": "Note 13 Pro", "category": "phone", "color": "Black", "storage": "128GB", "ram": "8GB"},
	},
	{
		title:       "Google Pixel 8",
		description: "Smartphone with Tensor G3, best-in-class camera and 7 years of updates",
		rating:      4.5, ratingCount: 7600, price: 59999, mrp: 75999,
		stock: 30, unitsSold: 12800, returnRate: 1.9, complaints: 2, ageDays: 150,
		metadata: product.Metadata{"brand": "Google", "model": "Pixel 8", "category": "phone", "color": "Blue", "storage": "128GB", "ram": "8GB"},
	},
	{
		title:       "Apple MacBook Air M3",
		description: "Thin and light laptop with Apple M3 chip and all-day battery life",
		rating:      4.8, ratingCount: 5400, price: 114900, mrp: 119900,
		stock: 25, unitsSold: 9800, returnRate: 0.8, complaints: 1, ageDays: 90,
		metadata: product.Metadata{"brand": "Apple", "model": "MacBook Air M3", "category": "laptop", "color": "Silver", "storage": "512GB", "ram": "16GB"},
	},
	{
		title:       "Lenovo IdeaPad Slim 5",
		description: "Everyday laptop with AMD Ryzen 7 and 16 inch WUXGA display",
		rating:      4.0, ratingCount: 8900, price: 62999, mrp: 74999,
		stock: 75, unitsSold: 15600, returnRate: 3.1, complaints: 8, ageDays: 280,
		metadata: product.Metadata{"brand": "Lenovo", "model": "IdeaPad Slim 5", "category": "laptop", "color": "Gray", "storage": "1TB", "ram": "16GB"},
	},
	{
		title:       "Sony WH-1000XM5 Wireless Headphones",
		description: "Industry-leading noise cancelling headphones with 30 hour battery",
		rating:      4.7, ratingCount: 18700, price: 26990, mrp: 34990,
		stock: 90, unitsSold: 32100, returnRate: 1.4, complaints: 3, ageDays: 400,
		metadata: product.Metadata{"brand": "Sony", "model": "WH-1000XM5", "category": "headphone", "color": "Black"},
	},
	{
		title:       "Boat Airdopes 141 TWS Earbuds",
		description: "True wireless earbuds with 42 hour playback and low latency mode",
		rating:      3.9, ratingCount: 96400, price: 1299, mrp: 4490,
		stock: 1200, unitsSold: 98700, returnRate: 6.8, complaints: 24, ageDays: 500,
		metadata: product.Metadata{"brand": "Boat", "model": "Airdopes 141", "category": "headphone", "color": "White"},
	},
	{
		title:       "Apple iPad Air 11-inch M2",
		description: "Tablet with M2 chip, Liquid Retina display and Apple Pencil Pro support",
		rating:      4.6, ratingCount: 4200, price: 59900, mrp: 64900,
		stock: 40, unitsSold: 8700, returnRate: 1.1, complaints: 2, ageDays: 60,
		metadata: product.Metadata{"brand": "Apple", "model": "iPad Air 11 M2", "category": "tablet", "color": "Purple", "storage": "256GB", "ram": "8GB"},
	},
	{
		title:       "Noise ColorFit Pro 5 Smartwatch",
		description: "Fitness smartwatch with AMOLED display and bluetooth calling",
		rating:      4.0, ratingCount: 28600, price: 3499, mrp: 6999,
		stock: 640, unitsSold: 54300, returnRate: 5.9, complaints: 15, ageDays: 230,
		metadata: product.Metadata{"brand": "Noise", "model": "ColorFit Pro 5", "category": "smartwatch", "color": "Black"},
	},
	{
		title:       "Spigen iPhone 16 Pro Max Tough Armor Cover",
		description: "Shockproof protective case with kickstand for iPhone 16 Pro Max",
		rating:      4.4, ratingCount: 6800, price: 1899, mrp: 2899,
		stock: 420, unitsSold: 19800, returnRate: 2.3, complaints: 4, ageDays: 25,
		metadata: product.Metadata{"brand": "Spigen", "model": "Tough Armor", "category": "accessory", "color": "Black", "compatibility": "iPhone 16 Pro Max"},
	},
	{
		title:       "Anker 65W GaN Fast Charger",
		description: "Compact USB-C wall charger with PowerIQ for phones and laptops",
		rating:      4.5, ratingCount: 11200, price: 2799, mrp: 3999,
		stock: 310, unitsSold: 26700, returnRate: 1.7, complaints: 2, ageDays: 340,
		metadata: product.Metadata{"brand": "Anker", "model": "GaN 65W", "category": "accessory", "color": "White"},
	},
}

// Seed loads the demo inventory into an empty store and returns the number
// of products added.
func Seed(s *Store) (int, error) {
	added := 0
	for _, e := range seedEntries {
		p := product.Params{
			Title:       e.title,
			Description: e.description,
			Rating:      e.rating,
			RatingCount: e.ratingCount,
			Price:       e.price,
			MRP:         e.mrp,
			Stock:       e.stock,
			UnitsSold:   e.unitsSold,
			ReturnRate:  e.returnRate,
			Complaints:  e.complaints,
			// Backdated so recency scoring sees a realistic age spread.
			CreatedAt: s.now().AddDate(0, 0, -e.ageDays),
			Metadata:  e.metadata,
		}
		if _, err := s.Add(p); err != nil {
			return added, fmt.Errorf("seed %q: %w", e.title, err)
		}
		added++
	}
	return added, nil
}
