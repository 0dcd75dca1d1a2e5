// internal/domain/product/seed.go
package product

// SeedProducts returns the storefront's launch catalog
func SeedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Saraswati Smart TV 55\"",
			Category:    "Electronics",
			Price:       48999,
			Rating:      4.6,
			Badge:       "Top Rated",
			Stock:       12,
			Delivery:    "Tomorrow",
			Offer:       "Extra ₹3,000 off with bank offer",
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=900&q=80",
			Description: "4K UHD smart TV with Dolby Vision and built-in voice assistant.",
		},
		{
			ID:          2,
			Name:        "Aurora Noise-Canceling Headphones",
			Category:    "Audio",
			Price:       7999,
			Rating:      4.4,
			Badge:       "Hot Deal",
			Stock:       25,
			Delivery:    "2 days",
			Offer:       "No-cost EMI for 6 months",
			Image:       "https://images.unsplash.com/photo-1505740106531-4243f3831c78?auto=format&fit=crop&w=900&q=80",
			Description: "40-hour battery life with adaptive noise cancellation.",
		},
		{
			ID:          3,
			Name:        "Saraswati Laptop Pro 14",
			Category:    "Computers",
			Price:       82999,
			Rating:      4.7,
			Badge:       "Best Seller",
			Stock:       8,
			Delivery:    "Tomorrow",
			Offer:       "Free 1-year warranty upgrade",
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=900&q=80",
			Description: "Ultra-thin performance laptop with 16GB RAM and 1TB SSD.",
		},
		{
			ID:          4,
			Name:        "Prism Air Fryer 5L",
			Category:    "Home & Kitchen",
			Price:       5999,
			Rating:      4.3,
			Badge:       "New",
			Stock:       18,
			Delivery:    "3 days",
			Offer:       "Combo discount with cookware",
			Image:       "https://images.unsplash.com/photo-1505576399279-565b52d4ac71?auto=format&fit=crop&w=900&q=80",
			Description: "Healthy crisping with 8 smart presets and touch display.",
		},
		{
			ID:          5,
			Name:        "Saraswati Active Wear Set",
			Category:    "Fashion",
			Price:       2499,
			Rating:      4.5,
			Badge:       "Trending",
			Stock:       30,
			Delivery:    "2 days",
			Offer:       "Buy 2 get 10% off",
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=900&q=80",
			Description: "Breathable fabric with sweat-wicking technology.",
		},
		{
			ID:          6,
			Name:        "Glow Skin Essentials Kit",
			Category:    "Beauty",
			Price:       1899,
			Rating:      4.2,
			Badge:       "Combo",
			Stock:       40,
			Delivery:    "Tomorrow",
			Offer:       "Free travel pouch",
			Image:       "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?auto=format&fit=crop&w=900&q=80",
			Description: "Hydration-focused skincare kit for radiant glow.",
		},
	}
}
