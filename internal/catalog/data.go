package catalog

import (
	"time"

	"github.com/stylehaven/storefront/internal/models"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func money(amount string) models.Money {
	return models.NewMoneyFromString(amount)
}

func moneyPtr(amount string) *models.Money {
	m := money(amount)
	return &m
}

// defaultCategories 静态分类数据
var defaultCategories = []models.Category{
	{
		ID:          1,
		Name:        "Clothing",
		Slug:        "clothing",
		Image:       "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Description: "High-quality clothing for all occasions.",
	},
	{
		ID:          2,
		Name:        "Electronics",
		Slug:        "electronics",
		Image:       "https://images.unsplash.com/photo-1593642702821-c8da6771f0c6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Description: "The latest gadgets and tech accessories.",
	},
	{
		ID:          3,
		Name:        "Accessories",
		Slug:        "accessories",
		Image:       "https://images.unsplash.com/photo-1631904742896-dc8d9013ab3d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Description: "Complete your look with our stylish accessories.",
	},
	{
		ID:          4,
		Name:        "Home",
		Slug:        "home",
		Image:       "https://images.unsplash.com/photo-1513161455079-7dc1de15ef3e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Description: "Beautiful items to brighten up your living space.",
	},
}

// defaultProducts 静态商品数据
var defaultProducts = []models.Product{
	{
		ID:          1,
		Name:        "Classic White T-Shirt",
		Description: "A comfortable and versatile white t-shirt made from 100% organic cotton.",
		Price:       money("24.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			"https://images.unsplash.com/photo-1556774687-0e2fdd0116c0?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		},
		Category:  "Clothing",
		Rating:    4.5,
		Reviews:   128,
		InStock:   true,
		New:       true,
		Featured:  true,
		Sizes:     []string{"XS", "S", "M", "L", "XL"},
		Colors:    []string{"White", "Black", "Gray"},
		CreatedAt: date("2024-05-20"),
	},
	{
		ID:          2,
		Name:        "Slim Fit Jeans",
		Description: "Classic slim fit jeans in dark blue wash, perfect for any casual outfit.",
		Price:       money("59.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1542272604-787c3835535d?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			"https://images.unsplash.com/photo-1582552938357-32b906df40cb?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		},
		Category:  "Clothing",
		Rating:    4.2,
		Reviews:   95,
		InStock:   true,
		Trending:  true,
		Sizes:     []string{"28", "30", "32", "34", "36"},
		Colors:    []string{"Dark Blue", "Light Blue"},
		CreatedAt: date("2024-02-11"),
	},
	{
		ID:            3,
		Name:          "Leather Crossbody Bag",
		Description:   "Stylish leather crossbody bag with adjustable strap and multiple compartments.",
		Price:         money("89.99"),
		OriginalPrice: moneyPtr("119.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1590874103328-eac38a683ce7?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			"https://images.unsplash.com/photo-1566150905458-1bf1fc113f0d?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		},
		Category:  "Accessories",
		Rating:    4.8,
		Reviews:   63,
		InStock:   true,
		Sale:      true,
		Featured:  true,
		Colors:    []string{"Brown", "Black"},
		CreatedAt: date("2024-03-02"),
	},
	{
		ID:            4,
		Name:          "Wireless Bluetooth Earbuds",
		Description:   "High-quality wireless earbuds with noise cancellation and long battery life.",
		Price:         money("129.99"),
		OriginalPrice: moneyPtr("159.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1606220838315-056192d5e927?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			"https://images.unsplash.com/photo-1585298723682-7115561c51b7?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		},
		Category:  "Electronics",
		Rating:    4.6,
		Reviews:   214,
		InStock:   true,
		Trending:  true,
		Sale:      true,
		CreatedAt: date("2024-01-28"),
	},
	{
		ID:          5,
		Name:        "Stainless Steel Water Bottle",
		Description: "Eco-friendly and insulated water bottle to keep your drinks hot or cold for hours.",
		Price:       money("34.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1602143407151-7111542de6e8?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			"https://images.unsplash.com/photo-1570533740207-4c73579d7e72?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		},
		Category:  "Home",
		Rating:    4.4,
		Reviews:   87,
		InStock:   true,
		Featured:  true,
		Colors:    []string{"Silver", "Matte Black", "Navy"},
		CreatedAt: date("2024-04-09"),
	},
	{
		ID:            6,
		Name:          "Oversized Knit Sweater",
		Description:   "Cozy oversized knit sweater perfect for staying warm during colder months.",
		Price:         money("74.99"),
		OriginalPrice: moneyPtr("94.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1576566588028-4147f3842f27?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			"https://images.unsplash.com/photo-1583744946564-b52d01a7b321?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		},
		Category:  "Clothing",
		Rating:    4.3,
		Reviews:   56,
		InStock:   true,
		Sale:      true,
		Sizes:     []string{"S", "M", "L"},
		Colors:    []string{"Cream", "Rust"},
		CreatedAt: date("2023-11-17"),
	},
	{
		ID:          7,
		Name:        "Smart Fitness Tracker",
		Description: "Advanced fitness tracker with heart rate monitoring, sleep tracking, and GPS.",
		Price:       money("149.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1576243345690-4e4b79b63288?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			"https://images.unsplash.com/photo-1559311648-b7aff6a881a8?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		},
		Category:  "Electronics",
		Rating:    4.7,
		Reviews:   172,
		InStock:   true,
		New:       true,
		Trending:  true,
		CreatedAt: date("2024-06-01"),
	},
	{
		ID:          8,
		Name:        "Minimalist Gold Necklace",
		Description: "Delicate gold-plated necklace with a simple pendant, suitable for everyday wear.",
		Price:       money("42.99"),
		Images: []string{
			"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
			"https://images.unsplash.com/photo-1602173574767-37ac01994b2a?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=80",
		},
		Category:  "Jewelry",
		Rating:    4.5,
		Reviews:   89,
		InStock:   true,
		Featured:  true,
		CreatedAt: date("2023-12-05"),
	},
}
