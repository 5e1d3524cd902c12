package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strings"
)

// defaultSeed keeps the generated catalog stable across restarts so that
// product IDs and slugs stay valid for saved carts and wishlists.
const defaultSeed = 20240915

const productsPerCategory = 45

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Categories returns the fixed browse taxonomy.
func Categories() []Category {
	out := make([]Category, len(seedCategories))
	copy(out, seedCategories)
	return out
}

var seedCategories = []Category{
	{ID: 1, Name: "Mobile Phones", Slug: "mobile-phones", Description: "Latest smartphones from top brands with cutting-edge technology", ImageURL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400", Subcategories: []string{"Flagship", "Mid-Range", "Budget", "Gaming Phones", "Foldable"}},
	{ID: 2, Name: "Laptops & Computers", Slug: "laptops-computers", Description: "Powerful laptops and desktops for work and gaming", ImageURL: "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400", Subcategories: []string{"Gaming Laptops", "Business Laptops", "Ultrabooks", "2-in-1", "Desktops"}},
	{ID: 3, Name: "Tablets & E-readers", Slug: "tablets-ereaders", Description: "Portable tablets and e-readers for entertainment and productivity", ImageURL: "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400", Subcategories: []string{"Android Tablets", "iPads", "E-readers", "Kids Tablets", "Drawing Tablets"}},
	{ID: 4, Name: "Headphones & Audio", Slug: "headphones-audio", Description: "Premium audio equipment for immersive sound experience", ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400", Subcategories: []string{"Over-Ear", "In-Ear", "True Wireless", "Gaming Headsets", "Speakers"}},
	{ID: 5, Name: "Cameras & Photography", Slug: "cameras-photography", Description: "Professional cameras and accessories for stunning photography", ImageURL: "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?w=400", Subcategories: []string{"DSLR", "Mirrorless", "Action Cameras", "Drones", "Camera Accessories"}},
	{ID: 6, Name: "Men's Fashion", Slug: "mens-fashion", Description: "Stylish clothing and accessories for men", ImageURL: "https://images.unsplash.com/photo-1490578474895-699cd4e2cf59?w=400", Subcategories: []string{"T-Shirts", "Shirts", "Jeans", "Jackets", "Formal Wear", "Ethnic Wear"}},
	{ID: 7, Name: "Women's Fashion", Slug: "womens-fashion", Description: "Trendy apparel and accessories for women", ImageURL: "https://images.unsplash.com/photo-1469334031218-e382a71b716b?w=400", Subcategories: []string{"Dresses", "Tops", "Jeans", "Sarees", "Kurtis", "Western Wear"}},
	{ID: 8, Name: "Kids' Fashion", Slug: "kids-fashion", Description: "Comfortable and colorful clothing for kids", ImageURL: "https://images.unsplash.com/photo-1503919545889-aef636e10ad4?w=400", Subcategories: []string{"Boys Clothing", "Girls Clothing", "Baby Clothing", "School Uniforms", "Accessories"}},
	{ID: 9, Name: "Footwear", Slug: "footwear", Description: "Quality footwear for every occasion", ImageURL: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400", Subcategories: []string{"Sports Shoes", "Casual Shoes", "Formal Shoes", "Sandals", "Boots"}},
	{ID: 10, Name: "Watches & Accessories", Slug: "watches-accessories", Description: "Premium watches and fashion accessories", ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400", Subcategories: []string{"Smart Watches", "Analog Watches", "Digital Watches", "Luxury Watches", "Accessories"}},
	{ID: 11, Name: "Home Appliances", Slug: "home-appliances", Description: "Essential appliances for modern homes", ImageURL: "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400", Subcategories: []string{"Refrigerators", "Washing Machines", "Air Conditioners", "Microwaves", "Vacuum Cleaners"}},
	{ID: 12, Name: "Books & Media", Slug: "books-media", Description: "Books, audiobooks, and digital media", ImageURL: "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400", Subcategories: []string{"Fiction", "Non-Fiction", "Academic", "Comics", "Audiobooks"}},
	{ID: 13, Name: "Sports & Fitness", Slug: "sports-fitness", Description: "Sports equipment and fitness gear", ImageURL: "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=400", Subcategories: []string{"Gym Equipment", "Sports Gear", "Outdoor Sports", "Yoga & Meditation", "Supplements"}},
	{ID: 14, Name: "Toys & Games", Slug: "toys-games", Description: "Fun toys and games for all ages", ImageURL: "https://images.unsplash.com/photo-1558060370-d644479cb6f7?w=400", Subcategories: []string{"Action Figures", "Board Games", "Video Games", "Educational Toys", "Outdoor Toys"}},
	{ID: 15, Name: "Beauty & Personal Care", Slug: "beauty-personal-care", Description: "Beauty products and personal care essentials", ImageURL: "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400", Subcategories: []string{"Skincare", "Makeup", "Haircare", "Fragrances", "Men's Grooming"}},
}

type generatorSpec struct {
	category      Category
	brands        []string
	nameTemplates []string
	specFn        func(brand string, i int) map[string]any
	basePrice     int64
	priceVariance int64
}

func pick[T any](values []T, i int) T {
	return values[i%len(values)]
}

func generate(spec generatorSpec, rng *rand.Rand) []Product {
	products := make([]Product, 0, productsPerCategory)
	for i := 0; i < productsPerCategory; i++ {
		brand := pick(spec.brands, i)
		subcategory := pick(spec.category.Subcategories, i)
		template := pick(spec.nameTemplates, i)
		model := rng.Intn(900) + 100
		name := fmt.Sprintf("%s %s %d", brand, template, model)

		price := spec.basePrice + rng.Int63n(spec.priceVariance)
		discountPrice := price
		if rng.Float64() > 0.3 {
			percent := rng.Intn(30) + 5
			discountPrice = int64(math.Floor(float64(price) * (1 - float64(percent)/100)))
		}

		products = append(products, Product{
			ID:            spec.category.ID*1000 + int64(i) + 1,
			Name:          name,
			Slug:          Slugify(name),
			Description:   fmt.Sprintf("Premium %s from %s. Features cutting-edge technology and exceptional build quality. Perfect for everyday use with outstanding performance and reliability.", strings.ToLower(template), brand),
			Price:         price,
			DiscountPrice: discountPrice,
			CategoryID:    spec.category.ID,
			CategorySlug:  spec.category.Slug,
			Subcategory:   subcategory,
			Brand:         brand,
			Stock:         rng.Intn(100) + 5,
			RatingAvg:     math.Round((3.5+rng.Float64()*1.5)*10) / 10,
			ReviewCount:   rng.Intn(5000) + 50,
			Specifications: func() map[string]any {
				if spec.specFn == nil {
					return nil
				}
				return spec.specFn(brand, i)
			}(),
			Images: []string{
				fmt.Sprintf("https://picsum.photos/seed/%s-%d-1/600/600", spec.category.Slug, i),
				fmt.Sprintf("https://picsum.photos/seed/%s-%d-2/600/600", spec.category.Slug, i),
				fmt.Sprintf("https://picsum.photos/seed/%s-%d-3/600/600", spec.category.Slug, i),
				fmt.Sprintf("https://picsum.photos/seed/%s-%d-4/600/600", spec.category.Slug, i),
			},
			IsFeatured: i < 8,
		})
	}
	return products
}

// Slugify lowercases the name and collapses non-alphanumeric runs into dashes.
func Slugify(name string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

func generatorSpecs() []generatorSpec {
	cats := seedCategories
	return []generatorSpec{
		{
			category:      cats[0],
			brands:        []string{"Apple", "Samsung", "OnePlus", "Google", "Xiaomi", "Oppo", "Vivo", "Realme", "Nothing", "Motorola"},
			nameTemplates: []string{"Galaxy Pro", "iPhone Ultra", "Pixel Pro", "Nord CE", "Redmi Note", "Find X", "V Series", "GT Neo", "Phone", "Edge"},
			specFn: func(brand string, i int) map[string]any {
				os := "Android 14"
				if brand == "Apple" {
					os = "iOS 17"
				}
				return map[string]any{
					"Display":       fmt.Sprintf("%.1f\" %s", 6.1+float64(i%5)*0.2, pick([]string{"AMOLED", "Super AMOLED", "LTPO OLED", "ProMotion"}, i)),
					"Processor":     pick([]string{"Snapdragon 8 Gen 3", "Apple A17 Pro", "Dimensity 9300", "Exynos 2400"}, i),
					"RAM":           fmt.Sprintf("%d GB", pick([]int{8, 12, 16, 8, 12}, i)),
					"Storage":       fmt.Sprintf("%d GB", pick([]int{128, 256, 512, 256, 128}, i)),
					"Battery":       fmt.Sprintf("%d mAh", 4500+(i%5)*200),
					"Camera":        fmt.Sprintf("%d MP Triple Camera", pick([]int{50, 108, 200, 64, 48}, i)),
					"OS":            os,
					"5G":            true,
					"Fast Charging": fmt.Sprintf("%dW", pick([]int{65, 100, 120, 67, 80}, i)),
				}
			},
			basePrice:     25000,
			priceVariance: 75000,
		},
		{
			category:      cats[1],
			brands:        []string{"Apple", "Dell", "HP", "Lenovo", "ASUS", "Acer", "MSI", "Microsoft", "Razer", "LG"},
			nameTemplates: []string{"MacBook Pro", "XPS", "ThinkPad", "ROG Strix", "Predator", "Swift", "Surface", "Blade", "Gram", "ZenBook"},
			specFn: func(brand string, i int) map[string]any {
				os := "Windows 11 Pro"
				if brand == "Apple" {
					os = "macOS Sonoma"
				}
				return map[string]any{
					"Display":      fmt.Sprintf("%.1f\" %s", pick([]float64{13.3, 14, 15.6, 16, 17.3}, i), pick([]string{"4K OLED", "2.5K IPS", "FHD IPS", "QHD+", "Retina"}, i)),
					"Processor":    pick([]string{"Intel Core i9-13900H", "Apple M3 Pro", "AMD Ryzen 9 7945HX", "Intel Core i7-13700H"}, i),
					"RAM":          fmt.Sprintf("%d GB DDR5", pick([]int{16, 32, 64, 16, 32}, i)),
					"Storage":      fmt.Sprintf("%d GB NVMe SSD", pick([]int{512, 1024, 2048, 512, 1024}, i)),
					"Graphics":     pick([]string{"NVIDIA RTX 4090", "Apple M3 GPU", "AMD RX 7900M", "Intel Iris Xe", "NVIDIA RTX 4070"}, i),
					"Battery Life": fmt.Sprintf("%d hours", pick([]int{8, 12, 18, 10, 14}, i)),
					"OS":           os,
					"Ports":        "USB-C, HDMI, SD Card, Thunderbolt 4",
				}
			},
			basePrice:     45000,
			priceVariance: 150000,
		},
		{
			category:      cats[2],
			brands:        []string{"Apple", "Samsung", "Lenovo", "Microsoft", "Amazon", "Xiaomi", "Huawei", "OnePlus"},
			nameTemplates: []string{"iPad Pro", "Galaxy Tab", "Tab P", "Surface Pro", "Fire HD", "Pad", "MatePad", "Pad 2"},
			specFn: func(brand string, i int) map[string]any {
				os := "Android 13"
				switch brand {
				case "Apple":
					os = "iPadOS 17"
				case "Microsoft":
					os = "Windows 11"
				}
				return map[string]any{
					"Display":        fmt.Sprintf("%.1f\" %s", pick([]float64{10.9, 11, 12.4, 12.9, 8.3}, i), pick([]string{"Liquid Retina", "Super AMOLED", "LCD", "OLED"}, i)),
					"Processor":      pick([]string{"Apple M2", "Snapdragon 8 Gen 2", "MediaTek Dimensity", "Intel Core i5"}, i),
					"RAM":            fmt.Sprintf("%d GB", pick([]int{8, 16, 12, 8, 6}, i)),
					"Storage":        fmt.Sprintf("%d GB", pick([]int{128, 256, 512, 1024, 64}, i)),
					"Battery":        fmt.Sprintf("%d mAh", 7000+(i%5)*500),
					"OS":             os,
					"Stylus Support": i%3 != 2,
					"Connectivity":   pick([]string{"WiFi + 5G", "WiFi Only", "WiFi + LTE"}, i),
				}
			},
			basePrice:     15000,
			priceVariance: 80000,
		},
		{
			category:      cats[3],
			brands:        []string{"Sony", "Bose", "JBL", "Sennheiser", "Apple", "Samsung", "Beats", "Audio-Technica", "Skullcandy", "Marshall"},
			nameTemplates: []string{"WH-1000XM", "QuietComfort", "Tune", "Momentum", "AirPods", "Galaxy Buds", "Studio", "ATH-M", "Crusher", "Major"},
			specFn: func(brand string, i int) map[string]any {
				return map[string]any{
					"Type":               pick([]string{"Over-Ear", "In-Ear", "True Wireless", "On-Ear"}, i),
					"Driver Size":        fmt.Sprintf("%dmm", pick([]int{40, 50, 11, 30}, i)),
					"Noise Cancellation": pick([]string{"Active", "Passive", "Adaptive", "None"}, i),
					"Battery Life":       fmt.Sprintf("%d hours", pick([]int{30, 24, 8, 40}, i)),
					"Bluetooth":          "5.3",
					"Codec Support":      "AAC, LDAC, aptX HD",
					"Water Resistance":   pick([]string{"IPX4", "IPX7", "None", "IPX5"}, i),
					"Foldable":           i%2 == 0,
				}
			},
			basePrice:     2000,
			priceVariance: 30000,
		},
		{
			category:      cats[4],
			brands:        []string{"Canon", "Nikon", "Sony", "Fujifilm", "Panasonic", "GoPro", "DJI", "Olympus"},
			nameTemplates: []string{"EOS R", "Z Series", "Alpha", "X-T", "Lumix", "HERO", "Mavic", "OM-D"},
			specFn: func(brand string, i int) map[string]any {
				return map[string]any{
					"Sensor":              pick([]string{"Full Frame", "APS-C", "Micro 4/3", "1-inch"}, i),
					"Megapixels":          fmt.Sprintf("%d MP", pick([]int{45, 61, 33, 24, 26}, i)),
					"Video":               pick([]string{"8K 30fps", "4K 120fps", "4K 60fps", "6K 30fps"}, i),
					"ISO Range":           "100 - 102400",
					"Continuous Shooting": fmt.Sprintf("%d fps", pick([]int{20, 30, 12, 15}, i)),
					"Stabilization":       "5-axis IBIS",
					"Weather Sealing":     i%3 != 2,
					"Memory Card":         "CFexpress / SD UHS-II",
				}
			},
			basePrice:     35000,
			priceVariance: 200000,
		},
		{
			category:      cats[5],
			brands:        []string{"Nike", "Adidas", "Puma", "H&M", "Zara", "Levis", "Tommy Hilfiger", "Calvin Klein", "Gucci", "Ralph Lauren"},
			nameTemplates: []string{"Classic Fit", "Slim Fit", "Athletic", "Vintage", "Modern", "Essential", "Premium", "Urban", "Sport", "Elite"},
			specFn: func(brand string, i int) map[string]any {
				return map[string]any{
					"Material": pick([]string{"100% Cotton", "Cotton Blend", "Polyester", "Linen", "Denim", "Wool"}, i),
					"Fit":      pick([]string{"Regular", "Slim", "Relaxed", "Athletic"}, i),
					"Size":     "S, M, L, XL, XXL",
					"Care":     "Machine Washable",
					"Pattern":  pick([]string{"Solid", "Striped", "Checked", "Printed", "Plain"}, i),
					"Occasion": pick([]string{"Casual", "Formal", "Party", "Sports", "Daily"}, i),
					"Season":   pick([]string{"All Season", "Summer", "Winter", "Monsoon"}, i),
				}
			},
			basePrice:     500,
			priceVariance: 5000,
		},
		{
			category:      cats[6],
			brands:        []string{"Nike", "Adidas", "Puma", "H&M", "Zara", "Levis", "Tommy Hilfiger", "Calvin Klein", "Gucci", "Ralph Lauren"},
			nameTemplates: []string{"Floral", "Elegant", "Chic", "Bohemian", "Contemporary", "Classic", "Trendy", "Designer", "Casual", "Premium"},
			specFn: func(brand string, i int) map[string]any {
				return map[string]any{
					"Material":      pick([]string{"Georgette", "Cotton", "Silk", "Chiffon", "Rayon", "Crepe"}, i),
					"Fit":           pick([]string{"Regular", "A-Line", "Fitted", "Flared"}, i),
					"Size":          "XS, S, M, L, XL",
					"Pattern":       pick([]string{"Floral", "Solid", "Printed", "Embroidered", "Plain"}, i),
					"Sleeve Length": pick([]string{"Full", "3/4th", "Short", "Sleeveless"}, i),
					"Occasion":      pick([]string{"Casual", "Party", "Festive", "Office", "Wedding"}, i),
					"Length":        pick([]string{"Mini", "Midi", "Maxi", "Knee Length"}, i),
				}
			},
			basePrice:     600,
			priceVariance: 8000,
		},
		{
			category:      cats[7],
			brands:        []string{"Carter's", "H&M Kids", "Zara Kids", "Gap Kids", "Marks & Spencer", "United Colors", "Max Kids", "Hopscotch"},
			nameTemplates: []string{"Playful", "Comfort", "Active", "Party", "School", "Casual", "Summer", "Winter", "Festival", "Sports"},
			specFn: func(brand string, i int) map[string]any {
				return map[string]any{
					"Material":  pick([]string{"100% Cotton", "Cotton Blend", "Organic Cotton", "Polyester"}, i),
					"Age Group": pick([]string{"0-2 Years", "2-4 Years", "4-6 Years", "6-8 Years", "8-12 Years"}, i),
					"Size":      "1Y, 2Y, 3Y, 4Y, 5Y, 6Y, 7Y, 8Y",
					"Pattern":   pick([]string{"Cartoon Print", "Solid", "Striped", "Character", "Plain"}, i),
					"Closure":   pick([]string{"Button", "Zipper", "Elastic", "Velcro"}, i),
					"Occasion":  pick([]string{"Casual", "Party", "School", "Play", "Festival"}, i),
					"Safety":    "Skin-Friendly, Non-Toxic Dyes",
				}
			},
			basePrice:     300,
			priceVariance: 2000,
		},
		{
			category:      cats[8],
			brands:        []string{"Nike", "Adidas", "Puma", "Reebok", "Skechers", "Clarks", "Woodland", "Red Tape", "Bata", "Metro"},
			nameTemplates: []string{"Air Max", "Ultraboost", "RS-X", "Classic", "Go Walk", "Desert Boot", "Trekker", "Oxford", "Power", "Comfort"},
			specFn: func(brand string, i int) map[string]any {
				return map[string]any{
					"Upper Material":  pick([]string{"Mesh", "Leather", "Synthetic", "Canvas", "Knit"}, i),
					"Sole Material":   pick([]string{"Rubber", "EVA", "Phylon", "TPU", "Leather"}, i),
					"Closure":         pick([]string{"Lace-Up", "Slip-On", "Velcro", "Buckle", "Zipper"}, i),
					"Size":            "UK 6-12",
					"Cushioning":      pick([]string{"Memory Foam", "Gel", "Air", "EVA"}, i),
					"Water Resistant": i%3 == 0,
					"Style":           pick([]string{"Sports", "Casual", "Formal", "Outdoor", "Party"}, i),
				}
			},
			basePrice:     1500,
			priceVariance: 12000,
		},
		{
			category:      cats[9],
			brands:        []string{"Apple", "Samsung", "Fossil", "Casio", "Titan", "Rolex", "Omega", "Seiko", "Tag Heuer", "Garmin"},
			nameTemplates: []string{"Watch SE", "Galaxy Watch", "Gen 6", "G-Shock", "Bolt", "Submariner", "Speedmaster", "Presage", "Carrera", "Fenix"},
			specFn: func(brand string, i int) map[string]any {
				battery := "2-5 years"
				if brand == "Apple" || brand == "Samsung" {
					battery = fmt.Sprintf("%d hours", pick([]int{18, 40, 24, 36}, i))
				}
				compatibility := "Android & iOS"
				if brand == "Apple" {
					compatibility = "iOS"
				}
				return map[string]any{
					"Display Type":     pick([]string{"AMOLED", "LCD", "Analog", "Digital", "Hybrid"}, i),
					"Case Size":        fmt.Sprintf("%dmm", pick([]int{40, 42, 44, 46, 38}, i)),
					"Case Material":    pick([]string{"Stainless Steel", "Titanium", "Aluminum", "Ceramic", "Resin"}, i),
					"Band Material":    pick([]string{"Silicone", "Leather", "Metal", "Nylon", "Rubber"}, i),
					"Water Resistance": fmt.Sprintf("%dm", pick([]int{50, 100, 200, 30, 50}, i)),
					"Battery Life":     battery,
					"Compatibility":    compatibility,
					"Warranty":         fmt.Sprintf("%d Year", pick([]int{1, 2, 5, 2}, i)),
				}
			},
			basePrice:     2000,
			priceVariance: 50000,
		},
		{
			category:      cats[10],
			brands:        []string{"Samsung", "LG", "Whirlpool", "Haier", "Bosch", "Philips", "Panasonic", "Dyson", "IFB"},
			nameTemplates: []string{"Frost Free", "Front Load", "Split AC", "Solo", "Cyclone", "Smart", "Pro", "Ultra", "Max", "Premium"},
			specFn: func(brand string, i int) map[string]any {
				smart := "None"
				if i%2 == 0 {
					smart = "WiFi, App Control"
				}
				return map[string]any{
					"Type":              pick([]string{"Refrigerator", "Washing Machine", "Air Conditioner", "Microwave", "Vacuum"}, i),
					"Energy Rating":     fmt.Sprintf("%d Star", pick([]int{5, 4, 5, 3, 4}, i)),
					"Power Consumption": fmt.Sprintf("%dW", pick([]int{150, 500, 1200, 800, 1400}, i)),
					"Technology":        pick([]string{"Inverter", "Direct Drive", "Digital Inverter", "Convection", "Cyclonic"}, i),
					"Color":             pick([]string{"Silver", "White", "Black", "Grey", "Red"}, i),
					"Smart Features":    smart,
					"Warranty":          fmt.Sprintf("%d Years", pick([]int{2, 10, 5, 1, 2}, i)),
				}
			},
			basePrice:     8000,
			priceVariance: 60000,
		},
		{
			category:      cats[11],
			brands:        []string{"Penguin", "HarperCollins", "Random House", "Simon & Schuster", "Macmillan", "Scholastic"},
			nameTemplates: []string{"The Art of", "Journey to", "Secrets of", "Understanding", "Mastering", "Guide to", "History of", "Future of", "Essential", "Complete"},
			specFn: func(brand string, i int) map[string]any {
				return map[string]any{
					"Format":           pick([]string{"Paperback", "Hardcover", "Kindle", "Audiobook"}, i),
					"Pages":            fmt.Sprintf("%d", 200+(i%10)*50),
					"Language":         pick([]string{"English", "Hindi", "English", "English", "Hindi"}, i),
					"Publisher":        brand,
					"Genre":            pick([]string{"Fiction", "Self-Help", "Business", "Science", "History", "Biography"}, i),
					"Edition":          fmt.Sprintf("%d Edition", 1+(i%3)),
					"Publication Year": fmt.Sprintf("%d", 2020+(i%5)),
				}
			},
			basePrice:     200,
			priceVariance: 2000,
		},
		{
			category:      cats[12],
			brands:        []string{"Nike", "Adidas", "Puma", "Under Armour", "Reebok", "Decathlon", "Yonex", "Wilson"},
			nameTemplates: []string{"Pro Series", "Elite", "Competition", "Training", "Performance", "Champion", "Victory", "Power", "Speed", "Flex"},
			specFn: func(brand string, i int) map[string]any {
				return map[string]any{
					"Type":        pick([]string{"Dumbbell", "Yoga Mat", "Treadmill", "Cricket Bat", "Tennis Racket", "Football"}, i),
					"Material":    pick([]string{"Cast Iron", "NBR Foam", "Steel", "English Willow", "Graphite", "PU Leather"}, i),
					"Usage":       pick([]string{"Gym", "Home", "Outdoor", "Indoor"}, i),
					"Skill Level": pick([]string{"Beginner", "Intermediate", "Professional"}, i),
					"Gender":      pick([]string{"Unisex", "Men", "Women", "Unisex"}, i),
					"Includes":    pick([]string{"Carrying Case", "Strap", "None", "Cover", "Grip Tape"}, i),
				}
			},
			basePrice:     500,
			priceVariance: 50000,
		},
		{
			category:      cats[13],
			brands:        []string{"LEGO", "Hasbro", "Mattel", "Nintendo", "PlayStation", "Xbox", "Hot Wheels", "Nerf"},
			nameTemplates: []string{"Building Set", "Action Hero", "Racing", "Adventure", "Creative", "Classic", "Pro", "Ultimate", "Super", "Mega"},
			specFn: func(brand string, i int) map[string]any {
				pieces := "N/A"
				if brand == "LEGO" {
					pieces = fmt.Sprintf("%d", 100+(i%10)*50)
				}
				battery := "No"
				if i%2 == 0 {
					battery = "Yes (Included)"
				}
				return map[string]any{
					"Type":              pick([]string{"Building Blocks", "Action Figure", "Board Game", "Video Game", "Remote Control"}, i),
					"Age Group":         pick([]string{"3+", "6+", "8+", "10+", "12+", "16+"}, i),
					"Pieces":            pieces,
					"Players":           pick([]string{"1", "1-4", "2-6", "1-2", "1"}, i),
					"Battery Required":  battery,
					"Educational":       i%3 == 0,
					"Skill Development": pick([]string{"Motor Skills", "Creativity", "Strategy", "Hand-Eye Coordination", "Problem Solving"}, i),
					"Safety":            "BIS Certified, Non-Toxic",
				}
			},
			basePrice:     300,
			priceVariance: 8000,
		},
		{
			category:      cats[14],
			brands:        []string{"L'Oreal", "Maybelline", "MAC", "Lakme", "Nivea", "The Body Shop", "Neutrogena", "Clinique"},
			nameTemplates: []string{"Hydra", "Glow", "Matte", "Natural", "Essential", "Pure", "Radiant", "Youth", "Deep", "Ultra"},
			specFn: func(brand string, i int) map[string]any {
				spf := "None"
				if i%3 == 0 {
					spf = "SPF 30"
				}
				return map[string]any{
					"Type":            pick([]string{"Moisturizer", "Foundation", "Shampoo", "Perfume", "Face Wash", "Serum", "Lipstick"}, i),
					"Skin Type":       pick([]string{"All Skin", "Oily", "Dry", "Combination", "Sensitive"}, i),
					"Key Ingredients": pick([]string{"Vitamin C", "Hyaluronic Acid", "Retinol", "Niacinamide", "Aloe Vera"}, i),
					"Benefits":        pick([]string{"Hydration", "Anti-Aging", "Brightening", "Cleansing", "Moisturizing"}, i),
					"SPF":             spf,
					"Paraben Free":    true,
					"Cruelty Free":    i%2 == 0,
					"Shelf Life":      "24 months",
				}
			},
			basePrice:     200,
			priceVariance: 3000,
		},
	}
}

func generateAll(seed int64) []Product {
	rng := rand.New(rand.NewSource(seed))
	var all []Product
	for _, spec := range generatorSpecs() {
		all = append(all, generate(spec, rng)...)
	}
	return all
}
