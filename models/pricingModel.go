package models

type Price struct {
	Monthly string `bson:"monthly" json:"monthly" validate:"required"`
	Yearly  string `bson:"yearly" json:"yearly" validate:"required"`
}

type PricingTier struct {
	Name         string   `bson:"name" json:"name" validate:"required"`
	Price        Price    `bson:"price" json:"price" validate:"required"`
	RegularPrice *Price   `bson:"regular_price,omitempty" json:"regularPrice"`
	Description  string   `bson:"description" json:"description"`
	Features     []string `bson:"features" json:"features"`
	Popular      bool     `bson:"popular" json:"popular"`
}

type Addon struct {
	ID    string `bson:"id" json:"id"`
	Title string `bson:"title" json:"title"`
	Price string `bson:"price" json:"price"`
}

type PricingData struct {
	PricingTiers []PricingTier `json:"pricingTiers"`
	Addons       []Addon       `json:"addons"`
}

// DefaultPricingTiers is the catalog the pricing flow is seeded with on
// startup. The admin settings form replaces it wholesale.
func DefaultPricingTiers() []PricingTier {
	return []PricingTier{
		{
			Name:         "Starter",
			Price:        Price{Monthly: "৳699", Yearly: "৳7,999"},
			RegularPrice: &Price{Monthly: "৳1500", Yearly: "৳18,000"},
			Description:  "ছোট ফার্মেসী এবং স্টার্টআপদের জন্য সেরা।",
			Features:     []string{"POS Billing", "Inventory Management", "Sales Reports", "1 User"},
			Popular:      true,
		},
		{
			Name:        "Professional",
			Price:       Price{Monthly: "৳1,999", Yearly: "৳19,999"},
			Description: "মাঝারি আকারের ফার্মেসী এবং ক্লিনিকের জন্য।",
			Features:    []string{"All Starter features", "Expiry Alerts", "5 Users", "Priority Support"},
		},
		{
			Name:        "Enterprise",
			Price:       Price{Monthly: "Custom", Yearly: "Custom"},
			Description: "বড় ফার্মেসী এবং ডিস্ট্রিবিউটরদের জন্য।",
			Features:    []string{"All Professional features", "Multi-branch Support", "Advanced Analytics", "Unlimited Users", "Dedicated Support"},
		},
	}
}

// DefaultAddons is the static hardware addon catalog. Addons are not editable
// through the admin flow.
func DefaultAddons() []Addon {
	return []Addon{
		{ID: "pos-printer", Title: "POS Printer", Price: "৳3,999"},
		{ID: "barcode-scanner", Title: "Barcode Scanner", Price: "৳1499"},
	}
}
