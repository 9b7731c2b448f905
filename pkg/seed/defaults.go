package seed

import "github.com/yehezkiel0/staycation-seedfix/pkg/config"

// DefaultProperties lists the properties seeded before slugs were added,
// in seed file order.
var DefaultProperties = []config.SlugEntry{
	{Title: "Tropical Beach Villa Bali", Slug: "tropical-beach-villa-bali"},
	{Title: "Beachside Cottage Lombok", Slug: "beachside-cottage-lombok"},
	{Title: "Highland Retreat Bandung", Slug: "highland-retreat-bandung"},
	{Title: "Pine Forest Cabin Bogor", Slug: "pine-forest-cabin-bogor"},
	{Title: "Modern Loft Jakarta", Slug: "modern-loft-jakarta"},
	{Title: "Executive Suite Surabaya", Slug: "executive-suite-surabaya"},
	{Title: "Luxury Villa Ubud", Slug: "luxury-villa-ubud"},
	{Title: "Modern Villa Canggu", Slug: "modern-villa-canggu"},
	{Title: "Ocean View Resort Bintan", Slug: "ocean-view-resort-bintan"},
	{Title: "Alpine Cabin Dieng", Slug: "alpine-cabin-dieng"},
	{Title: "Premium Suite Medan", Slug: "premium-suite-medan"},
	{Title: "Traditional Villa Yogyakarta", Slug: "traditional-villa-yogyakarta"},
	{Title: "Surfing Lodge Mentawai", Slug: "surfing-lodge-mentawai"},
	{Title: "Highland Resort Toba", Slug: "highland-resort-toba"},
}
