// Package data holds the starter catalog loaded into an empty database at
// boot when seeding is enabled.
package data

import (
	"time"

	"github.com/whiskeynotes/go-whiskey-api/pkg/models"
)

func intPtr(v int) *int { return &v }

// SampleWhiskeys returns the starter catalog spanning the major regions,
// types, and flavor profiles. Creation timestamps are staggered a day apart
// so the "newest" sort has a stable, meaningful order.
func SampleWhiskeys() []models.Whiskey {
	base := time.Now().UnixMilli()
	day := int64(24 * time.Hour / time.Millisecond)
	whiskeys := []models.Whiskey{
		{
			ID:          "glenfiddich-12",
			Name:        "Glenfiddich 12 Year Old",
			Distillery:  "Glenfiddich",
			Type:        "Single Malt",
			Region:      "Speyside",
			Age:         intPtr(12),
			Abv:         40,
			Description: "A classic Speyside single malt with distinctive fresh pear and subtle oak flavors. Matured in American bourbon and Spanish sherry oak casks for at least 12 years, this whisky is mellow and smooth with characteristic sweet, fruity notes.",
			Attributes:  []string{"Fruity", "Smooth", "Sweet", "Oak"},
		},
		{
			ID:          "lagavulin-16",
			Name:        "Lagavulin 16 Year Old",
			Distillery:  "Lagavulin",
			Type:        "Single Malt",
			Region:      "Islay",
			Age:         intPtr(16),
			Abv:         43,
			Description: "An intensely flavored, peat-smoke single malt with a long finish. Dried fruit and distinctive earthy peat smoke notes combine with maritime flavors of seaweed and iodine. One of the most iconic Islay malts.",
			Attributes:  []string{"Peaty", "Smoky", "Maritime", "Complex", "Full-bodied"},
		},
		{
			ID:          "macallan-18-sherry",
			Name:        "The Macallan 18 Year Old Sherry Oak",
			Distillery:  "The Macallan",
			Type:        "Single Malt",
			Region:      "Speyside",
			Age:         intPtr(18),
			Abv:         43,
			Description: "Matured exclusively in hand-picked sherry seasoned oak casks from Jerez for richness and complexity. Features dried fruits, ginger, and an exceptionally smooth palate with a long, warming finish.",
			Attributes:  []string{"Rich", "Sherry", "Dried Fruit", "Spicy", "Luxurious"},
		},
		{
			ID:          "glenlivet-12",
			Name:        "The Glenlivet 12 Year Old",
			Distillery:  "The Glenlivet",
			Type:        "Single Malt",
			Region:      "Speyside",
			Age:         intPtr(12),
			Abv:         40,
			Description: "The classic Speyside style of The Glenlivet distillery. Delicately balanced with notes of honey and summer fruits, finishing with a hint of almond. An excellent introduction to single malt whisky.",
			Attributes:  []string{"Fruity", "Floral", "Smooth", "Balanced", "Honeyed"},
		},
		{
			ID:          "ardbeg-10",
			Name:        "Ardbeg 10 Year Old",
			Distillery:  "Ardbeg",
			Type:        "Single Malt",
			Region:      "Islay",
			Age:         intPtr(10),
			Abv:         46,
			Description: "The peatiest, smokiest and most complex single malt of them all. Yet it does not flaunt the peat, rather it gives way to the natural sweetness of the malt to produce a whisky of perfect balance.",
			Attributes:  []string{"Peaty", "Smoky", "Complex", "Citrus", "Bold"},
		},
		{
			ID:          "highland-park-12",
			Name:        "Highland Park 12 Year Old",
			Distillery:  "Highland Park",
			Type:        "Single Malt",
			Region:      "Highland",
			Age:         intPtr(12),
			Abv:         40,
			Description: "A harmonious balance of sweet and smoky, this Orkney single malt displays aromatic smokiness, honey sweetness and floral heather notes. Matured in sherry seasoned American oak casks.",
			Attributes:  []string{"Balanced", "Heather", "Honey", "Smoky", "Complex"},
		},
		{
			ID:          "talisker-10",
			Name:        "Talisker 10 Year Old",
			Distillery:  "Talisker",
			Type:        "Single Malt",
			Region:      "Island",
			Age:         intPtr(10),
			Abv:         45.8,
			Description: "Made by the sea on the shores of the Isle of Skye. A powerful and intense single malt with a distinctive peppery character, smoke, and a sweet finish with briny notes.",
			Attributes:  []string{"Maritime", "Peppery", "Smoky", "Bold", "Spicy"},
		},
		{
			ID:          "monkey-shoulder",
			Name:        "Monkey Shoulder",
			Distillery:  "William Grant & Sons",
			Type:        "Blended Malt",
			Region:      "Speyside",
			Abv:         40,
			Description: "A smooth and easy-drinking blend of three Speyside single malts. With notes of vanilla, honey, and orange, it's perfect for cocktails or sipping neat. Named after a condition that maltmen used to get from turning the malt by hand.",
			Attributes:  []string{"Smooth", "Vanilla", "Honey", "Versatile", "Citrus"},
		},
		{
			ID:          "oban-14",
			Name:        "Oban 14 Year Old",
			Distillery:  "Oban",
			Type:        "Single Malt",
			Region:      "Highland",
			Age:         intPtr(14),
			Abv:         43,
			Description: "A West Highland malt with distinctive smoky and fruity characteristics. Smooth and rich, with hints of salt, citrus and peat smoke, balanced with a touch of sweetness.",
			Attributes:  []string{"Smoky", "Fruity", "Maritime", "Balanced", "Elegant"},
		},
		{
			ID:          "redbreast-12",
			Name:        "Redbreast 12 Year Old",
			Distillery:  "Midleton",
			Type:        "Single Pot Still",
			Region:      "Irish",
			Age:         intPtr(12),
			Abv:         40,
			Description: "A wonderfully complex and smooth Irish whiskey with a rich, spicy and fruity character. Made from a mash of malted and unmalted barley, triple distilled, and matured in sherry and bourbon casks.",
			Attributes:  []string{"Spicy", "Fruity", "Rich", "Smooth", "Sherry"},
		},
		{
			ID:          "yamazaki-12",
			Name:        "Yamazaki 12 Year Old",
			Distillery:  "Yamazaki",
			Type:        "Single Malt",
			Region:      "Japanese",
			Age:         intPtr(12),
			Abv:         43,
			Description: "Japan's first and oldest malt whisky distillery produces this elegant and complex spirit. Notes of peach, pineapple, grapefruit, clove, candied orange and vanilla, with a hint of Mizunara oak.",
			Attributes:  []string{"Fruity", "Complex", "Elegant", "Mizunara", "Balanced"},
		},
		{
			ID:          "buffalo-trace",
			Name:        "Buffalo Trace Bourbon",
			Distillery:  "Buffalo Trace",
			Type:        "Bourbon",
			Region:      "American",
			Abv:         45,
			Description: "A rich and complex Kentucky straight bourbon with notes of vanilla, toffee and candied fruit. Aged in new oak barrels for at least 8 years, it's remarkably smooth with a long, satisfying finish.",
			Attributes:  []string{"Vanilla", "Caramel", "Smooth", "Sweet", "Oak"},
		},
	}
	for i := range whiskeys {
		whiskeys[i].CreatedAt = base - int64(len(whiskeys)-i)*day
	}
	return whiskeys
}
