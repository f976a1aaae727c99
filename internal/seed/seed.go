// Package seed holds the catalog the store boots with.
package seed

import "github.com/balapuneethsujay07/zenkira-store/internal/domain"

// Products returns a fresh copy of the seed catalog. Prices are minor
// currency units.
func Products() []domain.Product {
	products := []domain.Product{
		{
			ID:            "zk-001",
			Name:          "Mitsuri Kanroji 1/7 Scale Figure",
			Series:        "Demon Slayer",
			Category:      domain.CategoryFigures,
			Price:         14599,
			OriginalPrice: 17999,
			IsFeatured:    true,
			Stock:         5,
			Description:   "1/7 scale Mitsuri figure capturing the Love Hashira mid-combat, with a semi-rigid polymer whip blade and translucent gradient hair.",
			Specs: &domain.ProductSpecs{
				Material:   "High-Grade PVC/ABS",
				Dimensions: "24cm (Height)",
				Weight:     "0.8kg",
				Origin:     "Aniplex Archival",
				Rarity:     domain.RarityRare,
			},
		},
		{
			ID:            "zk-002",
			Name:          "Luffy Gear 5 Tech-Hoodie",
			Series:        "One Piece",
			Category:      domain.CategoryApparel,
			Price:         5499,
			OriginalPrice: 7500,
			Stock:         50,
			Description:   "480GSM heavy-weight tech hoodie with water-repellent outer layers and a 3D puff print of the Drums of Liberation heartbeat pattern.",
			Specs: &domain.ProductSpecs{
				Material:   "480GSM French Terry",
				Dimensions: "Oversized Fit (S-XXL)",
				Weight:     "1.2kg",
				Origin:     "Grand Line Gear",
				Rarity:     domain.RarityEpic,
			},
		},
		{
			ID:            "zk-003",
			Name:          "Sun God Nika Resin Statue",
			Series:        "One Piece",
			Category:      domain.CategoryFigures,
			Price:         25599,
			OriginalPrice: 32000,
			IsFeatured:    true,
			Stock:         2,
			Description:   "Polystone resin statue with internal LED circuitry for the lightning effects, hand-painted weathering and a magnetic activation switch.",
			Specs: &domain.ProductSpecs{
				Material:   "Polystone / Transparent Resin",
				Dimensions: "40cm x 35cm x 35cm",
				Weight:     "4.5kg",
				Origin:     "Kaidou-Kuni Foundry",
				Rarity:     domain.RarityZenith,
			},
		},
		{
			ID:            "zk-004",
			Name:          "Rengoku Kyojuro Flame Figure",
			Series:        "Demon Slayer",
			Category:      domain.CategoryFigures,
			Price:         19599,
			OriginalPrice: 22000,
			IsFeatured:    true,
			Stock:         5,
			Description:   "Transparent flame effect parts with internal refraction, on a base of scorched railroad tracks from the Mugen Train.",
			Specs: &domain.ProductSpecs{
				Material:   "PVC/Transparent ABS",
				Dimensions: "18cm",
				Weight:     "0.5kg",
				Origin:     "Mugen District",
				Rarity:     domain.RarityRare,
			},
		},
		{
			ID:            "zk-005",
			Name:          "Tengen Uzui Dual Cleavers",
			Series:        "Demon Slayer",
			Category:      domain.CategoryCollectibles,
			Price:         22599,
			OriginalPrice: 26000,
			IsFeatured:    true,
			Stock:         5,
			Description:   "1:1 museum-grade replica of the Sound Hashira's dual cleavers with a steel core and gold-leaf engraved kanji. Display only.",
			Specs: &domain.ProductSpecs{
				Material:   "Metal Core / High-Density Resin",
				Dimensions: "85cm per blade",
				Weight:     "3.2kg (Total)",
				Origin:     "Entertainment District",
				Rarity:     domain.RarityEpic,
			},
		},
		{
			ID:            "zk-006",
			Name:          "Roronoa Zoro's Black Enma",
			Series:        "One Piece",
			Category:      domain.CategoryCollectibles,
			Price:         23699,
			OriginalPrice: 28000,
			IsFeatured:    true,
			Stock:         10,
		},
		{
			ID:            "zk-007",
			Name:          "Bandai Thousand Sunny Model Kit",
			Series:        "One Piece",
			Category:      domain.CategoryFigures,
			Price:         18200,
			OriginalPrice: 20000,
			Stock:         18,
		},
		{
			ID:            "zk-008",
			Name:          "Akatsuki Village Cloud Hoodie",
			Series:        "Naruto",
			Category:      domain.CategoryApparel,
			Price:         3399,
			OriginalPrice: 4000,
			Stock:         24,
		},
		{
			ID:            "zk-009",
			Name:          "Tanjiro: Hinokami Kagura Hoodie",
			Series:        "Demon Slayer",
			Category:      domain.CategoryApparel,
			Price:         3499,
			OriginalPrice: 4000,
			Stock:         23,
		},
		{
			ID:            "zk-010",
			Name:          "Goku Spirit Bomb Figure",
			Series:        "Dragon Ball Z",
			Category:      domain.CategoryFigures,
			Price:         46599,
			OriginalPrice: 50500,
			Stock:         30,
		},
		{
			ID:            "zk-011",
			Name:          "Goku (The Flames) Wall Art",
			Series:        "Dragon Ball Z",
			Category:      domain.CategoryCollectibles,
			Price:         69599,
			OriginalPrice: 70500,
			Stock:         15,
		},
		{
			ID:            "zk-012",
			Name:          "Naruto Sage Mode Savior Statue",
			Series:        "Naruto",
			Category:      domain.CategoryFigures,
			Price:         45899,
			OriginalPrice: 50000,
			IsFeatured:    true,
			Stock:         9,
		},
	}

	out := make([]domain.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
