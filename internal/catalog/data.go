// SPDX-License-Identifier: MIT
package catalog

var lightingModes = Detail{Feature: "Lighting Modes", Value: "Dusk to Dawn, Motion Sensor, Continuous"}

// Default returns the built-in catalog. Each call returns a fresh copy.
func Default() *Catalog {
	return &Catalog{
		Products: []Product{
			{
				ID:          "hs-60",
				Name:        "60W All-in-One Solar Street Light",
				Image:       "/images/hs-60.png",
				BackImage:   "/images/hs-60-back.png",
				Description: "A perfect blend of performance and efficiency, this 60W all-in-one solar street light is ideal for medium-sized outdoor spaces. It features an integrated solar panel, high-lumen LED light, durable lithium battery, and motion sensor in a compact unit. The included remote control allows easy adjustment of brightness levels and lighting modes.",
				Specs:       []string{"96 LED OSRAM", "18Ah LiFePO4 Battery", "18W/6V Mono Panel", "IP65 Weatherproof"},
				Details: []Detail{
					{Feature: "LED Power", Value: "18W High-Efficiency LED Chip"},
					{Feature: "Battery", Value: "18Ah LiFePO4 3.2V - Long-lasting and Safe"},
					{Feature: "LED Chip", Value: "96 LED OSRAM - Superior Lumen Output"},
					{Feature: "Material", Value: "Durable Aluminium Body"},
					{Feature: "Solar Panel", Value: "18W/6V (Mono) - High Conversion Efficiency"},
					{Feature: "Charging Time", Value: "6-8 Hours"},
					{Feature: "Working Hours", Value: "14-15 Hours"},
					{Feature: "Waterproof Rating", Value: "IP65"},
					lightingModes,
				},
			},
			{
				ID:          "hs-90",
				Name:        "90W All-in-One Solar Street Light",
				Image:       "/images/hs-90.png",
				BackImage:   "/images/hs-90-back.png",
				Description: "Designed for high-efficiency outdoor lighting, this 90W all-in-one solar street light combines a powerful LED lamp, integrated solar panel, and motion sensor in a sleek, weatherproof unit. Ideal for streets, parks, campuses, and industrial areas.",
				Specs:       []string{"144 LED OSRAM", "24Ah LiFePO4 Battery", "27W/6V Mono Panel", "Motion Sensor"},
				Details: []Detail{
					{Feature: "LED Power", Value: "24W High-Efficiency LED Chip"},
					{Feature: "Battery", Value: "24Ah LiFePO4 3.2V"},
					{Feature: "LED Chip", Value: "144 LED OSRAM - High Lumen & Uniform Lighting"},
					{Feature: "Material", Value: "Durable Aluminium Body"},
					{Feature: "Solar Panel", Value: "27W/6V (Mono)"},
					{Feature: "Charging Time", Value: "6-8 Hours"},
					{Feature: "Working Hours", Value: "14-15 Hours"},
					{Feature: "Waterproof Rating", Value: "IP65"},
					lightingModes,
				},
			},
			{
				ID:          "hs-120",
				Name:        "120W All-in-One Solar Street Light",
				Image:       "/images/hs-120.png",
				BackImage:   "/images/hs-120-back.png",
				Description: "The 120W all-in-one solar street light is designed for high-intensity illumination in large outdoor areas like highways and parking lots. Features a powerful LED, efficient monocrystalline panel, and smart motion sensor.",
				Specs:       []string{"192 LED OSRAM", "36Ah LiFePO4 Battery", "36W/6V Mono Panel", "Extended Capacity"},
				Details: []Detail{
					{Feature: "LED Power", Value: "30W High-Efficiency LED Chip"},
					{Feature: "Battery", Value: "36Ah LiFePO4 3.2V - Extended Power"},
					{Feature: "LED Chip", Value: "192 LED OSRAM - High Lumen Output"},
					{Feature: "Material", Value: "Durable Aluminium Body"},
					{Feature: "Solar Panel", Value: "36W/6V Monocrystalline"},
					{Feature: "Charging Time", Value: "6-8 Hours"},
					{Feature: "Working Hours", Value: "Up to 14-15 Hours"},
					{Feature: "Waterproof Rating", Value: "IP65"},
					lightingModes,
				},
			},
			{
				ID:          "hs-180",
				Name:        "180W All-in-One Solar Street Light",
				Image:       "/images/hs-180.png",
				BackImage:   "/images/hs-180-back.png",
				Description: "Provides powerful illumination for highways, industrial areas, and large public spaces. Features a high-efficiency solar panel, ultra-bright LED, and smart controller in a compact design.",
				Specs:       []string{"288 LED OSRAM", "48Ah LiFePO4 Battery", "50W/6V Mono Panel", "Highway Grade"},
				Details: []Detail{
					{Feature: "LED Power", Value: "36W High-Efficiency LED Chip"},
					{Feature: "Battery", Value: "48Ah LiFePO4 3.2V"},
					{Feature: "LED Chip", Value: "288 LED OSRAM - Uniform Lighting"},
					{Feature: "Material", Value: "Durable Aluminium Body"},
					{Feature: "Solar Panel", Value: "50W/6V Monocrystalline"},
					{Feature: "Charging Time", Value: "6-8 Hours"},
					{Feature: "Working Hours", Value: "Up to 14-15 Hours"},
					{Feature: "Waterproof Rating", Value: "IP65"},
					lightingModes,
				},
			},
			{
				ID:          "hs-240",
				Name:        "240W All-in-One Solar Street Light",
				Image:       "/images/hs-240.png",
				BackImage:   "/images/hs-240-back.png",
				Description: "Our maximum brightness model, offering coverage for airports and large highways. It features 384 OSRAM LEDs and a massive 52Ah LiFePO4 battery for sustained performance.",
				Specs:       []string{"384 LED OSRAM", "52Ah LiFePO4 Battery", "58W/6V Mono Panel", "Airport Ready"},
				Details: []Detail{
					{Feature: "LED Power", Value: "42W High-Efficiency LED Chip"},
					{Feature: "Battery", Value: "52Ah LiFePO4 3.2V - Maximum Capacity"},
					{Feature: "LED Chip", Value: "384 LED OSRAM - Ultra High Lumen"},
					{Feature: "Material", Value: "Durable Aluminium Body"},
					{Feature: "Solar Panel", Value: "58W/6V Monocrystalline"},
					{Feature: "Charging Time", Value: "6-8 Hours"},
					{Feature: "Working Hours", Value: "Up to 15-16 Hours"},
					{Feature: "Waterproof Rating", Value: "IP65"},
					lightingModes,
				},
			},
		},
		Features: []Feature{
			{ID: "osram", Title: "OSRAM LED Tech", Description: "High-efficacy German LED chips for superior brightness and longevity.", Icon: "sun"},
			{ID: "battery", Title: "LiFePO4 Battery", Description: "Next-gen Lithium Ferro Phosphate battery with 3000+ cycle life.", Icon: "battery"},
			{ID: "motion", Title: "Motion Sensor", Description: "Smart PIR sensors dim lights to 30% when no activity is detected.", Icon: "wifi"},
			{ID: "savings", Title: "Zero Electricity", Description: "100% off-grid performance with zero recurring energy costs.", Icon: "zap"},
			{ID: "waterproof", Title: "IP65 Weatherproof", Description: "Built to withstand heavy Indian monsoons and dust storms.", Icon: "cloud-rain"},
			{ID: "longevity", Title: "Long Life", Description: "Engineered for over 50,000 hours of maintenance-free operation.", Icon: "award"},
		},
		Applications: []Application{
			{ID: "highway", Title: "Streets & Highways", Icon: "navigation"},
			{ID: "park", Title: "Parks & Gardens", Icon: "trees"},
			{ID: "industrial", Title: "Industrial Areas", Icon: "building-2"},
			{ID: "rural", Title: "Rural Roads", Icon: "map-pin"},
			{ID: "campus", Title: "Campuses & Parking", Icon: "school"},
		},
		Contact: ContactInfo{
			Phone:   "+91 8094000802",
			Email:   "solarsystems0751@gmail.com",
			Address: "Rajasthan, India",
		},
	}
}
