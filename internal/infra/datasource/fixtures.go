package datasource

import "stayfinder/internal/usecase/queries"

// SampleProperties seeds the property store with the fixed listing table.
func SampleProperties() []queries.PropertyView {
	return []queries.PropertyView{
		{
			ID:   "1",
			Name: "Villa Ocean Breeze",
			Address: queries.AddressView{
				State:   "Seminyak",
				City:    "Bali",
				Country: "Indonesia",
			},
			Rating:   4.89,
			Category: []string{"Luxury Villa", "Pool", "Free Parking"},
			Price:    3200,
			Offers: queries.OffersView{
				Bed:       "3",
				Shower:    "3",
				Occupants: "4-6",
			},
			Image:       "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800",
			Discount:    "",
			Description: "Wake up to the sound of waves in this beachfront villa with a private pool and daily housekeeping.",
			Amenities:   []string{"Free WiFi", "Private Pool", "Air Conditioning", "Kitchen", "Beach Access"},
		},
		{
			ID:   "2",
			Name: "Mountain Escape Chalet",
			Address: queries.AddressView{
				State:   "Colorado",
				City:    "Aspen",
				Country: "USA",
			},
			Rating:   4.70,
			Category: []string{"Mountain View", "Fireplace", "Self Checkin"},
			Price:    1800,
			Offers: queries.OffersView{
				Bed:       "4",
				Shower:    "2",
				Occupants: "5-7",
			},
			Image:       "https://images.unsplash.com/photo-1518780664697-55e3ad937233?w=800",
			Discount:    "30",
			Description: "A cozy chalet at the foot of the slopes, with a wood-burning fireplace and a hot tub on the deck.",
			Amenities:   []string{"Free WiFi", "Fireplace", "Hot Tub", "Ski-in/Ski-out", "Parking"},
		},
		{
			ID:   "3",
			Name: "Cozy Desert Retreat",
			Address: queries.AddressView{
				State:   "California",
				City:    "Palm Springs",
				Country: "USA",
			},
			Rating:   4.92,
			Category: []string{"Desert View", "Pet Friendly", "Pool"},
			Price:    1500,
			Offers: queries.OffersView{
				Bed:       "2",
				Shower:    "1",
				Occupants: "2-3",
			},
			Image:       "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=800",
			Discount:    "",
			Description: "Mid-century home with mountain views, a saltwater pool and a fire pit for cool desert evenings.",
			Amenities:   []string{"Free WiFi", "Pool", "Air Conditioning", "Pet Friendly", "Parking"},
		},
		{
			ID:   "4",
			Name: "City Lights Penthouse",
			Address: queries.AddressView{
				State:   "New York",
				City:    "New York",
				Country: "USA",
			},
			Rating:   4.35,
			Category: []string{"City View", "Near Subway", "Luxury"},
			Price:    2400,
			Offers: queries.OffersView{
				Bed:       "2",
				Shower:    "2",
				Occupants: "2-4",
			},
			Image:       "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800",
			Discount:    "10",
			Description: "Top-floor penthouse with floor-to-ceiling windows and a private terrace over the skyline.",
			Amenities:   []string{"Free WiFi", "Elevator", "Gym", "Doorman", "Washer/Dryer"},
		},
	}
}

// SampleReviews seeds the review store. The mock source returns this same
// set for every property.
func SampleReviews() []queries.ReviewView {
	return []queries.ReviewView{
		{
			ID:      "1",
			Name:    "Sarah Johnson",
			Avatar:  "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
			Rating:  5,
			Comment: "Absolutely amazing property! The location was perfect and the amenities were top-notch. Highly recommend!",
			Date:    "2024-01-15",
		},
		{
			ID:      "2",
			Name:    "Michael Chen",
			Avatar:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			Rating:  4,
			Comment: "Great stay overall. The property was clean and well-maintained. The only minor issue was the WiFi speed.",
			Date:    "2024-01-10",
		},
		{
			ID:      "3",
			Name:    "Emily Rodriguez",
			Avatar:  "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
			Rating:  5,
			Comment: "Perfect vacation spot! The views were breathtaking and the host was very responsive. Will definitely return!",
			Date:    "2024-01-05",
		},
		{
			ID:      "4",
			Name:    "David Thompson",
			Avatar:  "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			Rating:  4,
			Comment: "Excellent property with great amenities. The location was convenient and the neighborhood was quiet.",
			Date:    "2023-12-28",
		},
		{
			ID:      "5",
			Name:    "Lisa Wang",
			Avatar:  "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=150&h=150&fit=crop&crop=face",
			Rating:  5,
			Comment: "This place exceeded all our expectations! The design was beautiful and everything was immaculate.",
			Date:    "2023-12-20",
		},
		{
			ID:      "6",
			Name:    "James Wilson",
			Avatar:  "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face",
			Rating:  4,
			Comment: "Very comfortable stay. The property had everything we needed and the check-in process was smooth.",
			Date:    "2023-12-15",
		},
	}
}
