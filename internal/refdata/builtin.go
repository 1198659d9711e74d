package refdata

import "storefront/internal/model"

// Default returns the built-in reference dataset. Auckland and the upper
// North Island are serviced today; the remaining centres are listed as
// inactive so the selector can show them as coming soon.
func Default() *Set {
	return &Set{
		Locations:      builtinLocations(),
		CategoryStyles: builtinStyles(),
	}
}

func builtinLocations() []model.Location {
	return []model.Location{
		// Auckland Central
		{ID: "auckland-cbd", Name: "Auckland CBD", Region: "Auckland Central", Island: "North", Active: true},
		{ID: "ponsonby", Name: "Ponsonby", Region: "Auckland Central", Island: "North", Active: true},
		{ID: "parnell", Name: "Parnell", Region: "Auckland Central", Island: "North", Active: true},
		{ID: "newmarket", Name: "Newmarket", Region: "Auckland Central", Island: "North", Active: true},
		{ID: "mt-eden", Name: "Mt Eden", Region: "Auckland Central", Island: "North", Active: true},
		{ID: "epsom", Name: "Epsom", Region: "Auckland Central", Island: "North", Active: true},
		{ID: "remuera", Name: "Remuera", Region: "Auckland Central", Island: "North", Active: true},
		{ID: "grey-lynn", Name: "Grey Lynn", Region: "Auckland Central", Island: "North", Active: true},
		{ID: "freemans-bay", Name: "Freemans Bay", Region: "Auckland Central", Island: "North", Active: true},
		{ID: "grafton", Name: "Grafton", Region: "Auckland Central", Island: "North", Active: true},
		{ID: "mt-albert", Name: "Mt Albert", Region: "Auckland Central", Island: "North", Active: true},
		{ID: "sandringham", Name: "Sandringham", Region: "Auckland Central", Island: "North", Active: true},
		{ID: "kingsland", Name: "Kingsland", Region: "Auckland Central", Island: "North", Active: true},
		{ID: "morningside", Name: "Morningside", Region: "Auckland Central", Island: "North", Active: true},

		// North Shore
		{ID: "takapuna", Name: "Takapuna", Region: "North Shore", Island: "North", Active: true},
		{ID: "devonport", Name: "Devonport", Region: "North Shore", Island: "North", Active: true},
		{ID: "milford", Name: "Milford", Region: "North Shore", Island: "North", Active: true},
		{ID: "browns-bay", Name: "Browns Bay", Region: "North Shore", Island: "North", Active: true},
		{ID: "albany", Name: "Albany", Region: "North Shore", Island: "North", Active: true},
		{ID: "glenfield", Name: "Glenfield", Region: "North Shore", Island: "North", Active: true},
		{ID: "birkenhead", Name: "Birkenhead", Region: "North Shore", Island: "North", Active: true},
		{ID: "northcote", Name: "Northcote", Region: "North Shore", Island: "North", Active: true},
		{ID: "beach-haven", Name: "Beach Haven", Region: "North Shore", Island: "North", Active: true},
		{ID: "mairangi-bay", Name: "Mairangi Bay", Region: "North Shore", Island: "North", Active: true},
		{ID: "murrays-bay", Name: "Murrays Bay", Region: "North Shore", Island: "North", Active: true},
		{ID: "torbay", Name: "Torbay", Region: "North Shore", Island: "North", Active: true},
		{ID: "long-bay", Name: "Long Bay", Region: "North Shore", Island: "North", Active: true},
		{ID: "orewa", Name: "Orewa", Region: "North Shore", Island: "North", Active: true},
		{ID: "whangaparaoa", Name: "Whangaparaoa", Region: "North Shore", Island: "North", Active: true},

		// West Auckland
		{ID: "henderson", Name: "Henderson", Region: "West Auckland", Island: "North", Active: true},
		{ID: "new-lynn", Name: "New Lynn", Region: "West Auckland", Island: "North", Active: true},
		{ID: "glen-eden", Name: "Glen Eden", Region: "West Auckland", Island: "North", Active: true},
		{ID: "titirangi", Name: "Titirangi", Region: "West Auckland", Island: "North", Active: true},
		{ID: "te-atatu", Name: "Te Atatu", Region: "West Auckland", Island: "North", Active: true},
		{ID: "westgate", Name: "Westgate", Region: "West Auckland", Island: "North", Active: true},
		{ID: "massey", Name: "Massey", Region: "West Auckland", Island: "North", Active: true},
		{ID: "ranui", Name: "Ranui", Region: "West Auckland", Island: "North", Active: true},
		{ID: "swanson", Name: "Swanson", Region: "West Auckland", Island: "North", Active: true},
		{ID: "kumeu", Name: "Kumeu", Region: "West Auckland", Island: "North", Active: true},
		{ID: "huapai", Name: "Huapai", Region: "West Auckland", Island: "North", Active: true},
		{ID: "avondale", Name: "Avondale", Region: "West Auckland", Island: "North", Active: true},
		{ID: "blockhouse-bay", Name: "Blockhouse Bay", Region: "West Auckland", Island: "North", Active: true},

		// South Auckland
		{ID: "manukau", Name: "Manukau", Region: "South Auckland", Island: "North", Active: true},
		{ID: "manurewa", Name: "Manurewa", Region: "South Auckland", Island: "North", Active: true},
		{ID: "papakura", Name: "Papakura", Region: "South Auckland", Island: "North", Active: true},
		{ID: "takanini", Name: "Takanini", Region: "South Auckland", Island: "North", Active: true},
		{ID: "drury", Name: "Drury", Region: "South Auckland", Island: "North", Active: true},
		{ID: "papatoetoe", Name: "Papatoetoe", Region: "South Auckland", Island: "North", Active: true},
		{ID: "otahuhu", Name: "Otahuhu", Region: "South Auckland", Island: "North", Active: true},
		{ID: "mangere", Name: "Mangere", Region: "South Auckland", Island: "North", Active: true},
		{ID: "otara", Name: "Otara", Region: "South Auckland", Island: "North", Active: true},
		{ID: "flat-bush", Name: "Flat Bush", Region: "South Auckland", Island: "North", Active: true},
		{ID: "clendon-park", Name: "Clendon Park", Region: "South Auckland", Island: "North", Active: true},
		{ID: "wiri", Name: "Wiri", Region: "South Auckland", Island: "North", Active: true},
		{ID: "pukekohe", Name: "Pukekohe", Region: "South Auckland", Island: "North", Active: true},

		// East Auckland
		{ID: "howick", Name: "Howick", Region: "East Auckland", Island: "North", Active: true},
		{ID: "pakuranga", Name: "Pakuranga", Region: "East Auckland", Island: "North", Active: true},
		{ID: "botany", Name: "Botany", Region: "East Auckland", Island: "North", Active: true},
		{ID: "half-moon-bay", Name: "Half Moon Bay", Region: "East Auckland", Island: "North", Active: true},
		{ID: "bucklands-beach", Name: "Bucklands Beach", Region: "East Auckland", Island: "North", Active: true},
		{ID: "eastern-beach", Name: "Eastern Beach", Region: "East Auckland", Island: "North", Active: true},
		{ID: "cockle-bay", Name: "Cockle Bay", Region: "East Auckland", Island: "North", Active: true},
		{ID: "mellons-bay", Name: "Mellons Bay", Region: "East Auckland", Island: "North", Active: true},
		{ID: "dannemora", Name: "Dannemora", Region: "East Auckland", Island: "North", Active: true},
		{ID: "highland-park", Name: "Highland Park", Region: "East Auckland", Island: "North", Active: true},
		{ID: "beachlands", Name: "Beachlands", Region: "East Auckland", Island: "North", Active: true},
		{ID: "maraetai", Name: "Maraetai", Region: "East Auckland", Island: "North", Active: true},

		// Upper North Island centres
		{ID: "hamilton", Name: "Hamilton", Region: "Waikato", Island: "North", Active: true},
		{ID: "tauranga", Name: "Tauranga", Region: "Bay of Plenty", Island: "North", Active: true},

		// Coming soon
		{ID: "wellington", Name: "Wellington", Region: "Wellington", Island: "North", Active: false},
		{ID: "napier", Name: "Napier", Region: "Hawke's Bay", Island: "North", Active: false},
		{ID: "palmerston-north", Name: "Palmerston North", Region: "Manawatū", Island: "North", Active: false},
		{ID: "rotorua", Name: "Rotorua", Region: "Bay of Plenty", Island: "North", Active: false},
		{ID: "new-plymouth", Name: "New Plymouth", Region: "Taranaki", Island: "North", Active: false},
		{ID: "christchurch", Name: "Christchurch", Region: "Canterbury", Island: "South", Active: false},
		{ID: "dunedin", Name: "Dunedin", Region: "Otago", Island: "South", Active: false},
		{ID: "queenstown", Name: "Queenstown", Region: "Otago", Island: "South", Active: false},
		{ID: "nelson", Name: "Nelson", Region: "Nelson", Island: "South", Active: false},
		{ID: "invercargill", Name: "Invercargill", Region: "Southland", Island: "South", Active: false},
	}
}

func builtinStyles() map[string]CategoryStyle {
	return map[string]CategoryStyle{
		"Cleaning":                 {Icon: "sparkle", Color: "emerald", Gradient: "from-emerald-400 to-emerald-600"},
		"Lawn & Garden":            {Icon: "trees", Color: "green", Gradient: "from-green-400 to-green-600"},
		"Home Maintenance":         {Icon: "wrench", Color: "amber", Gradient: "from-amber-400 to-amber-600"},
		"Pest Control":             {Icon: "bug", Color: "red", Gradient: "from-red-400 to-red-600"},
		"Automotive & Transport":   {Icon: "car", Color: "red", Gradient: "from-red-400 to-red-600"},
		"Food & Hospitality":       {Icon: "chef-hat", Color: "orange", Gradient: "from-orange-400 to-orange-600"},
		"Healthcare & Wellness":    {Icon: "heart", Color: "pink", Gradient: "from-pink-400 to-pink-600"},
		"Home & Property Services": {Icon: "home", Color: "sky", Gradient: "from-sky-400 to-sky-600"},
		"Professional Services":    {Icon: "briefcase", Color: "blue", Gradient: "from-blue-400 to-blue-600"},
		"Technology & Digital":     {Icon: "monitor", Color: "purple", Gradient: "from-purple-400 to-purple-600"},
		"Construction & Trade":     {Icon: "hard-hat", Color: "slate", Gradient: "from-slate-500 to-slate-700"},
		"Real Estate & Property":   {Icon: "building", Color: "amber", Gradient: "from-amber-500 to-amber-700"},
		"Events & Entertainment":   {Icon: "party-popper", Color: "fuchsia", Gradient: "from-fuchsia-400 to-fuchsia-600"},
		"Education & Training":     {Icon: "graduation-cap", Color: "indigo", Gradient: "from-indigo-400 to-indigo-600"},
		"Logistics & Delivery":     {Icon: "truck", Color: "teal", Gradient: "from-teal-400 to-teal-600"},
		"Environment & Recycling":  {Icon: "recycle", Color: "green", Gradient: "from-green-500 to-green-700"},
	}
}
