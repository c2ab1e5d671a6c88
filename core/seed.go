package core

// DefaultTribes returns the communities an empty archive starts with.
// Each call returns a fresh slice.
func DefaultTribes() []Tribe {
	return []Tribe{
		{
			ID:               "kalenjin",
			Name:             "Kalenjin",
			AlternativeNames: "Kalenjin",
			Region:           "Rift Valley",
			Description:      "A family of Southern Nilotic tribes known for athletic prowess and rich oral traditions.",
			ContactCommunity: "Kalenjin Council of Elders",
		},
		{
			ID:               "kikuyu",
			Name:             "Kikuyu",
			AlternativeNames: "Agĩkũyũ",
			Region:           "Central Kenya",
			Description:      "One of the largest Bantu communities with rich agricultural traditions and storytelling.",
			ContactCommunity: "Kikuyu Council of Elders",
		},
		{
			ID:               "luo",
			Name:             "Luo",
			AlternativeNames: "Jaluo",
			Region:           "Nyanza",
			Description:      "A Nilotic ethnic group known for fishing traditions, vibrant music, and rich oral history.",
			ContactCommunity: "Luo Council of Elders",
		},
		{
			ID:               "luhya",
			Name:             "Luhya",
			AlternativeNames: "Abaluhya",
			Region:           "Western Kenya",
			Description:      "A Bantu ethnic group comprising many sub-communities with diverse cultural practices.",
			ContactCommunity: "Luhya Council of Elders",
		},
		{
			ID:               "kamba",
			Name:             "Kamba",
			AlternativeNames: "Akamba",
			Region:           "Eastern Kenya",
			Description:      "A Bantu ethnic group known for wood carving, music, and rich storytelling traditions.",
			ContactCommunity: "Kamba Council of Elders",
		},
		{
			ID:               "maasai",
			Name:             "Maasai",
			AlternativeNames: "Ilmaasai",
			Region:           "Rift Valley",
			Description:      "A Nilotic ethnic group known for their distinctive culture, pastoral traditions, and beadwork.",
			ContactCommunity: "Maasai Council of Elders",
		},
		{
			ID:               "samburu",
			Name:             "Samburu",
			AlternativeNames: "Loikop, Kore",
			Region:           "Rift Valley",
			Description:      "A Nilotic ethnic group known for their distinctive culture, pastoral traditions, and colourful attire.",
			ContactCommunity: "Samburu Council of Elders",
		},
		{
			ID:               "meru",
			Name:             "Meru",
			AlternativeNames: "Ameru",
			Region:           "Central",
			Description:      "Bantu ethnic group that inhabit the Meru region of Kenya, on the fertile slopes of Mount Kenya.",
			ContactCommunity: "Njuri Ncheke",
		},
	}
}
