package board

import "github.com/thenoetrevino/leadboard/internal/models"

// SeedBoard returns the fixed sample data used when no valid snapshot exists.
// Cards are spread across new, contacted and qualified; won and lost start empty.
func SeedBoard() models.Board {
	b := models.NewBoard()

	b[models.ColumnNew] = []models.Card{
		{
			ID:           "1",
			Name:         "Priya Raman",
			Company:      "Raman Textiles",
			Email:        "priya@ramantextiles.example",
			Phone:        "+91 98450 11223",
			Owner:        "Arjun",
			Amount:       models.AmountPtr(250000),
			Tags:         []string{"chit-fund", "referral"},
			FollowUpDate: "2024-07-02",
			Priority:     models.PriorityHigh,
		},
		{
			ID:       "2",
			Name:     "Kiran Shah",
			Company:  "Shah Logistics",
			Email:    "kiran@shahlogistics.example",
			Owner:    "Meera",
			Amount:   models.AmountPtr(120000),
			Tags:     []string{"loan-group"},
			Priority: models.PriorityMedium,
		},
		{
			ID:    "7",
			Name:  "Anita Das",
			Phone: "+91 90030 44556",
			Tags:  []string{"walk-in"},
		},
	}

	b[models.ColumnContacted] = []models.Card{
		{
			ID:           "4",
			Name:         "Ravi Kumar",
			Company:      "Kumar Agencies",
			Email:        "ravi@kumaragencies.example",
			Owner:        "Arjun",
			Amount:       models.AmountPtr(500000),
			FollowUpDate: "2024-07-10",
			Priority:     models.PriorityHigh,
		},
		{
			ID:       "5",
			Name:     "Lakshmi Iyer",
			Company:  "Iyer & Sons",
			Owner:    "Meera",
			Amount:   models.AmountPtr(75000),
			Tags:     []string{"renewal"},
			Priority: models.PriorityLow,
		},
	}

	b[models.ColumnQualified] = []models.Card{
		{
			ID:           "3",
			Name:         "Suresh Menon",
			Company:      "Menon Builders",
			Email:        "suresh@menonbuilders.example",
			Phone:        "+91 94470 77889",
			Owner:        "Arjun",
			Amount:       models.AmountPtr(1000000),
			Tags:         []string{"chit-fund", "enterprise"},
			FollowUpDate: "2024-06-28",
			Priority:     models.PriorityHigh,
		},
		{
			ID:       "6",
			Name:     "Farah Khan",
			Company:  "Khan Electricals",
			Owner:    "Meera",
			Amount:   models.AmountPtr(180000),
			Priority: models.PriorityMedium,
		},
		{
			ID:      "8",
			Name:    "George Thomas",
			Company: "Thomas Dairy",
			Amount:  models.AmountPtr(60000),
			Tags:    []string{"loan-group", "rural"},
		},
	}

	return b
}
