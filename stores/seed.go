package stores

import (
	"context"
	"time"

	"cityvoice-be/models"
)

// SampleUsers returns the demo reporters. Passwords are unset; demo
// mode is for browsing and admin triage, not login.
func SampleUsers(now time.Time) []models.User {
	names := []struct{ id, name, email string }{
		{"ananya", "Ananya Sharma", "ananya@example.com"},
		{"rohan", "Rohan Verma", "rohan@example.com"},
		{"priya", "Priya Patel", "priya@example.com"},
		{"vikram", "Vikram Singh", "vikram@example.com"},
		{"sunita", "Sunita Reddy", "sunita@example.com"},
	}
	users := make([]models.User, 0, len(names))
	for _, n := range names {
		users = append(users, models.User{
			ID:        n.id,
			Name:      n.name,
			Email:     n.email,
			Tokens:    0,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return users
}

// SampleIssues returns the six demo reports used by demo mode and the
// workflow tests.
func SampleIssues(now time.Time) []models.Issue {
	return []models.Issue{
		{
			ID:           "IS-001",
			UserID:       "ananya",
			Category:     models.Pothole,
			Location:     "Koramangala, Bangalore",
			Text:         "Large pothole on 5th Cross Road, causing traffic issues and potential accidents. Needs urgent repair.",
			Engagement:   models.Engagement{Likes: 125, Comments: 23, Shares: 15},
			Status:       models.Acknowledged,
			Priority:     95,
			Department:   models.PublicWorks,
			Verification: models.Unreviewed,
			CreatedAt:    now.Add(-2 * time.Hour),
			UpdatedAt:    now.Add(-2 * time.Hour),
		},
		{
			ID:           "IS-002",
			UserID:       "rohan",
			Category:     models.Waste,
			Location:     "Indiranagar, Bangalore",
			Text:         "Garbage bins are overflowing near the metro station. The area smells terrible and it's unhygienic.",
			Engagement:   models.Engagement{Likes: 88, Comments: 12, Shares: 5},
			Status:       models.InProgress,
			Priority:     80,
			Department:   models.Sanitation,
			Verification: models.Unreviewed,
			CreatedAt:    now.Add(-22 * time.Hour),
			UpdatedAt:    now.Add(-22 * time.Hour),
		},
		{
			ID:           "IS-003",
			UserID:       "priya",
			Category:     models.Streetlight,
			Location:     "Jayanagar, Bangalore",
			Text:         "The streetlight on our block has been out for three days. It feels very unsafe to walk here at night.",
			Engagement:   models.Engagement{Likes: 210, Comments: 45, Shares: 30},
			Status:       models.Resolved,
			Priority:     90,
			Department:   models.Electrical,
			Verification: models.Verified,
			CreatedAt:    now.Add(-3 * 24 * time.Hour),
			UpdatedAt:    now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:           "IS-004",
			UserID:       "vikram",
			Category:     models.BrokenPavement,
			Location:     "HSR Layout, Bangalore",
			Text:         "The sidewalk is cracked and uneven, making it difficult for elderly people and children to walk.",
			Engagement:   models.Engagement{Likes: 50, Comments: 8, Shares: 2},
			Status:       models.Submitted,
			Priority:     60,
			Verification: models.Unreviewed,
			CreatedAt:    now.Add(-5 * 24 * time.Hour),
			UpdatedAt:    now.Add(-5 * 24 * time.Hour),
		},
		{
			ID:           "IS-005",
			UserID:       "sunita",
			Category:     models.WaterLogging,
			Location:     "Marathahalli, Bangalore",
			Text:         "After just a little rain, this whole intersection gets flooded. The drainage system is clearly blocked.",
			Engagement:   models.Engagement{Likes: 300, Comments: 80, Shares: 55},
			Status:       models.Acknowledged,
			Priority:     98,
			Department:   models.Drainage,
			Verification: models.Unreviewed,
			CreatedAt:    now.Add(-10 * 24 * time.Hour),
			UpdatedAt:    now.Add(-10 * 24 * time.Hour),
		},
		{
			ID:           "IS-006",
			UserID:       "ananya",
			Category:     models.IllegalParking,
			Location:     "Whitefield, Bangalore",
			Text:         "Cars are parked across the pedestrian crossing every evening, forcing people onto the road.",
			Engagement:   models.Engagement{Likes: 14, Comments: 3, Shares: 1},
			Status:       models.Submitted,
			Priority:     35,
			Verification: models.Invalid,
			CreatedAt:    now.Add(-12 * 24 * time.Hour),
			UpdatedAt:    now.Add(-12 * 24 * time.Hour),
		},
	}
}

// SeedDemoData loads the sample fixture into the given stores.
func SeedDemoData(ctx context.Context, issues IssueStore, users UserStore) error {
	now := time.Now()
	for _, user := range SampleUsers(now) {
		u := user
		if err := users.Insert(ctx, &u); err != nil {
			return err
		}
	}
	for _, issue := range SampleIssues(now) {
		i := issue
		if err := issues.Insert(ctx, &i); err != nil {
			return err
		}
	}
	return nil
}
