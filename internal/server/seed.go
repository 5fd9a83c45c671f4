package server

import "github.com/Makepad-fr/datenight/internal/model"

var catalogue = map[string][]string{
	model.BudgetFree: {
		"Board Game Night at Home",
		"Picnic in the Park",
		"Bike Riding",
		"Stargazing",
		"Columbus Commons Free Concert Night",
		"Columbus Commons Free Movie Series",
		"Columbus Museum of Art on Sunday (Free Admission)",
		"Riffe Art Gallery",
		"Columbus Metropolitan Library Culture Pass",
		"Franklin Park Conservatory First Sunday of the Month (Free Admission)",
		"Movie Marathon",
		"Volunteer Night Together",
		"Deeper Connections Cards",
		"Walk the Scioto Mile",
		"Visit the Park of Roses",
		"Free Tour of Columbus State House",
		"Inniswood Metro Gardens",
		"Go on a Hike",
		"Play Disc Golf",
		"Shakespeare in the Park at Schiller Park",
		"Play Tennis at a Public Tennis Court",
	},
	model.BudgetCheap: {
		"Sam's Club Cafe",
		"IKEA Cafe",
		"Farmer's Market",
		"DIY Art Night",
		"Visit a Coffee Shop",
		"DIY Spa Night",
		"Thrift Shopping",
		"Camping",
		"Factory Tour at Anthony Thomas Chocolates",
		"Grocery Store Challenge (Each Make a Meal Under $10)",
		"Bubble Tea Tasting",
		"Trivia Night at Pastimes Pub & Grill",
		"Olentangy Indian Caverns",
		"Visit a Corn Maze",
		"Paint-your-own-pottery at Clay Cafe or Color Me Mine",
		"Movie Matinee at Studio 35 or Gateway Film Center",
	},
	model.BudgetModerate: {
		"Bowling",
		"Kayaking",
		"Ice Skating",
		"Mini Golf",
		"Axe Throwing",
		"Old North Arcade Bar",
		"Walk around German Village",
		"Go to a Columbus Clippers Game",
		"Swimming",
		"Visit Otherworld",
		"Go to BalletMet Columbus",
		"Eat at Mimi's Cafe",
		"Visit Ninja City",
		"Go Paddleboarding at Alum Creek",
		"Go to a Concert at Ace of Cups or Skully's",
	},
	model.BudgetExpensive: {
		"Top Golf",
		"Escape Room",
		"Murder Mystery Dinner",
		"Spa Day",
		"Helicopter Ride",
		"Boat Ride",
		"COSI",
		"See a Show at Ohio Theater",
		"Indoor Rock Climbing",
		"Dinner at The Refectory",
		"Segway Tour of the City",
		"Hot Air Balloon Ride",
		"Go Parasailing",
		"Go Jetskiing",
		"Go SCUBA Diving",
		"Go Skydiving",
		"Go Bungee Jumping",
		"Take a Skiing Lesson",
		"Take a Snowboarding Lesson",
		"Go Paragliding",
		"Go Ziplining",
		"Go to a Meditation Class",
		"Take a Ballroom Dancing Lesson",
		"Go to Laser Quest",
		"Go to a Columbus Blue Jackets Game",
		"Horseback Riding Trail Ride",
	},
}

// DefaultSeed returns the built-in idea catalogue, budgets in tier order.
// IDs are left zero; the store assigns them.
func DefaultSeed() []model.IdeaInput {
	var out []model.IdeaInput
	for _, budget := range model.Budgets {
		for _, title := range catalogue[budget] {
			out = append(out, model.IdeaInput{Title: title, BudgetCategory: budget})
		}
	}
	return out
}
