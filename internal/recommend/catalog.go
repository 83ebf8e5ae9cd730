package recommend

import "github.com/julianstephens/wellday/internal/models"

// Outcome IDs. Every catalog must carry exactly one resource per outcome.
const (
	HighStress   = "high-stress"
	LowMood      = "low-mood"
	LowEnergy    = "low-energy"
	PoorSleep    = "poor-sleep"
	ExcellentDay = "excellent-day"
)

// Outcomes lists every outcome in rule order.
var Outcomes = []string{HighStress, LowMood, LowEnergy, PoorSleep, ExcellentDay}

// DefaultCatalog returns the built-in support resources.
func DefaultCatalog() []models.SupportResource {
	return []models.SupportResource{
		{
			ID:          HighStress,
			Title:       "Stress Relief",
			Description: "Immediate techniques to bring stress and anxiety down",
			Category:    models.CategoryStress,
			Urgency:     models.UrgencyHigh,
			Activities: []models.Activity{
				{
					ID:       "breathing",
					Name:     "4-7-8 Breathing",
					Duration: "3 min",
					Instructions: []string{
						"Sit comfortably and close your eyes",
						"Inhale through your nose for a count of 4",
						"Hold your breath for a count of 7",
						"Exhale through your mouth for a count of 8",
						"Repeat the cycle 4 times",
					},
				},
				{
					ID:       "grounding",
					Name:     "5-4-3-2-1 Grounding",
					Duration: "5 min",
					Instructions: []string{
						"Name 5 things you can see",
						"Name 4 things you can touch",
						"Name 3 things you can hear",
						"Name 2 things you can smell",
						"Name 1 thing you can taste",
					},
				},
			},
			Tips: []string{
				"Take a short break every 2 hours",
				"Breathe deeply whenever you notice tension",
				"Cut back on caffeine if you feel anxious",
				"Talk to someone you trust about what worries you",
			},
		},
		{
			ID:          LowMood,
			Title:       "Mood Boost",
			Description: "Activities to lift your emotional state",
			Category:    models.CategoryMood,
			Urgency:     models.UrgencyMedium,
			Activities: []models.Activity{
				{
					ID:       "gratitude",
					Name:     "Gratitude List",
					Duration: "5 min",
					Instructions: []string{
						"Grab pen and paper or open a notes app",
						"Write down 3 things you are grateful for today",
						"Small things count, like a good cup of coffee",
						"Read the list out loud",
						"Keep the list for harder days",
					},
				},
				{
					ID:       "movement",
					Name:     "Gentle Movement",
					Duration: "10 min",
					Instructions: []string{
						"Go for a walk outside if you can",
						"If you are at home, do some gentle stretches",
						"Put on music you enjoy",
						"Pay attention to how your body feels",
						"Do not push yourself, move only as feels comfortable",
					},
				},
			},
			Tips: []string{
				"Natural light can improve your mood",
				"Reach out to friends or family",
				"Listen to music that makes you feel good",
				"Do something creative, even for 10 minutes",
			},
		},
		{
			ID:          LowEnergy,
			Title:       "Energy Boost",
			Description: "Natural ways to recover your vitality",
			Category:    models.CategoryEnergy,
			Urgency:     models.UrgencyLow,
			Activities: []models.Activity{
				{
					ID:       "hydration",
					Name:     "Mindful Hydration",
					Duration: "2 min",
					Instructions: []string{
						"Slowly drink a large glass of water",
						"Add a slice of lemon if you have one",
						"Notice how the water feels in your body",
						"Set reminders to drink water every hour",
						"Avoid sugary or heavily caffeinated drinks",
					},
				},
				{
					ID:       "power-nap",
					Name:     "Power Nap",
					Duration: "20 min",
					Instructions: []string{
						"Find a comfortable, dark place",
						"Set an alarm for 20 minutes at most",
						"Close your eyes and relax your whole body",
						"Do not worry if you do not fully fall asleep",
						"Get up as soon as the alarm goes off",
					},
				},
			},
			Tips: []string{
				"Snack on fruit or nuts",
				"Avoid heavy meals that make you sleepy",
				"Take an active break every hour",
				"Aim for 7 to 8 hours of sleep a night",
			},
		},
		{
			ID:          PoorSleep,
			Title:       "Better Sleep",
			Description: "Routines for restorative rest",
			Category:    models.CategorySleep,
			Urgency:     models.UrgencyMedium,
			Activities: []models.Activity{
				{
					ID:       "sleep-routine",
					Name:     "Evening Routine",
					Duration: "30 min",
					Instructions: []string{
						"Turn off screens 1 hour before bed",
						"Take a warm shower or a relaxing bath",
						"Read a book or listen to soft music",
						"Practice deep breathing in bed",
						"Keep the room cool and dark",
					},
				},
				{
					ID:       "bedroom-prep",
					Name:     "Bedroom Prep",
					Duration: "10 min",
					Instructions: []string{
						"Air out the room so it is cool",
						"Make it as dark as possible",
						"Keep your phone away from the bed",
						"Lay out comfortable sleepwear",
						"Keep water nearby in case you get thirsty",
					},
				},
			},
			Tips: []string{
				"Keep a regular sleep schedule",
				"Avoid caffeine after 2 PM",
				"Exercise, but not right before bedtime",
				"If you cannot fall asleep in 20 minutes, get up and do something calm",
			},
		},
		{
			ID:          ExcellentDay,
			Title:       "Keep the Momentum",
			Description: "Ways to hold on to your wellbeing",
			Category:    models.CategoryGeneral,
			Urgency:     models.UrgencyLow,
			Activities: []models.Activity{
				{
					ID:       "reflection",
					Name:     "Positive Reflection",
					Duration: "5 min",
					Instructions: []string{
						"Think about what you did well today",
						"Identify what helped you feel good",
						"Write a note to your future self",
						"Plan how to repeat these habits tomorrow",
						"Celebrate your small wins",
					},
				},
			},
			Tips: []string{
				"Keep the habits that work for you",
				"Share your positive energy with others",
				"Plan activities you enjoy",
				"Remember that hard days pass too",
			},
		},
	}
}

// EmergencyContacts returns the crisis lines shown with high-urgency resources.
func EmergencyContacts() []models.EmergencyContact {
	return []models.EmergencyContact{
		{
			Name:        "24/7 Crisis Line",
			Phone:       "*4141",
			Description: "Immediate support during an emotional crisis",
		},
		{
			Name:        "Support Chat",
			Phone:       "WhatsApp: +569 3710 0023",
			Description: "Psychological support over chat",
		},
	}
}
