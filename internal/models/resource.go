package models

import "slices"

// Urgency ranks how pressing a support resource is
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Category groups support resources by the wellness dimension they target
type Category string

const (
	CategoryStress  Category = "stress"
	CategoryMood    Category = "mood"
	CategoryEnergy  Category = "energy"
	CategorySleep   Category = "sleep"
	CategoryGeneral Category = "general"
)

// Activity is a guided exercise with ordered steps
type Activity struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Duration     string   `json:"duration"` // human label, e.g. "5 min"
	Instructions []string `json:"instructions"`
}

// SupportResource is a read-only bundle of activities and tips targeted at a category
type SupportResource struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	Urgency     Urgency    `json:"urgency"`
	Activities  []Activity `json:"activities"`
	Tips        []string   `json:"tips"`
}

// Clone returns a copy that shares no slices with a.
func (a Activity) Clone() Activity {
	a.Instructions = slices.Clone(a.Instructions)
	return a
}

// Clone returns a deep copy of the resource.
func (r SupportResource) Clone() SupportResource {
	if r.Activities != nil {
		acts := make([]Activity, len(r.Activities))
		for i, a := range r.Activities {
			acts[i] = a.Clone()
		}
		r.Activities = acts
	}
	r.Tips = slices.Clone(r.Tips)
	return r
}

// EmergencyContact is a crisis line shown alongside high-urgency resources
type EmergencyContact struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}
