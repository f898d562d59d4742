package catalog

// Athlete is one entry of the athlete directory, immutable
// from the engine's perspective during a screen session.
type Athlete struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}
