package session

// Milestone is a balloon-popping achievement level.
type Milestone struct {
	Level    int    `json:"level"`
	Required int    `json:"required"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Special  bool   `json:"special,omitempty"`
}

// Milestones are ordered by Required.
var Milestones = []Milestone{
	{Level: 1, Required: 100, Name: "Beginner", Color: "#CD7F32"},
	{Level: 2, Required: 300, Name: "Enthusiast", Color: "#C0C0C0"},
	{Level: 3, Required: 600, Name: "Expert", Color: "#FFD700"},
	{Level: 4, Required: 4600, Name: "Champion", Color: "#E5E4E2"},
	{Level: 5, Required: 9600, Name: "Master", Color: "#B9F2FF"},
	{Level: 6, Required: 15600, Name: "Legend", Color: "#9966CC"},
	{Level: 7, Required: 85600, Name: "Titan", Color: "#FF6347"},
	{Level: 8, Required: 165600, Name: "Mythic", Color: "#FF1493"},
	{Level: 9, Required: 255600, Name: "Ultimate", Color: "#00CED1"},
	{Level: 10, Required: 255601, Name: "Limitless", Color: "#d4af37", Special: true},
}

// Achievement returns the highest milestone reached, nil below the first.
func Achievement(count int) *Milestone {
	for i := len(Milestones) - 1; i >= 0; i-- {
		if count >= Milestones[i].Required {
			m := Milestones[i]
			return &m
		}
	}
	return nil
}
