package simulate

// Archetype selects the simulated candidate's behavior pattern.
type Archetype string

const (
	Ideal         Archetype = "ideal"
	Junior        Archetype = "junior"
	Nervous       Archetype = "nervous"
	Overconfident Archetype = "overconfident"
)

// Personality is a five-trait vector, each in [0,1].
type Personality struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// Profile describes a simulated candidate. Skills map names to a 1-10
// proficiency level.
type Profile struct {
	Name        string         `json:"name"`
	Archetype   Archetype      `json:"archetype"`
	Skills      map[string]int `json:"skills"`
	Personality Personality    `json:"personality"`
}

// Presets are the built-in candidate profiles, keyed by archetype. They are
// static configuration and must never be mutated at runtime.
var Presets = map[Archetype]*Profile{
	Ideal: {
		Name:      "理想候选人",
		Archetype: Ideal,
		Skills:    map[string]int{"JavaScript": 9, "React": 8, "Node.js": 8, "TypeScript": 7, "系统设计": 8},
		Personality: Personality{
			Openness:          0.8,
			Conscientiousness: 0.85,
			Extraversion:      0.7,
			Agreeableness:     0.75,
			Neuroticism:       0.2,
		},
	},
	Junior: {
		Name:      "初级候选人",
		Archetype: Junior,
		Skills:    map[string]int{"JavaScript": 5, "React": 4, "Node.js": 3, "CSS": 5, "HTML": 6},
		Personality: Personality{
			Openness:          0.6,
			Conscientiousness: 0.7,
			Extraversion:      0.5,
			Agreeableness:     0.8,
			Neuroticism:       0.4,
		},
	},
	Nervous: {
		Name:      "紧张型候选人",
		Archetype: Nervous,
		Skills:    map[string]int{"JavaScript": 7, "React": 6, "Node.js": 5, "TypeScript": 5, "Git": 6},
		Personality: Personality{
			Openness:          0.5,
			Conscientiousness: 0.8,
			Extraversion:      0.3,
			Agreeableness:     0.7,
			Neuroticism:       0.8,
		},
	},
	Overconfident: {
		Name:      "过度自信型",
		Archetype: Overconfident,
		Skills:    map[string]int{"JavaScript": 6, "React": 5, "Node.js": 4, "TypeScript": 4, "AWS": 3},
		Personality: Personality{
			Openness:          0.7,
			Conscientiousness: 0.5,
			Extraversion:      0.9,
			Agreeableness:     0.4,
			Neuroticism:       0.3,
		},
	},
}

// PresetFor returns the preset profile for the archetype, or nil when unknown.
func PresetFor(archetype Archetype) *Profile {
	return Presets[archetype]
}
