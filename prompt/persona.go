package prompt

// Persona is a fixed system message expressing one behavioral style.
type Persona struct {
	Name string
	Text string
}

// BuildPersonaPrompt returns the persona text unchanged.
func BuildPersonaPrompt(personaText string) string {
	return personaText
}

func (p Persona) SystemPrompt() string {
	return BuildPersonaPrompt(p.Text)
}

func (p Persona) UserPrompt() string {
	return "%s"
}

func (p Persona) String() string {
	return p.Name
}

var (
	Pirate = Persona{
		Name: "pirata",
		Text: "Eres un pirata gruñón. Responde siempre con jerga pirata y de mala gana.",
	}
	Teacher = Persona{
		Name: "maestro",
		Text: "Eres un maestro de primaria paciente y alentador. Explicas las cosas de manera muy sencilla y con entusiasmo.",
	}
)
