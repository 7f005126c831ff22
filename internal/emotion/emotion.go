// Package emotion defines the five emotions a child can pick and the fixed
// Ukrainian copy attached to each of them.
package emotion

// Emotion is one of the five feelings offered on the emotions screen.
// The zero value means no emotion has been chosen yet.
type Emotion int

const (
	None Emotion = iota
	Joy
	Sadness
	Anger
	Fear
	Disgust
)

// All lists the emotions in the order they are offered to the child:
// three on the top row, two on the bottom.
var All = []Emotion{Joy, Sadness, Fear, Disgust, Anger}

type details struct {
	id       string
	label    string
	question string
}

var catalogue = map[Emotion]details{
	Joy:     {id: "joy", label: "Радість", question: "Чому тобі так весело сьогодні?"},
	Sadness: {id: "sadness", label: "Печаль", question: "Чому тобі сумно сьогодні?"},
	Anger:   {id: "anger", label: "Гнів", question: "Чому ти злишся сьогодні?"},
	Fear:    {id: "fear", label: "Страх", question: "Чого ти боїшся сьогодні?"},
	Disgust: {id: "disgust", label: "Відраза", question: "Що тобі не подобається сьогодні?"},
}

// angerReflection is the text the reflection input starts with for anger.
const angerReflection = "Мене злить, що моє місто постійно руйнують і я відчуваю безнадію..."

// String returns the stable identifier ("joy", "sadness", ...) or "none".
func (e Emotion) String() string {
	if d, ok := catalogue[e]; ok {
		return d.id
	}
	return "none"
}

// Label returns the Ukrainian name shown to the child.
func (e Emotion) Label() string {
	return catalogue[e].label
}

// Question returns the reflection prompt for the emotion.
func (e Emotion) Question() string {
	return catalogue[e].question
}

// DefaultReflection returns the text the reflection input is seeded with.
// Only anger has one.
func (e Emotion) DefaultReflection() string {
	if e == Anger {
		return angerReflection
	}
	return ""
}

// Valid reports whether e is one of the five real emotions.
func (e Emotion) Valid() bool {
	_, ok := catalogue[e]
	return ok
}

// Parse maps an identifier back to its Emotion.
func Parse(s string) (Emotion, bool) {
	for e, d := range catalogue {
		if d.id == s {
			return e, true
		}
	}
	return None, false
}
