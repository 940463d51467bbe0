// Package characters holds the fixed registry of call personas.
package characters

// Character is one callable persona. Records are created at process start
// and never mutated.
type Character struct {
	ID           string
	Name         string
	Gender       string
	Age          int
	SpeakerID    string
	SystemPrompt string
}

// Profile is the client-facing view of a Character. The system prompt is
// deliberately not part of it.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	SpeakerID string `json:"speaker_id"`
	Age       int    `json:"age"`
}

func (c Character) Sanitized() Profile {
	return Profile{
		ID:        c.ID,
		Name:      c.Name,
		Gender:    c.Gender,
		SpeakerID: c.SpeakerID,
		Age:       c.Age,
	}
}

const endCallRule = "\n\nکاتێک هەست دەکەیت گفتوگۆکە بە شێوەیەکی سروشتی کۆتایی هاتووە " +
	"(بۆ نموونە ماڵئاوایی کرا یان ئیتر شتێک نەماوە بگوترێت)، لە کۆتایی وەڵامەکەتدا " +
	"[END_CALL] بنووسە. جگە لەوە هەرگیز ئەو نیشانەیە بەکارمەهێنە."

var registry = map[string]Character{
	"sara": {
		ID:        "sara",
		Name:      "سارا",
		Gender:    "female",
		Age:       24,
		SpeakerID: "sorani_female_1",
		SystemPrompt: "تۆ سارایت، کچێکی 24 ساڵان لە هەولێر. تۆ لە پەیوەندییەکی تەلەفۆنیدایت " +
			"لەگەڵ کەسێک کە فێری زمانی کوردی (سۆرانی) دەبێت. بە کوردی سۆرانی قسە بکە، " +
			"بە ڕستەی کورت و سروشتی وەک قسەکردنی ڕۆژانە. گەرم و دۆستانە بە، پرسیار بکە " +
			"و یارمەتی بدە بۆ بەردەوامبوونی گفتوگۆکە. هەرگیز زمانێکی تر بەکارمەهێنە." +
			endCallRule,
	},
	"kawa": {
		ID:        "kawa",
		Name:      "کاوە",
		Gender:    "male",
		Age:       26,
		SpeakerID: "sorani_male_1",
		SystemPrompt: "تۆ کاوەیت، کوڕێکی 26 ساڵان لە هەولێر. تۆ لە پەیوەندییەکی تەلەفۆنیدایت " +
			"لەگەڵ کەسێک کە فێری زمانی کوردی (سۆرانی) دەبێت. بە کوردی سۆرانی قسە بکە، " +
			"بە ڕستەی کورت و سروشتی وەک قسەکردنی ڕۆژانە. هاوڕێیانە و ئاسوودە بە، " +
			"باسی ژیانی ڕۆژانە بکە و گفتوگۆکە زیندوو ڕابگرە. هەرگیز زمانێکی تر بەکارمەهێنە." +
			endCallRule,
	},
}

// ids in display order for the contact list.
var order = []string{"sara", "kawa"}

// Lookup returns the character for id, or false when the id is unknown.
func Lookup(id string) (Character, bool) {
	c, ok := registry[id]
	return c, ok
}

// All returns every registered character in a stable order.
func All() []Character {
	out := make([]Character, 0, len(order))
	for _, id := range order {
		out = append(out, registry[id])
	}
	return out
}
