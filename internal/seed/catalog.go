package seed

import "github.com/example/hindivocab/pkg/models"

// ParentEntry is a category or lesson in a catalog. Order is ignored for categories.
type ParentEntry struct {
	Name        string
	Description string
	Order       int
}

// WordEntry is a word in a catalog, attached to its parent by name
type WordEntry struct {
	Parent          string
	HindiWord       string
	EnglishMeaning  string
	Level           int
	Pronunciation   string
	ExampleSentence string
	ImageURL        string
}

// Catalog is a fixed data set the seeder brings the store up to
type Catalog struct {
	Parents []ParentEntry
	Words   []WordEntry
}

// CatalogFor returns the built-in catalog for a schema variant
func CatalogFor(v models.Variant) Catalog {
	if v == models.VariantLesson {
		return LessonCatalog()
	}
	return CategoryCatalog()
}

// CategoryCatalog is the sample data for the category variant
func CategoryCatalog() Catalog {
	return Catalog{
		Parents: []ParentEntry{
			{Name: "Numbers", Description: "Basic numbers in Hindi"},
			{Name: "Animals", Description: "Common animal names"},
			{Name: "Colors", Description: "Basic colors in Hindi"},
			{Name: "Greetings", Description: "Common greetings and phrases"},
			{Name: "Family", Description: "Family member names"},
		},
		Words: []WordEntry{
			{
				Parent: "Numbers", HindiWord: "एक", EnglishMeaning: "One", Level: 1,
				Pronunciation: "ek", ExampleSentence: "मेरे पास एक किताब है।",
				ImageURL: "https://example.com/numbers/one.jpg",
			},
			{
				Parent: "Numbers", HindiWord: "दो", EnglishMeaning: "Two", Level: 1,
				Pronunciation: "do", ExampleSentence: "मेरे पास दो सेब हैं।",
				ImageURL: "https://example.com/numbers/two.jpg",
			},
			{
				Parent: "Animals", HindiWord: "बिल्ली", EnglishMeaning: "Cat", Level: 2,
				Pronunciation: "billi", ExampleSentence: "बिल्ली दौड़ रही है।",
				ImageURL: "https://example.com/animals/cat.jpg",
			},
			{
				Parent: "Animals", HindiWord: "कुत्ता", EnglishMeaning: "Dog", Level: 2,
				Pronunciation: "kutta", ExampleSentence: "कुत्ता खाना खा रहा है।",
				ImageURL: "https://example.com/animals/dog.jpg",
			},
			{
				Parent: "Colors", HindiWord: "लाल", EnglishMeaning: "Red", Level: 1,
				Pronunciation: "laal", ExampleSentence: "यह लाल रंग का फूल है।",
				ImageURL: "https://example.com/colors/red.jpg",
			},
			{
				Parent: "Colors", HindiWord: "नीला", EnglishMeaning: "Blue", Level: 1,
				Pronunciation: "neela", ExampleSentence: "आसमान नीला है।",
				ImageURL: "https://example.com/colors/blue.jpg",
			},
			{
				Parent: "Greetings", HindiWord: "नमस्ते", EnglishMeaning: "Hello", Level: 1,
				Pronunciation: "namaste", ExampleSentence: "नमस्ते! मैं अच्छा हूं।",
			},
		},
	}
}

// LessonCatalog is the sample data for the lesson variant
func LessonCatalog() Catalog {
	const (
		lesson1 = "Lesson 1: Single Words"
		lesson2 = "Lesson 2: Simple Phrases"
		lesson3 = "Lesson 3: Everyday Sentences"
	)
	return Catalog{
		Parents: []ParentEntry{
			{Name: lesson1, Description: "Everyday nouns and a first greeting", Order: 1},
			{Name: lesson2, Description: "Short phrases for polite conversation", Order: 2},
			{Name: lesson3, Description: "Complete sentences for daily situations", Order: 3},
		},
		Words: []WordEntry{
			{Parent: lesson1, HindiWord: "पानी", EnglishMeaning: "Water", Level: 1, Pronunciation: "paani", ExampleSentence: "मुझे पानी दो।"},
			{Parent: lesson1, HindiWord: "नमस्ते", EnglishMeaning: "Hello", Level: 1, Pronunciation: "namaste", ExampleSentence: "नमस्ते! आप कैसे हैं?"},
			{Parent: lesson1, HindiWord: "घर", EnglishMeaning: "House", Level: 1, Pronunciation: "ghar", ExampleSentence: "यह मेरा घर है।"},
			{Parent: lesson1, HindiWord: "खाना", EnglishMeaning: "Food", Level: 1, Pronunciation: "khaana", ExampleSentence: "खाना तैयार है।"},
			{Parent: lesson1, HindiWord: "किताब", EnglishMeaning: "Book", Level: 1, Pronunciation: "kitaab", ExampleSentence: "मेरे पास एक किताब है।"},

			{Parent: lesson2, HindiWord: "धन्यवाद", EnglishMeaning: "Thank you", Level: 1, Pronunciation: "dhanyavaad", ExampleSentence: "मदद के लिए धन्यवाद।"},
			{Parent: lesson2, HindiWord: "आप कैसे हैं?", EnglishMeaning: "How are you?", Level: 2, Pronunciation: "aap kaise hain"},
			{Parent: lesson2, HindiWord: "मेरा नाम", EnglishMeaning: "My name", Level: 2, Pronunciation: "mera naam", ExampleSentence: "मेरा नाम राम है।"},

			{Parent: lesson3, HindiWord: "मुझे पानी चाहिए", EnglishMeaning: "I need water", Level: 3, Pronunciation: "mujhe paani chahiye"},
			{Parent: lesson3, HindiWord: "यह कितने का है?", EnglishMeaning: "How much is this?", Level: 3, Pronunciation: "yah kitne ka hai"},
		},
	}
}
