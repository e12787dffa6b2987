package models

// Word is a Hindi word with its English meaning.
// ParentID points at a category or a lesson depending on the deployment variant.
type Word struct {
	ID              int64   `json:"id" db:"id"`
	HindiWord       string  `json:"hindi_word" db:"hindi_word"`
	EnglishMeaning  string  `json:"english_meaning" db:"english_meaning"`
	ParentID        int64   `json:"parent_id" db:"parent_id"`
	Level           int     `json:"level" db:"level"` // Difficulty tier, independent of the parent
	Pronunciation   *string `json:"pronunciation" db:"pronunciation"`
	ExampleSentence *string `json:"example_sentence" db:"example_sentence"`
	ImageURL        *string `json:"image_url" db:"image_url"` // Category variant only
}

// LevelWord is a Word joined with the display name of its parent
type LevelWord struct {
	Word
	ParentName string `db:"parent_name"`
}
