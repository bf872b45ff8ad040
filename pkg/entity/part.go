package entity

type AnimalType string

const (
	AnimalBeef    AnimalType = "beef"
	AnimalPork    AnimalType = "pork"
	AnimalChicken AnimalType = "chicken"
)

// Valid reports whether a is one of the known animal types.
func (a AnimalType) Valid() bool {
	switch a {
	case AnimalBeef, AnimalPork, AnimalChicken:
		return true
	}
	return false
}

type PartCategory string

const (
	CategoryMeat  PartCategory = "meat"
	CategoryOffal PartCategory = "offal"
)

// Rarity is an ordinal from 1 (common) to 4 (legendary).
type Rarity int

const (
	RarityCommon Rarity = iota + 1
	RarityUncommon
	RarityRare
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityLegendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// Stars renders the rarity the way the app shows it next to a part.
func (r Rarity) Stars() int {
	if r < RarityCommon || r > RarityLegendary {
		return 0
	}
	return int(r)
}

type Part struct {
	ID          string       `json:"id"`
	Animal      AnimalType   `json:"animal_type"`
	Name        string       `json:"name"`
	NameKana    string       `json:"name_kana"`
	Category    PartCategory `json:"category"`
	Rarity      Rarity       `json:"rarity"`
	Description string       `json:"description"`
}
