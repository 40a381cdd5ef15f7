package server

import (
	"math/rand/v2"
)

// Nickname word lists
var (
	adjectives = []string{
		"Lucky", "Sly", "Merry", "Grumpy", "Dapper",
		"Sleepy", "Bold", "Quiet", "Shiny", "Crafty",
		"Nimble", "Rusty", "Velvet", "Jolly", "Sneaky",
		"Copper", "Golden", "Misty", "Pebble", "Thorny",
	}

	nouns = []string{
		"Folletto", "Gnome", "Sprite", "Badger", "Otter",
		"Magpie", "Ferret", "Toad", "Weasel", "Imp",
		"Hedgehog", "Squirrel", "Raccoon", "Marmot", "Stoat",
		"Cricket", "Beetle", "Vole", "Shrew", "Mole",
	}
)

// GenerateNickname returns a random default nickname.
func GenerateNickname() string {
	adj := adjectives[rand.IntN(len(adjectives))]
	noun := nouns[rand.IntN(len(nouns))]
	return adj + noun
}
