package game

import "math/rand"

// K, W, X, Y and Z are skipped, barely any valid pt-BR answers start with
// them.
const playableLetters = "ABCDEFGHIJLMNOPQRSTUV"

func RandomLetter() string {
	return string(playableLetters[rand.Intn(len(playableLetters))])
}
