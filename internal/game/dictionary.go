package game

import (
	"os"
	"strings"
	"sync"
)

const defaultWordlistPath = "data/palavras_pt.txt"

// Dictionary is an optional newline-separated wordlist used to auto-accept
// answers without peer voting. Loaded once; a missing file just means every
// valid answer goes to the players.
type Dictionary struct {
	loadOnce sync.Once
	words    map[string]struct{}
	path     string
}

var defaultDict = &Dictionary{path: defaultWordlistPath}

func DefaultDictionary() *Dictionary {
	if p := os.Getenv("WORDLIST_PATH"); p != "" {
		return &Dictionary{path: p}
	}
	return defaultDict
}

func (d *Dictionary) load() {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return
	}
	lines := strings.Split(string(data), "\n")
	d.words = make(map[string]struct{}, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l != "" {
			d.words[Normalize(l)] = struct{}{}
		}
	}
}

func (d *Dictionary) Contains(word string) bool {
	d.loadOnce.Do(d.load)
	if len(d.words) == 0 {
		return false
	}
	_, ok := d.words[Normalize(word)]
	return ok
}
