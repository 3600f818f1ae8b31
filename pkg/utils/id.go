package utils

import "crypto/rand"

// 0/O and 1/I are left out so codes survive being read out loud.
const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenShortID generates a 6-character room code for shareable game links.
func GenShortID() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	for i := range b {
		b[i] = codeChars[int(b[i])%len(codeChars)]
	}
	return string(b)
}
