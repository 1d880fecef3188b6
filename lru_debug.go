//go:build lru_debug

package lru

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
