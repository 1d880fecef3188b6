//go:build !lru_debug

package lru

const debugging = false

func assert(bool, string) {}
