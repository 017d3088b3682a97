package main

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyboard answers key queries from ebiten's current input state. Codes are
// ebiten key names, matched case-insensitively.
type keyboard struct {
	keys map[string]ebiten.Key
	bad  map[string]struct{}
}

func newKeyboard() *keyboard {
	return &keyboard{
		keys: make(map[string]ebiten.Key),
		bad:  make(map[string]struct{}),
	}
}

func (k *keyboard) IsKeyPressed(code string) bool {
	key, ok := k.lookup(code)
	return ok && ebiten.IsKeyPressed(key)
}

func (k *keyboard) lookup(code string) (ebiten.Key, bool) {
	if key, ok := k.keys[code]; ok {
		return key, true
	}
	if _, ok := k.bad[code]; ok {
		return 0, false
	}
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(code)); err != nil {
		log.Printf("input: unknown key %q: %v", code, err)
		k.bad[code] = struct{}{}
		return 0, false
	}
	k.keys[code] = key
	return key, true
}

// heldKeys is a fixed key state for headless runs.
type heldKeys map[string]bool

func newHeldKeys(codes []string) heldKeys {
	h := heldKeys{}
	for _, c := range codes {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			h[c] = true
		}
	}
	return h
}

func (h heldKeys) IsKeyPressed(code string) bool {
	return h[strings.ToLower(code)]
}
