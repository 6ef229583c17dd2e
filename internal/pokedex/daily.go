package pokedex

import "time"

// mulberry32 increment constant, fixed by the reference generator.
const mulberryIncrement = 0x6D2B79F5

// mulberry32 returns a generator of floats in [0, 1) from a 32-bit state.
// The arithmetic is deliberately uint32 throughout so the sequence matches
// the reference generator bit for bit.
func mulberry32(seed uint32) func() float64 {
	state := seed
	return func() float64 {
		state += mulberryIncrement
		z := state
		t := (z ^ (z >> 15)) * (z | 1)
		t = (t + (t^(t>>7))*(t|61)) ^ t
		return float64(t^(t>>14)) / 4294967296
	}
}

// dateSeed derives the deterministic seed for a calendar date:
// year*10000 + month*100 + day.
func dateSeed(date time.Time) uint32 {
	return uint32(date.Year()*10000 + int(date.Month())*100 + date.Day())
}

// PickOfTheDay returns the daily pick id in [1, totalCount]. The same
// calendar date always produces the same id, across locales and process
// restarts.
func PickOfTheDay(date time.Time, totalCount int) int {
	r := mulberry32(dateSeed(date))()
	return int(r*float64(totalCount)) + 1
}
