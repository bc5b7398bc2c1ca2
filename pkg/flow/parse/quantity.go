package parse

import (
	"math"
	"regexp"
	"strconv"
)

var intRe = regexp.MustCompile(`\d+`)

// Quantity pulls an order quantity from free text. When the customer gives
// several numbers ("between 20 and 30") the result is their rounded mean.
// ok is false when the text holds no number at all.
func Quantity(text string) (int, bool) {
	matches := intRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return 0, false
	}
	sum := 0
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		sum += n
	}
	mean := float64(sum) / float64(len(matches))
	return int(math.Round(mean)), true
}
