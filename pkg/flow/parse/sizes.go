package parse

import (
	"regexp"
	"strconv"
	"strings"

	"screenprint-chatbot-be/internal/constant"
)

var sizePairRe = regexp.MustCompile(`(?i)\b(xs|small|sm|s|medium|med|m|large|lg|l|xlarge|xl|xxxl|3xl|3x|xxl|2xl|2x)\b\s*[:=\-]?\s*([0-9]+)|\b([0-9]+)\s*(?:x\s+)?(xs|small|sm|s|medium|med|m|large|lg|l|xlarge|xl|xxxl|3xl|3x|xxl|2xl|2x)\b`)

// Sizes extracts a size breakdown like "S:10, M:15, L:5" or "10 small and
// 15 large". Keys are canonical size codes, values are counts.
func Sizes(text string) map[string]int {
	out := map[string]int{}
	for _, m := range sizePairRe.FindAllStringSubmatch(text, -1) {
		var sizeTok, countTok string
		if m[1] != "" {
			sizeTok, countTok = m[1], m[2]
		} else {
			countTok, sizeTok = m[3], m[4]
		}
		canonical, ok := constant.SizeAliases[strings.ToLower(sizeTok)]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(countTok)
		if err != nil {
			continue
		}
		out[canonical] += n
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SizesTotal sums a size breakdown.
func SizesTotal(sizes map[string]int) int {
	total := 0
	for _, n := range sizes {
		total += n
	}
	return total
}

// FormatSizes renders a breakdown in canonical size order, e.g.
// "S: 10, M: 15, L: 5".
func FormatSizes(sizes map[string]int) string {
	var parts []string
	for _, code := range constant.SizeOrder {
		if n, ok := sizes[code]; ok {
			parts = append(parts, strings.ToUpper(code)+": "+strconv.Itoa(n))
		}
	}
	return strings.Join(parts, ", ")
}
