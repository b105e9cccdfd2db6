package completion

import "strings"

// MatchTitles maps a free-text reply back onto candidate titles. Each line
// of the reply is stripped of bullet markers and matched case-insensitively
// as a substring of a candidate title. Returned indices keep the original
// candidate order, capped at max. The heuristic is fragile on purpose: the
// service replies in prose, and this is the agreed seam to swap in a
// structured-output mode later.
func MatchTitles(reply string, titles []string, max int) []int {
	var wanted []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.Trim(strings.TrimSpace(line), "-*• \t")
		if line != "" {
			wanted = append(wanted, strings.ToLower(line))
		}
	}

	var picked []int
	for i, title := range titles {
		if len(picked) >= max {
			break
		}
		lower := strings.ToLower(title)
		for _, w := range wanted {
			if strings.Contains(lower, w) {
				picked = append(picked, i)
				break
			}
		}
	}

	return picked
}
