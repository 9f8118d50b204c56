// Package substr implements the sliding-window unique-substring scan.
//
// # LongestUniqueWindow — window with last-seen index
//
// Steps:
//  1. Track lastSeen[rune] = most recent index of that rune, and a
//     window [start, end] known to contain no repeats.
//  2. For each end from 0..n-1:
//     2.1 If s[end] was last seen at an index ≥ start, move start to
//     one past that index (minimal shrink).
//     2.2 Record end as the rune's new last-seen index.
//     2.3 If end-start+1 beats the best width, record it.
//  3. The best width observed is the answer.
//
// Time complexity: O(n)
// Memory usage:    O(min(n, alphabet))
package substr

// LongestUniqueLength returns the length, in runes, of the longest
// contiguous substring of s with no repeated character. Empty input
// yields 0. Complexity: O(n).
func LongestUniqueLength(s string) int {
	_, length := LongestUniqueWindow(s)

	return length
}

// LongestUniqueWindow returns the rune offset and rune length of the
// leftmost longest substring of s with no repeated character.
// Empty input yields (0, 0). Complexity: O(n).
func LongestUniqueWindow(s string) (start, length int) {
	lastSeen := make(map[rune]int, 16)

	winStart := 0
	end := 0
	for _, r := range s {
		if prev, ok := lastSeen[r]; ok && prev >= winStart {
			winStart = prev + 1
		}
		lastSeen[r] = end

		// leftmost wins ties, so only a strict improvement moves the window
		if w := end - winStart + 1; w > length {
			start, length = winStart, w
		}
		end++
	}

	return start, length
}

// LongestUnique returns the leftmost longest substring of s with no
// repeated character, "" for empty input. Complexity: O(n).
func LongestUnique(s string) string {
	start, length := LongestUniqueWindow(s)
	if length == 0 {
		return ""
	}

	runes := []rune(s)

	return string(runes[start : start+length])
}
