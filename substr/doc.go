// Package substr finds the longest substring without repeating
// characters, via a single sliding-window pass.
//
// What
//
//   - LongestUniqueLength returns the length (in runes) of the longest
//     contiguous run of s with no repeated character.
//   - LongestUniqueWindow additionally reports where the leftmost such
//     run starts, as a rune offset.
//   - LongestUnique returns the run itself.
//
// Why
//
//	The window [start, end] always contains no repeated character.
//	When s[end] was last seen inside the window, start jumps to one
//	past that occurrence — the minimal shrink that restores the
//	invariant — so every rune is visited once and the scan is linear.
//
// Alphabet
//
//	Last-seen positions are keyed by rune, so any UTF-8 input works;
//	there is no fixed-size alphabet table. Invalid UTF-8 bytes decode
//	as U+FFFD and are treated like any other character. All lengths
//	and offsets count runes, not bytes.
//
// Complexity (n = rune length of s)
//
//   - Time:   O(n)
//   - Memory: O(min(n, alphabet)) for the last-seen map
//
// Usage
//
//	substr.LongestUniqueLength("abcabcbb") // 3 ("abc")
//	substr.LongestUniqueLength("bbbbb")    // 1
//	substr.LongestUniqueLength("pwwkew")   // 3 ("wke")
//	substr.LongestUniqueLength("")         // 0 — empty input is not an error
//
// No error conditions: every input string has a well-defined answer.
package substr
