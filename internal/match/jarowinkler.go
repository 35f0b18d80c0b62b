// Package match provides fuzzy name matching for leadership-mention checks.
package match

// jaroWinklerPrefixCap is the maximum shared-prefix length the Winkler boost
// considers.
const jaroWinklerPrefixCap = 4

// jaroWinklerScale is the per-prefix-character weight of the Winkler boost.
const jaroWinklerScale = 0.1

// Jaro computes the Jaro similarity between two strings: the weighted mean of
// matching-character density in each string and the transposition ratio.
// Identical strings short-circuit to 1.0; if either string is empty or no
// characters match, the similarity is 0.
func Jaro(s1, s2 string) float64 {
	if s1 == s2 {
		if s1 == "" {
			return 0
		}
		return 1.0
	}
	if s1 == "" || s2 == "" {
		return 0
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	len1, len2 := len(r1), len(r2)

	window := maxInt(len1, len2)/2 - 1
	if window < 0 {
		window = 0
	}

	matched1 := make([]bool, len1)
	matched2 := make([]bool, len2)
	matches := 0
	for i := 0; i < len1; i++ {
		lo := maxInt(0, i-window)
		hi := minInt(len2-1, i+window)
		for j := lo; j <= hi; j++ {
			if matched2[j] || r1[i] != r2[j] {
				continue
			}
			matched1[i] = true
			matched2[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0
	}

	// Count transpositions between the matched sequences.
	transpositions := 0
	k := 0
	for i := 0; i < len1; i++ {
		if !matched1[i] {
			continue
		}
		for !matched2[k] {
			k++
		}
		if r1[i] != r2[k] {
			transpositions++
		}
		k++
	}
	transpositions /= 2

	m := float64(matches)
	return (m/float64(len1) + m/float64(len2) + (m-float64(transpositions))/m) / 3.0
}

// JaroWinkler applies the Winkler prefix boost on top of the Jaro similarity:
// similarity + prefixLen * scale * (1 - similarity), with the shared prefix
// capped at 4 characters and a 0.1 scaling factor.
func JaroWinkler(s1, s2 string) float64 {
	jaro := Jaro(s1, s2)
	if jaro == 0 || jaro == 1.0 {
		return jaro
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	prefix := 0
	for prefix < len(r1) && prefix < len(r2) && prefix < jaroWinklerPrefixCap {
		if r1[prefix] != r2[prefix] {
			break
		}
		prefix++
	}

	return jaro + float64(prefix)*jaroWinklerScale*(1.0-jaro)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
