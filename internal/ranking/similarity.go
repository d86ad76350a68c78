package ranking

import "strings"

// Similarity returns a sequence-alignment ratio between two strings in
// [0.0, 1.0]: twice the number of runes in the longest matching blocks
// divided by the combined length. Case-insensitive. The block decomposition
// depends on which string is searched first, so arguments are put in a
// fixed canonical order before matching; the result is symmetric. Two empty
// strings compare as 1.0, which means two articles with empty bodies are
// always body-duplicates of each other.
func Similarity(a, b string) float64 {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	if la > lb {
		la, lb = lb, la
	}

	ar := []rune(la)
	br := []rune(lb)

	total := len(ar) + len(br)
	if total == 0 {
		return 1.0
	}

	return 2.0 * float64(matchingRunes(ar, br)) / float64(total)
}

// matchingRunes sums the lengths of the matching blocks between a and b:
// find the longest common run, then repeat on the unmatched pieces to its
// left and right.
func matchingRunes(a, b []rune) int {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	type span struct{ alo, ahi, blo, bhi int }
	stack := []span{{0, len(a), 0, len(b)}}

	matched := 0
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j, size := longestMatch(a, b2j, s.alo, s.ahi, s.blo, s.bhi)
		if size == 0 {
			continue
		}
		matched += size

		stack = append(stack,
			span{s.alo, i, s.blo, j},
			span{i + size, s.ahi, j + size, s.bhi},
		)
	}

	return matched
}

// longestMatch finds the longest run of identical runes within
// a[alo:ahi] and b[blo:bhi], using the precomputed rune positions of b.
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo

	// j2len[j] is the length of the match ending at a[i-1], b[j].
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	return besti, bestj, bestsize
}
