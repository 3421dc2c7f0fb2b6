package dfs

import (
	"strconv"
	"strings"
)

// indexOf returns the first index of val in s, or -1 if not found.
func indexOf(s []int, val int) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}
	return -1
}

// reverse returns a new slice with the elements of s in reverse order.
func reverse(s []int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}
	return out
}

// compare lexicographically compares two equal-length index slices.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
func compare(a, b []int) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// joinSig concatenates the elements of c with commas into a signature string.
func joinSig(c []int) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// minimalRotation implements Booth's algorithm: the lexicographically
// minimal rotation of s, in O(n).
func minimalRotation(s []int) []int {
	doubled := append(append([]int(nil), s...), s...)
	n := len(s)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	res := make([]int, n)
	copy(res, doubled[k:k+n])
	return res
}
