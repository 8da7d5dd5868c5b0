package services

import (
	"sort"
	"strconv"
)

// sortByItemNumber orders items by item number, numerically when both numbers
// parse and as strings otherwise.
func sortByItemNumber(items []BidItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return lessItemNumber(items[i].ItemNumber, items[j].ItemNumber)
	})
}

func lessItemNumber(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil && fa != fb {
		return fa < fb
	}
	return a < b
}
