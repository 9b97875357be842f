package logic

// AtMostOne returns true if no more than one of the terms is true.
func AtMostOne(terms ...bool) bool {
	return count(terms) <= 1
}

// ExactlyOne returns true if one and only one of the terms is true.
func ExactlyOne(terms ...bool) bool {
	return count(terms) == 1
}

func count(terms []bool) int {
	var n int
	for _, term := range terms {
		if term {
			n++
		}
	}
	return n
}
