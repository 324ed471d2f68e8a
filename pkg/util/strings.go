package util

// RemoveDuplicateStrings keeps the first occurrence of each string, dropping
// empty strings and anything in ignoreList. Order is preserved.
func RemoveDuplicateStrings(strings []string, ignoreList []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, ignoreString := range ignoreList {
		presentStrings[ignoreString] = true
	}

	for _, item := range strings {
		if presentStrings[item] || item == "" {
			continue
		}

		presentStrings[item] = true
		list = append(list, item)
	}

	return list
}
