package common

import "fmt"

// Returns a string like "1 site" or "3 sites" for the given list.
func GetSingularPluralStringSimple[T any](list []T, singular string) string {
	return GetSingularPluralString(len(list), singular, singular+"s")
}

func GetSingularPluralString(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
