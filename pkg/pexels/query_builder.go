package pexels

import "fmt"

// BuildSearchQuery biases the search toward recognizable landmark shots
// rather than generic stock results for the destination.
func BuildSearchQuery(destination string) string {
	if destination == "" {
		return ""
	}
	return fmt.Sprintf("famous tourist attractions in %s", destination)
}
