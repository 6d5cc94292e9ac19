package types

import "regexp"

func IsValidEmail(email string) bool {
	if email == "" || !emailRegex.MatchString(email) {
		return false
	}
	return true
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
