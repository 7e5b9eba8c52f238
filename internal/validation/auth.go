package validation

// AuthForm carries the credential fields shared by login and registration.
type AuthForm struct {
	Username string
	Password string
}

// ValidateAuth checks the username (min 3) and password (min 6) rules.
func ValidateAuth(f AuthForm) map[string]string {
	errors := make(map[string]string)
	validateLength("username", f.Username, 3, 0, errors)
	validateLength("password", f.Password, 6, 0, errors)
	return errors
}

// ValidateRegister applies the auth rules plus the confirmation match.
func ValidateRegister(f AuthForm, confirmPassword string) map[string]string {
	errors := ValidateAuth(f)
	if f.Password != confirmPassword {
		errors["confirmPassword"] = "Passwords do not match"
	}
	return errors
}
