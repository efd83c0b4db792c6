package validation

import (
	"fmt"
	"unicode"
)

// MinAdminPasswordLength задаёт минимальную длину пароля владельца сайта.
const MinAdminPasswordLength = 12

// ValidatePassword проверяет пароль администратора перед выпуском bcrypt-хэша.
func ValidatePassword(password string) error {
	if len([]rune(password)) < MinAdminPasswordLength {
		return fmt.Errorf("пароль должен быть не менее %d символов", MinAdminPasswordLength)
	}

	var hasUpper, hasLower, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	switch {
	case !hasUpper:
		return fmt.Errorf("пароль должен содержать хотя бы одну заглавную букву")
	case !hasLower:
		return fmt.Errorf("пароль должен содержать хотя бы одну строчную букву")
	case !hasNumber:
		return fmt.Errorf("пароль должен содержать хотя бы одну цифру")
	}
	return nil
}
