package validate

import (
	"net/mail"
	"strings"
)

// Email проверяет, что строка является корректным адресом почты
func Email(address string) bool {
	address = strings.TrimSpace(address)
	if address == "" {
		return false
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return false
	}

	// ParseAddress принимает формы с display name ("Ana <a@b.c>"),
	// нам нужен только голый адрес
	if parsed.Address != address {
		return false
	}

	// Требуем домен с точкой, mail.ParseAddress допускает "a@b"
	at := strings.LastIndex(address, "@")
	return strings.Contains(address[at+1:], ".")
}

// Quantity проверяет, что количество положительное
func Quantity(quantity int) bool {
	return quantity >= 1
}
