package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxLength длина пароля в байтах, которую учитывает bcrypt
const MaxLength = 72

// Bcrypt хеширует пароли через bcrypt с заданной стоимостью
type Bcrypt struct {
	cost int
}

// NewBcrypt создает хешер. Стоимость вне допустимого диапазона заменяется на bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash возвращает bcrypt-хеш пароля (соль генерируется внутри bcrypt)
func (b *Bcrypt) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify сравнивает хеш с паролем. Несовпадение не считается ошибкой: возвращается false, nil.
// Пароль длиннее MaxLength не мог быть захеширован и всегда считается несовпадением.
func (b *Bcrypt) Verify(hash, plain string) (bool, error) {
	if len(plain) > MaxLength {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
