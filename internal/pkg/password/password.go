package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

// HashPassword uses DefaultCost unless a cost is given; seeds in tests pass bcrypt.MinCost.
func HashPassword(password string, cost ...int) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	c := DefaultCost
	if len(cost) > 0 {
		c = cost[0]
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), c)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

// NeedsRehash reports hashes created below DefaultCost.
func NeedsRehash(hashedPassword string) bool {
	cost, err := bcrypt.Cost([]byte(hashedPassword))
	if err != nil {
		return true
	}
	return cost < DefaultCost
}
