package company

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidName  = errors.New("company name must be between 1 and 255 characters")
	ErrInvalidCNPJ  = errors.New("invalid CNPJ format")
	ErrMissingOwner = errors.New("company owner is required")
)

// Brazilian tax id, formatted NN.NNN.NNN/NNNN-NN.
var cnpjRegex = regexp.MustCompile(`^[0-9]{2}\.[0-9]{3}\.[0-9]{3}/[0-9]{4}-[0-9]{2}$`)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if len(s) < 1 || len(s) > 255 {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type CNPJ struct {
	value string
}

func NewCNPJ(s string) (CNPJ, error) {
	s = strings.TrimSpace(s)
	if !cnpjRegex.MatchString(s) {
		return CNPJ{}, ErrInvalidCNPJ
	}
	return CNPJ{value: s}, nil
}

func (c CNPJ) Value() string {
	return c.value
}
