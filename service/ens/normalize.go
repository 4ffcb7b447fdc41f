package ens

import (
	"strings"
	"unicode"
	"unicode/utf8"

	goens "github.com/wealdtech/go-ens/v3"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ensrecords/domain"
)

// Normalize returns the canonical form of name, failing with an
// InvalidName error for empty names, empty labels, invalid utf-8, names
// idna rejects and names still carrying disallowed runes after mapping.
func Normalize(name string) (string, error) {
	if !utf8.ValidString(name) {
		return "", invalidName(name, xerrors.Errorf("invalid utf-8: %w", domain.ErrInvalidName))
	}
	if err := checkLabels(name); err != nil {
		return "", invalidName(name, err)
	}
	normalized, err := goens.Normalize(name)
	if err != nil {
		return "", invalidName(name, xerrors.Errorf("%v: %w", err, domain.ErrInvalidName))
	}
	if err := checkLabels(normalized); err != nil {
		return "", invalidName(name, err)
	}
	if err := checkRunes(normalized); err != nil {
		return "", invalidName(name, err)
	}
	return normalized, nil
}

// NameHash normalizes name and returns its node.
func NameHash(name string) (string, [32]byte, error) {
	normalized, err := Normalize(name)
	if err != nil {
		return "", [32]byte{}, err
	}
	node, err := goens.NameHash(normalized)
	if err != nil {
		return "", [32]byte{}, invalidName(name, xerrors.Errorf("%v: %w", err, domain.ErrInvalidName))
	}
	return normalized, node, nil
}

func checkLabels(name string) error {
	if name == "" {
		return xerrors.Errorf("empty name: %w", domain.ErrInvalidName)
	}
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			return xerrors.Errorf("empty label: %w", domain.ErrInvalidName)
		}
	}
	return nil
}

// checkRunes rejects what the idna mapping lets through but a name must not
// carry: whitespace, control runes and the replacement rune.
func checkRunes(name string) error {
	for _, r := range name {
		switch {
		case r == utf8.RuneError, unicode.IsSpace(r), unicode.IsControl(r):
			return xerrors.Errorf("disallowed rune %U: %w", r, domain.ErrInvalidName)
		}
	}
	return nil
}

func invalidName(name string, err error) error {
	return domain.NewError(domain.ErrKindInvalidName, "normalize name \""+name+"\"", err)
}
