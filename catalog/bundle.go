package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Bundle serves texts and words from per-language toml message files,
// messages.<code>.toml and words.<code>.toml, loaded through go-i18n.
// Resolution is strict per language: a miss never falls back to another
// language's entry.
type Bundle struct {
	texts map[int]*i18n.Localizer
	words map[int]*i18n.Localizer
}

// NewBundle loads the message files under dir for every language in the
// id to code mapping. A messages file is required per language; a words
// file is optional.
func NewBundle(dir string, languages map[int]string) (*Bundle, error) {
	b := &Bundle{
		texts: make(map[int]*i18n.Localizer, len(languages)),
		words: make(map[int]*i18n.Localizer, len(languages)),
	}

	for id, code := range languages {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("language %d code %q: %w", id, code, err)
		}

		texts, err := loadLocalizer(tag, code, filepath.Join(dir, fmt.Sprintf("messages.%s.toml", code)))
		if err != nil {
			return nil, err
		}
		b.texts[id] = texts

		wordsPath := filepath.Join(dir, fmt.Sprintf("words.%s.toml", code))
		if _, err = os.Stat(wordsPath); err == nil {
			var words *i18n.Localizer
			words, err = loadLocalizer(tag, code, wordsPath)
			if err != nil {
				return nil, err
			}
			b.words[id] = words
		}
	}

	return b, nil
}

// loadLocalizer builds a single-language localizer so lookups cannot fall
// back across languages.
func loadLocalizer(tag language.Tag, code, path string) (*i18n.Localizer, error) {
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	if _, err := bundle.LoadMessageFile(path); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return i18n.NewLocalizer(bundle, code), nil
}

// Text implements Store.
func (b *Bundle) Text(_ context.Context, id int, languageID int) (string, error) {
	return lookup(b.texts, id, languageID)
}

// Word implements Store.
func (b *Bundle) Word(_ context.Context, id int, languageID int) (string, error) {
	return lookup(b.words, id, languageID)
}

func lookup(localizers map[int]*i18n.Localizer, id int, languageID int) (string, error) {
	localizer, ok := localizers[languageID]
	if !ok {
		return "", fmt.Errorf("language %d: %w", languageID, ErrNotFound)
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: strconv.Itoa(id)})
	if err != nil {
		var missing *i18n.MessageNotFoundErr
		if errors.As(err, &missing) {
			return "", fmt.Errorf("entry %d language %d: %w", id, languageID, ErrNotFound)
		}
		return "", err
	}

	return msg, nil
}
