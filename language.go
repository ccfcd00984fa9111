package lingo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Text directions reported by Context.Dir.
const (
	DirLTR = "ltr"
	DirRTL = "rtl"
)

// ErrLanguageNotFound is returned for language identifiers or internal
// codes that are not present in the registry.
var ErrLanguageNotFound = errors.New("lingo: language not found")

// DateRules carry a language's calendar names and the patterns used for
// the four date verbosity levels. Patterns substitute the tokens
// {weekday}, {month}, {mon}, {day}, {dd}, {mm}, {year} and {yy}.
type DateRules struct {
	Months   []string `toml:"months"   yaml:"months"`
	Weekdays []string `toml:"weekdays" yaml:"weekdays"`

	Full   string `toml:"full"   yaml:"full"`
	Long   string `toml:"long"   yaml:"long"`
	Medium string `toml:"medium" yaml:"medium"`
	Short  string `toml:"short"  yaml:"short"`
}

// Language describes one configured language.
type Language struct {
	ID           int       `toml:"id"            yaml:"id"`
	Code         string    `toml:"code"          yaml:"code"`
	Locale       string    `toml:"locale"        yaml:"locale"`
	InternalCode string    `toml:"internal_code" yaml:"internal_code"`
	Direction    string    `toml:"direction"     yaml:"direction"`
	Dates        DateRules `toml:"dates"         yaml:"dates"`
}

// Registry is an immutable set of configured languages with lookups by
// numeric id and by internal code, plus best-effort matching of caller
// language preferences.
type Registry struct {
	byID       map[int]Language
	byInternal map[string]int
	order      []int
	matcher    language.Matcher
	baseID     int
}

func englishDateRules() DateRules {
	return DateRules{
		Months: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		Weekdays: []string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		Full:   "{weekday}, {month} {day}, {year}",
		Long:   "{month} {day}, {year}",
		Medium: "{mon} {day}, {year}",
		Short:  "{mm}/{dd}/{yy}",
	}
}

// DefaultRegistry returns a registry holding only English, the compiled-in
// base language.
func DefaultRegistry() *Registry {
	r, _ := NewRegistry(Language{
		ID:           1,
		Code:         "en",
		Locale:       "en_US",
		InternalCode: "eng",
		Direction:    DirLTR,
		Dates:        englishDateRules(),
	})
	return r
}

// NewRegistry builds a registry from the supplied languages. The first
// language is the base language every context bottoms out at.
func NewRegistry(base Language, others ...Language) (*Registry, error) {
	all := append([]Language{base}, others...)

	r := &Registry{
		byID:       make(map[int]Language, len(all)),
		byInternal: make(map[string]int, len(all)),
		baseID:     base.ID,
	}

	var tags []language.Tag
	for _, lang := range all {
		if lang.Code == "" {
			return nil, fmt.Errorf("language %d has no code", lang.ID)
		}
		if _, ok := r.byID[lang.ID]; ok {
			return nil, fmt.Errorf("duplicate language id %d", lang.ID)
		}

		tag, err := language.Parse(lang.Code)
		if err != nil {
			return nil, fmt.Errorf("language %d code %q: %w", lang.ID, lang.Code, err)
		}

		if lang.Direction == "" {
			lang.Direction = DirLTR
		}
		applyDateDefaults(&lang.Dates)

		r.byID[lang.ID] = lang
		if lang.InternalCode != "" {
			r.byInternal[lang.InternalCode] = lang.ID
		}
		r.order = append(r.order, lang.ID)
		tags = append(tags, tag)
	}

	r.matcher = language.NewMatcher(tags)
	return r, nil
}

// applyDateDefaults falls back to the English rules for anything a
// language's date configuration leaves out.
func applyDateDefaults(rules *DateRules) {
	defaults := englishDateRules()
	if len(rules.Months) != monthsPerYear {
		rules.Months = defaults.Months
	}
	if len(rules.Weekdays) != daysPerWeek {
		rules.Weekdays = defaults.Weekdays
	}
	if rules.Full == "" {
		rules.Full = defaults.Full
	}
	if rules.Long == "" {
		rules.Long = defaults.Long
	}
	if rules.Medium == "" {
		rules.Medium = defaults.Medium
	}
	if rules.Short == "" {
		rules.Short = defaults.Short
	}
}

type registryFile struct {
	Languages []Language `toml:"language"`
}

// LoadRegistry reads a registry from a toml file of [[language]] tables.
// The base language is the one whose code equals baseCode, defaulting to
// the first entry when baseCode is empty.
func LoadRegistry(path string, baseCode string) (*Registry, error) {
	var file registryFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, err
	}

	if len(file.Languages) == 0 {
		return nil, fmt.Errorf("no languages defined in %q", path)
	}

	baseIdx := 0
	if baseCode != "" {
		found := false
		for i, lang := range file.Languages {
			if lang.Code == baseCode {
				baseIdx = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("base language %q: %w", baseCode, ErrLanguageNotFound)
		}
	}

	base := file.Languages[baseIdx]
	others := make([]Language, 0, len(file.Languages)-1)
	for i, lang := range file.Languages {
		if i != baseIdx {
			others = append(others, lang)
		}
	}

	return NewRegistry(base, others...)
}

// Get looks a language up by its numeric id.
func (r *Registry) Get(id int) (Language, error) {
	lang, ok := r.byID[id]
	if !ok {
		return Language{}, fmt.Errorf("language id %d: %w", id, ErrLanguageNotFound)
	}
	return lang, nil
}

// GetByInternalCode looks a language up by its internal code.
func (r *Registry) GetByInternalCode(code string) (Language, error) {
	id, ok := r.byInternal[code]
	if !ok {
		return Language{}, fmt.Errorf("internal code %q: %w", code, ErrLanguageNotFound)
	}
	return r.byID[id], nil
}

// BaseID returns the id of the base language.
func (r *Registry) BaseID() int {
	return r.baseID
}

// InternalLanguageMap enumerates all configured languages as a mapping of
// internal code to language id.
func (r *Registry) InternalLanguageMap() map[string]int {
	m := make(map[string]int, len(r.byInternal))
	for code, id := range r.byInternal {
		m[code] = id
	}
	return m
}

// Languages returns the configured languages in registration order.
func (r *Registry) Languages() []Language {
	langs := make([]Language, 0, len(r.order))
	for _, id := range r.order {
		langs = append(langs, r.byID[id])
	}
	return langs
}

// Match resolves a list of caller language preferences, Accept-Language
// style, to the id of the best configured language. Unusable preferences
// resolve to the base language.
func (r *Registry) Match(preferences ...string) int {
	cleaned := preferences[:0:0]
	for _, p := range preferences {
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return r.baseID
	}

	_, idx := language.MatchStrings(r.matcher, cleaned...)
	if idx < 0 || idx >= len(r.order) {
		return r.baseID
	}
	return r.order[idx]
}

// sortedInternalCodes exists for deterministic logging output.
func (r *Registry) sortedInternalCodes() []string {
	codes := make([]string, 0, len(r.byInternal))
	for code := range r.byInternal {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
