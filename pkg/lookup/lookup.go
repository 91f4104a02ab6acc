// Package lookup resolves dotted keys against merged translation trees the
// way the rendering layer does: the requested language first, then a
// fallback language, with {name} tokens substituted at the end.
package lookup

import (
	"regexp"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/menuboard/localemerge/pkg/errors"
	"github.com/menuboard/localemerge/pkg/loose"
	"github.com/menuboard/localemerge/pkg/tree"
)

var tokenPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Result is a resolved string or string list.
type Result struct {
	Text     string
	List     []string
	Language language.Tag
	Fallback bool
}

// Catalog holds one translation tree per language.
type Catalog struct {
	mu       sync.RWMutex
	bundle   *i18n.Bundle
	trees    map[language.Tag]tree.Mapping
	fallback language.Tag
}

// New creates a Catalog that falls back to the given language.
func New(fallback string) (*Catalog, error) {
	tag, err := language.Parse(fallback)
	if err != nil {
		return nil, errors.NewValidationError("fallback", fallback, err.Error())
	}
	return &Catalog{
		bundle:   i18n.NewBundle(tag),
		trees:    make(map[language.Tag]tree.Mapping),
		fallback: tag,
	}, nil
}

// Fallback returns the fallback language.
func (c *Catalog) Fallback() language.Tag {
	return c.fallback
}

// Add registers the strings of t under lang. Adding a language twice
// overwrites the keys present in the newer tree.
func (c *Catalog) Add(lang string, t tree.Mapping) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return errors.NewValidationError("language", lang, err.Error())
	}

	strs := tree.Strings(t)
	messages := make([]*i18n.Message, 0, len(strs))
	for id, text := range strs {
		messages = append(messages, &i18n.Message{ID: id, Other: text})
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.bundle.AddMessages(tag, messages...); err != nil {
		return errors.WrapValidation("language", err)
	}
	c.trees[tag] = t
	return nil
}

// AddFile parses path and registers it under lang.
func (c *Catalog) AddFile(lang, path string) error {
	t, err := loose.ParseFile(path)
	if err != nil {
		return err
	}
	return c.Add(lang, t)
}

// Text resolves key in lang, falling back to the fallback language when
// lang lacks it or holds an empty string. vars fill {name} tokens; tokens
// without a value are left in place.
func (c *Catalog) Text(lang, key string, vars map[string]string) (Result, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	localizer := i18n.NewLocalizer(c.bundle, lang)
	text, tag, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: key})

	var notFound *i18n.MessageNotFoundErr
	switch {
	case err == nil:
	case errors.As(err, &notFound) && tag != language.Und:
	case errors.As(err, &notFound):
		return Result{}, errors.NewNotFoundError("key", key)
	default:
		return Result{}, errors.WrapValidation(key, err)
	}

	return Result{
		Text:     substitute(text, vars),
		Language: tag,
		Fallback: err != nil || !c.matches(lang, tag),
	}, nil
}

// List resolves a string sequence, using the same fallback order as Text.
// An empty sequence counts as missing.
func (c *Catalog) List(lang, key string) (Result, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, tag := range c.order(lang) {
		n, ok := tree.Lookup(c.trees[tag], key)
		if !ok {
			continue
		}
		if seq, ok := n.(tree.StringSeq); ok && len(seq) > 0 {
			return Result{
				List:     append([]string(nil), seq...),
				Language: tag,
				Fallback: !c.matches(lang, tag),
			}, nil
		}
	}
	return Result{}, errors.NewNotFoundError("list", key)
}

func (c *Catalog) order(lang string) []language.Tag {
	tags := make([]language.Tag, 0, 2)
	if tag, err := language.Parse(lang); err == nil {
		if _, ok := c.trees[tag]; ok && tag != c.fallback {
			tags = append(tags, tag)
		}
	}
	return append(tags, c.fallback)
}

func (c *Catalog) matches(lang string, tag language.Tag) bool {
	requested, err := language.Parse(lang)
	if err != nil {
		return false
	}
	base, _ := requested.Base()
	served, _ := tag.Base()
	return base == served
}

func substitute(text string, vars map[string]string) string {
	if len(vars) == 0 {
		return text
	}
	return tokenPattern.ReplaceAllStringFunc(text, func(tok string) string {
		name := tokenPattern.FindStringSubmatch(tok)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		return tok
	})
}
