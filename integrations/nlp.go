package integrations

import (
	"github.com/eulerbot/eulerbot"
	"github.com/eulerbot/eulerbot/config"
	"github.com/jdkato/prose/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"regexp"
	"strings"
	"sync"
)

const (
	// NoSubjectFound is the subject of a text without any noun chunk before its first verb
	NoSubjectFound = "No subject found"

	asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var (
	urlPattern     = regexp.MustCompile(`http\S+`)
	slackURLFormat = regexp.MustCompile(`(http\S+?)[|>]`)
)

// Token is a word along with its part-of-speech tag (penn treebank)
type Token struct {
	Text string
	Tag  string
}

// ParsedText holds the tagged tokens of a parsed text along with the named entities found
// by a custom model. Entity words always belong to a noun chunk
type ParsedText struct {
	Tokens   []Token
	Entities []string
}

// LanguageParser strips urls and punctuation from text and tags the remaining words
type LanguageParser struct {
	modelName string
	log       eulerbot.SLogger

	loadModel sync.Once
	model     *prose.Model
}

// NewLanguageParser creates a new LanguageParser using the configured model. The builtin
// model only tags words while a model loaded from disk also extracts named entities. The
// model is loaded on first use
func NewLanguageParser(v *viper.Viper, logger eulerbot.SLogger) (lp *LanguageParser) {
	lp = new(LanguageParser)
	lp.modelName = v.GetString(config.NLPModelKey)
	lp.log = logger

	return lp
}

// RemoveURLs removes anything that looks like a url from text
func (lp *LanguageParser) RemoveURLs(text string) string {
	return urlPattern.ReplaceAllString(text, "")
}

// RemovePunctuation removes all ascii punctuation characters from text
func (lp *LanguageParser) RemovePunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}

		return r
	}, text)
}

// FindURLs returns the urls of the slack formatted links (<url> or <url|title>) in text
func (lp *LanguageParser) FindURLs(text string) (urls []string) {
	urls = make([]string, 0)
	for _, m := range slackURLFormat.FindAllStringSubmatch(text, -1) {
		urls = append(urls, m[1])
	}

	return urls
}

// Parse strips urls and punctuation from text, tags its words and, when a model was loaded
// from disk, extracts its named entities
func (lp *LanguageParser) Parse(text string) (pt *ParsedText, err error) {
	text = lp.RemovePunctuation(lp.RemoveURLs(text))

	options := []prose.DocOpt{prose.WithExtraction(false), prose.WithSegmentation(false)}
	model := lp.loadedModel()
	if model != nil {
		options = []prose.DocOpt{prose.UsingModel(model), prose.WithExtraction(true), prose.WithSegmentation(false)}
	}

	doc, err := prose.NewDocument(text, options...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse text")
	}

	pt = new(ParsedText)
	for _, tok := range doc.Tokens() {
		pt.Tokens = append(pt.Tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}

	if model != nil {
		for _, ent := range doc.Entities() {
			pt.Entities = append(pt.Entities, ent.Text)
		}
	}

	return pt, nil
}

// loadedModel returns the configured model or nil for the bundled one. A model that
// fails to load is logged and the bundled one is used instead
func (lp *LanguageParser) loadedModel() *prose.Model {
	lp.loadModel.Do(func() {
		if lp.modelName == "" || lp.modelName == config.BuiltinNLPModel {
			return
		}

		defer func() {
			if p := recover(); p != nil {
				lp.log.Printf("Failed to load language model from [%s], using the builtin one: %v", lp.modelName, p)
				lp.model = nil
			}
		}()

		lp.model = prose.ModelFromDisk(lp.modelName)
		lp.log.Printf("Loaded language model from [%s]", lp.modelName)
	})

	return lp.model
}

// chunk is a noun phrase along with the index of its first token
type chunk struct {
	text  string
	start int
}

// NounChunks returns the noun phrases of the text in order of appearance
func (pt *ParsedText) NounChunks() (chunks []string) {
	chunks = make([]string, 0)
	for _, c := range pt.chunks() {
		chunks = append(chunks, c.text)
	}

	return chunks
}

// Subject returns the longest noun phrase before the first verb
func (pt *ParsedText) Subject() string {
	verb := pt.firstVerb()
	if verb < 0 {
		return NoSubjectFound
	}

	subject := longest(pt.chunks(), func(c chunk) bool { return c.start < verb })
	if subject == "" {
		return NoSubjectFound
	}

	return subject
}

// Object returns the longest noun phrase after the first verb or an empty string if there's none
func (pt *ParsedText) Object() string {
	verb := pt.firstVerb()
	if verb < 0 {
		return ""
	}

	return longest(pt.chunks(), func(c chunk) bool { return c.start > verb })
}

// firstVerb returns the index of the first verb token or -1
func (pt *ParsedText) firstVerb() int {
	for i, t := range pt.Tokens {
		if strings.HasPrefix(t.Tag, "VB") || t.Tag == "MD" {
			return i
		}
	}

	return -1
}

// chunks groups runs of determiners, adjectives, numbers and nouns ending with a noun.
// Personal pronouns are chunks of their own. Words of a named entity count as nouns
func (pt *ParsedText) chunks() (chunks []chunk) {
	start := -1
	lastNoun := -1
	inEntity := pt.entityTokens()

	flush := func() {
		if start >= 0 && lastNoun >= start {
			chunks = append(chunks, chunk{text: pt.join(start, lastNoun), start: start})
		}

		start, lastNoun = -1, -1
	}

	for i, t := range pt.Tokens {
		switch {
		case inEntity[i]:
			if start < 0 {
				start = i
			}
			lastNoun = i

		case t.Tag == "PRP":
			flush()
			chunks = append(chunks, chunk{text: t.Text, start: i})

		case isNoun(t.Tag):
			if start < 0 {
				start = i
			}
			lastNoun = i

		case isNounModifier(t.Tag):
			if start >= 0 && lastNoun >= 0 {
				flush()
			}

			if start < 0 {
				start = i
			}

		default:
			flush()
		}
	}

	flush()

	return chunks
}

// entityTokens returns the indexes of the tokens that are part of a named entity
func (pt *ParsedText) entityTokens() (indexes map[int]bool) {
	indexes = make(map[int]bool)
	for _, ent := range pt.Entities {
		words := strings.Fields(ent)
		if len(words) == 0 {
			continue
		}

		for i := 0; i+len(words) <= len(pt.Tokens); i++ {
			if pt.matches(i, words) {
				for j := i; j < i+len(words); j++ {
					indexes[j] = true
				}
			}
		}
	}

	return indexes
}

func (pt *ParsedText) matches(from int, words []string) bool {
	for j, w := range words {
		if pt.Tokens[from+j].Text != w {
			return false
		}
	}

	return true
}

func (pt *ParsedText) join(from int, to int) string {
	words := make([]string, 0, to-from+1)
	for _, t := range pt.Tokens[from : to+1] {
		words = append(words, t.Text)
	}

	return strings.Join(words, " ")
}

func isNoun(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

func isNounModifier(tag string) bool {
	switch tag {
	case "DT", "PDT", "PRP$", "JJ", "JJR", "JJS", "CD", "POS":
		return true
	}

	return false
}

// longest returns the longest chunk text matching the filter, the first one wins on ties
func longest(chunks []chunk, filter func(c chunk) bool) (text string) {
	for _, c := range chunks {
		if filter(c) && len(c.text) > len(text) {
			text = c.text
		}
	}

	return text
}
