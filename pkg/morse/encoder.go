package morse

import (
	"strings"
	"unicode"
)

// Word is an ordered sequence of letters.
type Word []rune

// Message is an ordered sequence of words.
type Message []Word

// Parse splits free text on whitespace.
func Parse(text string) Message {
	fields := strings.Fields(text)
	msg := make(Message, len(fields))
	for n, field := range fields {
		msg[n] = Word(field)
	}
	return msg
}

// String joins the words with single spaces.
func (m Message) String() string {
	words := make([]string, len(m))
	for n, w := range m {
		words[n] = string(w)
	}
	return strings.Join(words, " ")
}

// Encoder turns messages into unit sequences.
type Encoder struct {
	Table Table
}

// NewEncoder creates an Encoder using the table, nil means International.
func NewEncoder(t Table) *Encoder {
	return &Encoder{Table: t}
}

// Walk feeds the units of msg to fn one at a time. It stops as soon as
// fn returns false and reports whether the whole message was walked.
//
// Letters missing from the table are dropped before any gap is decided,
// so they never produce a gap of their own, and a word with no known
// letters disappears together with its WordGap.
func (e *Encoder) Walk(msg Message, fn func(Unit) bool) bool {
	words := e.mapWords(msg)
	for wi, letters := range words {
		for li, symbols := range letters {
			for si, s := range symbols {
				if !fn(UnitOf(s)) {
					return false
				}
				if si < len(symbols)-1 && !fn(UnitSymbolGap) {
					return false
				}
			}
			if li < len(letters)-1 && !fn(UnitLetterGap) {
				return false
			}
		}
		if wi < len(words)-1 && !fn(UnitWordGap) {
			return false
		}
	}
	return true
}

// Encode returns all units of msg.
func (e *Encoder) Encode(msg Message) []Unit {
	var units []Unit
	e.Walk(msg, func(u Unit) bool {
		units = append(units, u)
		return true
	})
	return units
}

// EncodeString parses and encodes text.
func (e *Encoder) EncodeString(text string) []Unit {
	return e.Encode(Parse(text))
}

func (e *Encoder) table() Table {
	if e == nil || e.Table == nil {
		return International
	}
	return e.Table
}

func (e *Encoder) mapWords(msg Message) [][][]Symbol {
	table := e.table()
	words := make([][][]Symbol, 0, len(msg))
	for _, w := range msg {
		var letters [][]Symbol
		for _, r := range w {
			if symbols, ok := table.Lookup(unicode.ToUpper(r)); ok {
				letters = append(letters, symbols)
			}
		}
		if len(letters) > 0 {
			words = append(words, letters)
		}
	}
	return words
}
