// Package morse maps text to International Morse code units.
package morse

// A message is split on whitespace into words, each word into letters and
// each letter into symbols. The Encoder turns that nesting into a flat
// sequence of Units, inserting the gap that belongs to each boundary:
//
//   symbol | SymbolGap | symbol           within a letter
//   letter | LetterGap | letter           within a word
//   word   | WordGap   | word             within a message
//
// No gap follows the last unit of a message.
