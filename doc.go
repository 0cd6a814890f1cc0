// Package spoken evaluates numbers and arithmetic written as English words.
//
// Sentences read the way a person would say them aloud. "a hundred and fifty
// six thousand two hundred and twelve" is 156212, "two and a quarter" is 2.25,
// and "five hundred and ten point one five" is 510.15. Words that are not part
// of the vocabulary are ignored, so "what is two plus two" works too.
//
// Adjacent terms multiply, as in "two pie". Function words take the term after
// them as their argument, and that argument extends through multiplication but
// not addition: "sine two times pi plus one" is sin(2π)+1. Functions stack, so
// "log sin eleven hundred" is log(sin(1100)).
//
// Interpret handles phrases that are only a number, and Evaluate handles whole
// expressions. Parse and Context separate the two steps and allow evaluating
// at higher precision.
package spoken
