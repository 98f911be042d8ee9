/*
Package gibberish decides whether a short piece of text looks like English or
like gibberish: random characters, encoded or enciphered data, keyboard mashing
or binary noise. It is meant to sit behind something that proposes candidate
plaintexts, such as a cipher breaker or a decoder chain, and give it an
automatic "is this real text" signal.

Text is normalized to lowercase letters (and digits, for the tiered strategy),
split into tokens, and scored by dictionary membership, by how many of its
2, 3 and 4 character n-grams appear in small tables of common English
patterns, and by a handful of statistics: letter frequency distance from
English, vowel/consonant balance, repeated characters and cipher-like shifts.
A Strategy turns those signals into a verdict.


Usage

The quick way, using the embedded dictionary:

	gibberish.IsGibberish("The quick brown fox jumps over the lazy dog.", gibberish.Medium) // false
	gibberish.IsGibberish("Vszzc hvwg wg zcbu", gibberish.Medium)                            // true
	gibberish.IsPassword("123456")                                                            // true

Sensitivity picks how much evidence is needed before text counts as English.
Low is the strictest and will call most borderline text gibberish; High
accepts anything containing a single dictionary word.

The weighted strategy folds every score into one number instead. Mind the
polarity, LooksEnglish returns true for English:

	if gibberish.LooksEnglish(candidate) {
		// keep it
	}

Build a Detector to swap the dictionary, the pattern tables or to log
decisions:

	words, err := gibberish.LoadWordSet(f, true)
	det := gibberish.New(
		gibberish.WithDictionary(words),
		gibberish.WithLogger(logger),
	)
	det.IsGibberish(text, gibberish.Tiered{Sensitivity: gibberish.High})
	det.IsGibberish(text, gibberish.Weighted{MinCombined: 0.4})
	scores := det.Analyze(text, gibberish.Tiered{})

Pattern tables can be derived from a corpus and saved:

	trigrams, err := gibberish.Train(3, 50, corpus)
	bts, err := trigrams.MarshalBinary()
	var load gibberish.PatternSet
	err = load.UnmarshalBinary(bts)

Check a strategy against labelled samples; if the report is not what you
expect, tune the strategy or the tables:

	good := []string{"hello world, how are you"} // ... and lots more
	bad := []string{"Ff7DPHaTaip", "9W5L9L30QG"}  // ... and lots more
	report, err := det.Test(good, bad, gibberish.Tiered{Sensitivity: gibberish.Low})

A Detector holds no mutable state and is safe for concurrent use.

*/
package gibberish
