// Package quintle is an in-memory toolkit for cracking five-letter
// word-guessing games — from feedback scoring and constraint algebra to
// expected-value evaluation and combinatorial probe search.
//
// 🚀 What is quintle?
//
//	A deterministic, CPU-only solver core that brings together:
//		• Feedback scoring: duplicate-letter-correct Hit/Present/Miss patterns
//		• Constraint algebra: accumulate knowledge across guesses, replayable
//		• Candidate filtering: bitvector letter & position indexes
//		• Guess evaluation: remaining-candidate distributions (mean, median,
//		  percentiles, worst case, std-dev) for any guess
//		• Combo search: minimax probes over arbitrary letter subsets,
//		  independent of any dictionary word
//
// ✨ Why choose quintle?
//
//   - Correct on the hard part – doubled letters, amber over-crediting,
//     absent-vs-present conflicts are all handled and tested
//   - Pure values – no hidden state; store the guess history, replay it
//   - Fast – popcount bitvectors and bitmask letter sets throughout
//   - Length-parametric – five letters by default, any fixed length works
//
// Under the hood, everything is organized into flat subpackages:
//
//	word/       — Word, List and LetterSet primitives
//	feedback/   — pattern scoring, parsing and rendering
//	constraint/ — the accumulated-knowledge Set and its JSON document form
//	candidate/  — bitvector indexes and constraint filtering
//	evaluate/   — per-guess remaining-candidate distributions and ranking
//	combo/      — minimax search over letter-subset probes
//	solver/     — a replayable guess-history session
//	wordio/     — word lists, constraint documents and outcome files on disk
//
// Quick example:
//
//	guess "CRANE", answer "CRONE" → pattern GGXGG,
//	and {"CRANE","CRONE","TRACE"} filters down to {"CRONE"}.
//
// Dive into the per-package docs for algorithm outlines and complexity
// notes, and into cmd/quintle for the command-line front end.
//
//	go get github.com/quintle/quintle
package quintle
