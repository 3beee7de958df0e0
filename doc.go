// Package wordforge turns a handful of personal facts into the password
// guesses an informed attacker would try first — and scores passwords with
// those same facts in mind.
//
// 🚀 What is wordforge?
//
//	A deterministic, audit-oriented toolkit that brings together:
//		• Seed extraction: names, pets and dates → normalized tokens
//		• Mutation engine: case, leet, year and pairing rules under profiles
//		• Wordlist assembly: ordered, deduplicated, capped candidate streams
//		• Strength scoring: entropy estimate with seed-aware penalties
//		• Crack-time estimates: four attacker tiers, human-scale display
//
// ✨ Why choose wordforge?
//
//   - Deterministic – identical facts and profile give identical output, always
//   - Lazy – candidates stream through iter.Seq; stop whenever you have enough
//   - Honest scoring – a password built from your own facts scores like one
//   - Pure library core – the CLI under cmd/ is a thin veneer
//
// Everything is organized under five subpackages:
//
//	seeds/     — fact parsing, tokenization, case/accent folding
//	mutate/    — rule catalogue, profiles (fast/balanced/comprehensive), engine
//	wordlist/  — dedup, collection and line-oriented output
//	strength/  — entropy scoring, penalties, feedback
//	cracktime/ — attacker tiers and duration formatting
//
// Quick example:
//
//	facts: name=Lekhana  pet=Bruno  date=2001-06-15
//	fast profile → bruno, Bruno, BRUNO, brun0, bruno2001, ...
//
// Use it on accounts you own or are authorized to assess.
//
//	go get github.com/wordforge/wordforge
package wordforge
