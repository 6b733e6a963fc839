// Package election defines the Election object, its Questions, and its
// canonical serialization / fingerprint (spec §3 Election/Question, §4.8).
package election

import "github.com/beleniosvote/core/group"

// Question is one homomorphic question on the ballot: voters choose a 0/1
// vector over Answers whose sum must fall in [Min,Max] (spec §3).
type Question struct {
	Text    string
	Answers []string
	Blank   bool
	Min     int
	Max     int
}

// NewQuestion builds a Question, enforcing 0 <= min <= max <= len(answers)
// (spec §3 invariant).
func NewQuestion(text string, answers []string, min, max int) Question {
	if min < 0 || min > max || max > len(answers) {
		panic("election: invalid question bounds")
	}
	return Question{Text: text, Answers: answers, Min: min, Max: max}
}

// Election is the immutable election description that every ballot proof
// is bound to via its fingerprint (spec §3).
type Election struct {
	Version             int
	Description         string
	Name                string
	GroupName           string
	PublicKey           group.Element
	Questions           []Question
	UUID                string
	Administrator       string
	CredentialAuthority string
}

// Fingerprint returns SHA-256 of the canonical byte serialization of e
// (spec §4.8). It is a pure function of the Election's content: serializing
// the same Election twice yields the same fingerprint.
func (e Election) Fingerprint() [32]byte {
	return fingerprint(e)
}
