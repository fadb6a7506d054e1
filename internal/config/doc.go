// Package config loads and validates deck files: the list of vocabulary
// cards to print plus output, layout, page and template settings.
//
// Decks are YAML, decoded strictly so a misspelled key is an error, and
// validated with go-playground/validator struct tags. Error messages name
// fields by their YAML path, e.g. "cards[3].english: required".
package config
