package domain

// StorageKey names the persisted history entry. The browser uses it as the
// localStorage key; the terminal stores use it as file stem and row key.
const StorageKey = "rodrierr_history"

// MaxHistory bounds the number of remembered queries.
const MaxHistory = 50

// MaxSuggestions bounds the number of rows shown in the dropdown.
const MaxSuggestions = 3

// DefaultSearchURL is the provider prefix; the encoded query is appended.
const DefaultSearchURL = "https://www.google.com/search?q="

var baseSuggestions = [...]string{
	"Python", "Ciberseguridad", "Inteligencia Artificial",
	"Big Data", "Redes de Datos", "Rodrierr buscador",
	"Machine Learning", "ChatGPT", "Programación en Python",
	"Google vs Rodrierr", "Análisis de datos", "Algoritmos",
}

// BaseSuggestions returns a copy of the built-in topic list offered before
// any history exists.
func BaseSuggestions() []string {
	return append([]string(nil), baseSuggestions[:]...)
}
