// Package output formats country rows for the non-interactive commands.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"countrypick/internal/countries"
)

// CountryResult is one resolved country.
type CountryResult struct {
	Code    string `json:"code"`
	Country string `json:"country"`
	Flag    string `json:"flag,omitempty"`
}

// NewCountryResult builds a result for code/name, adding the flag emoji.
func NewCountryResult(code, name string) *CountryResult {
	return &CountryResult{
		Code:    code,
		Country: name,
		Flag:    countries.Flag(code),
	}
}

// FormatText formats the result as tab-separated text.
func (r *CountryResult) FormatText() string {
	return fmt.Sprintf("%s\t%s\t%s", r.Code, r.Flag, r.Country)
}

// FormatJSON formats the result as JSON.
func (r *CountryResult) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ListResult is an ordered set of countries.
type ListResult struct {
	Results []*CountryResult
}

// FormatText formats the list as text (one line per country).
func (l *ListResult) FormatText() string {
	lines := make([]string, 0, len(l.Results))
	for _, r := range l.Results {
		lines = append(lines, r.FormatText())
	}
	return strings.Join(lines, "\n")
}

// FormatJSON formats the list as a JSON array.
func (l *ListResult) FormatJSON() (string, error) {
	results := l.Results
	if results == nil {
		results = []*CountryResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
