package quotes

import "strings"

// Placeholder tokens understood by Fill.
const (
	TokenName       = "[Name]"
	TokenYears      = "[Years]"
	TokenAge        = "[Age]"
	TokenNaam       = "[Naam]"
	TokenDivasName  = "[Divas ka Naam]"
	TokenFestival   = "[Festival Name]"
	TokenDate       = "[Date]"
	TokenTime       = "[Time]"
	TokenFatherName = "[Father Name]"
	TokenMotherName = "[Mother Name]"
	TokenName1      = "[Name 1]"
	TokenName2      = "[Name 2]"
)

var allTokens = []string{
	TokenName, TokenYears, TokenAge, TokenNaam, TokenDivasName, TokenFestival,
	TokenDate, TokenTime, TokenFatherName, TokenMotherName, TokenName1, TokenName2,
}

// Values maps a token to its replacement.
type Values map[string]string

// Fill replaces every known token that has a non-empty value. Tokens with
// no value stay in the text so the gap is visible.
func Fill(template string, v Values) string {
	var pairs []string
	for _, tok := range allTokens {
		if val := v[tok]; val != "" {
			pairs = append(pairs, tok, val)
		}
	}
	if len(pairs) == 0 {
		return template
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
