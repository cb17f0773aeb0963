package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/youruser/jashn/internal/logger"
	"github.com/youruser/jashn/internal/quotes"
)

const (
	quoteTemperature = 0.9
	quoteMaxTokens   = 150
)

// FlexString accepts a JSON string or number; clients send counts either way.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// QuoteRequest is the body of the quote endpoint.
type QuoteRequest struct {
	Occasion       string     `json:"occasion"`
	Language       string     `json:"language"`
	IsForSelf      bool       `json:"isForSelf"`
	Subcategory    string     `json:"subcategory"`
	TargetName     string     `json:"targetName"`
	Years          FlexString `json:"years"`
	Age            FlexString `json:"age"`
	OccasionName   string     `json:"occasionName"`
	PreviousQuotes []string   `json:"previousQuotes"`
	Timestamp      FlexString `json:"timestamp"`
}

// QuoteResult is always usable: Quote holds either the generated text or the
// fallback, and Err explains why the fallback was used.
type QuoteResult struct {
	Quote    string
	Fallback bool
	Err      error
}

// GenerateQuote asks the model for a one or two line greeting.
func (s *Service) GenerateQuote(ctx context.Context, req QuoteRequest) QuoteResult {
	fallback := FallbackQuote(req)
	if !s.HasCredentials() {
		return QuoteResult{Quote: fallback, Fallback: true, Err: ErrNoCredentials}
	}

	prompt := quotePrompt(req)
	if prompt == "" {
		return QuoteResult{Quote: fallback, Fallback: true}
	}

	logger.WithFields(map[string]interface{}{
		"occasion":    req.Occasion,
		"subcategory": req.Subcategory,
		"language":    req.Language,
		"timestamp":   req.Timestamp,
	}).Debug("requesting quote")

	content, err := s.complete(ctx, prompt, quoteTemperature, quoteMaxTokens)
	if err != nil {
		logger.Warnf("quote: %v, using fallback", err)
		return QuoteResult{Quote: fallback, Fallback: true, Err: err}
	}
	quote := CleanQuote(content)
	if quote == "" {
		return QuoteResult{Quote: fallback, Fallback: true}
	}
	return QuoteResult{Quote: quote}
}

var (
	edgeQuotes = regexp.MustCompile(`^["']|["']$`)
	numbering  = regexp.MustCompile(`(?m)^\d+\.\s*`)
	bullets    = regexp.MustCompile(`(?m)^[-•]\s*`)
)

// CleanQuote strips wrapping quotes, list numbering and bullets, and keeps
// at most two non-empty lines.
func CleanQuote(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = edgeQuotes.ReplaceAllString(s, "")
	s = numbering.ReplaceAllString(s, "")
	s = bullets.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) > 2 {
		return strings.Join(lines[:2], "\n")
	}
	return s
}

func avoidInstruction(previous []string) string {
	if len(previous) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\nIMPORTANT: Generate a UNIQUE quote. Do NOT repeat or closely resemble these previous quotes:\n")
	for i, q := range previous {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s", i+1, q)
	}
	b.WriteString("\n\nGenerate something completely different with different words, tone, and structure.")
	return b.String()
}

// isHindi is strict: requests without a language get English text.
func isHindi(lang string) bool {
	return strings.EqualFold(strings.TrimSpace(lang), string(quotes.Hindi))
}

// quotePrompt returns "" when nothing describes the occasion.
func quotePrompt(req QuoteRequest) string {
	hindi := isHindi(req.Language)
	lang := "English"
	if hindi {
		lang = "Hindi (Devanagari script)"
	}
	avoid := avoidInstruction(req.PreviousQuotes)
	occasion := quotes.Occasion(req.Occasion)

	if req.IsForSelf {
		switch occasion {
		case quotes.Birthday:
			age := string(req.Age)
			if age == "" {
				age = string(req.Years)
			}
			return selfBirthdayPrompt(age, hindi) + avoid
		case quotes.Relationship:
			if hindi {
				return "रिलेशनशिप एनिवर्सरी पर खुद के लिए 1-2 पंक्तियाँ हिंदी (देवनागरी) में लिखें। व्यक्ति अपने और अपने साथी के बारे में लिख रहा है। संदेश में: भगवान का धन्यवाद इतने अच्छे साथी के लिए, रिश्ता हमेशा अच्छा रहे की कामना और साथ में सुखी जीवन की प्रार्थना। केवल संदेश लिखें।" + avoid
			}
			return "Write exactly 1-2 lines in English for someone writing about themselves and their partner on their relationship anniversary. The tone is personal and grateful. The message should: thank God for such a wonderful partner, pray that their relationship continues to be wonderful, and wish for a happy and peaceful life together. Only the message, no title." + avoid
		case quotes.Marriage:
			if hindi {
				return "शादी की सालगिरह पर खुद के लिए 1-2 पंक्तियाँ हिंदी (देवनागरी) में लिखें। व्यक्ति अपने और अपने जीवनसाथी के बारे में लिख रहा है। संदेश में: भगवान का धन्यवाद इतने अच्छे जीवनसाथी के लिए, विवाह हमेशा सुखी रहे की कामना और आनंदमय जीवन की प्रार्थना। केवल संदेश लिखें।" + avoid
			}
			return "Write exactly 1-2 lines in English for someone writing about themselves and their spouse on their marriage anniversary. The tone is personal and grateful. The message should: thank God for such a wonderful life partner, pray that their marriage continues to be wonderful, and wish for a happy and blissful life together. Only the message, no title." + avoid
		}
	} else {
		switch occasion {
		case quotes.Birthday:
			return fmt.Sprintf("Write exactly 2 lines birthday wish in %s. Use placeholder [Name]. Third-person tone. No extra text, no numbering.", lang) + avoid
		case quotes.Marriage, quotes.Relationship:
			kind := "relationship anniversary"
			if occasion == quotes.Marriage {
				kind = "marriage anniversary"
			}
			return fmt.Sprintf("Write exactly 2 lines %s wish in %s. Use [Name] for the person and [Years] for years. Congratulating a couple. No extra text, no numbering.", kind, lang) + avoid
		}
	}

	switch quotes.Occasion(req.Subcategory) {
	case quotes.Jyanti:
		return fmt.Sprintf("Write exactly 2 lines tribute for Jayanti in %s. Use placeholder [Naam] for the person's name. Reverential tone. No extra text.", lang) + avoid
	case quotes.Divas:
		return fmt.Sprintf("Write exactly 2 lines message for special day in %s. Use placeholder [Divas ka Naam]. Awareness tone. No extra text.", lang) + avoid
	case quotes.Festivals:
		return fmt.Sprintf("Write exactly 2 lines festival greeting in %s. Use placeholder [Festival Name]. Celebratory tone. No extra text.", lang) + avoid
	case quotes.MarriageDateFix:
		voice := `Third-person: congratulating the couple.`
		if req.IsForSelf {
			voice = `First-person: "We are announcing our wedding".`
		}
		return fmt.Sprintf("Write exactly 2 lines wedding date announcement in %s. Use [Name 1], [Name 2], [Date]. %s Formal tone. No extra text.", lang, voice) + avoid
	case quotes.NewMembers:
		voice := `Third-person: congratulating the family.`
		if req.IsForSelf {
			voice = `First-person: "Welcoming to our family".`
		}
		return fmt.Sprintf("Write exactly 2 lines new family member announcement in %s. Use [Date], [Time], [Father Name], [Mother Name]. %s Joyful tone. No extra text.", lang, voice) + avoid
	}
	return ""
}

func selfBirthdayPrompt(age string, hindi bool) string {
	if hindi {
		ordinal, today := "", ""
		if age != "" {
			ordinal = age + "वाँ "
			today = age + "वाँ"
		}
		return ordinal + "जन्मदिन पर खुद के लिए 1-2 पंक्तियाँ लिखें जो हिंदी (देवनागरी) में हों। व्यक्ति अपने बारे में लिख रहा है। संदेश में: आज " + today + " जन्मदिन है, भगवान से पिछली गलतियों की क्षमा मांगें, आगे अच्छा करने का संकल्प लें और जीवन में अच्छाई की कामना करें। केवल संदेश लिखें, कोई शीर्षक या नंबर नहीं।"
	}
	nth := ""
	if age != "" {
		nth = " " + age + "th"
	}
	return "Write exactly 1-2 lines in English for someone writing about themselves on their" + nth + " birthday. The tone is personal and prayerful. The message should: mention it is their" + nth + " birthday today, ask God for forgiveness for past mistakes, express commitment to doing better, and pray for good things ahead. Only the message, no title or numbering."
}

// FallbackQuote is the fixed greeting used when generation is unavailable.
func FallbackQuote(req QuoteRequest) string {
	hindi := isHindi(req.Language)
	pick := func(hi, en string) string {
		if hindi {
			return hi
		}
		return en
	}
	occasion := quotes.Occasion(req.Occasion)

	if req.IsForSelf {
		switch occasion {
		case quotes.Birthday:
			return pick("आज मेरा जन्मदिन है। हे प्रभु, मेरी गलतियों को माफ करें और आगे मुझे अच्छे मार्ग पर चलने की शक्ति दें।",
				"Today is my birthday. Dear God, please forgive my mistakes and give me the strength to walk on the right path.")
		case quotes.Relationship:
			return pick("आज हमारी रिलेशनशिप एनिवर्सरी है। हे भगवान, इतने अच्छे साथी के लिए धन्यवाद, हमारा रिश्ता सदा प्रेम से भरा रहे।",
				"Today is our relationship anniversary. Thank you, God, for such a wonderful partner, may our bond always be filled with love.")
		case quotes.Marriage:
			return pick("आज हमारी विवाह वर्षगांठ है। हे ईश्वर, इतने अच्छे जीवनसाथी के लिए धन्यवाद, हमारा वैवाहिक जीवन सदा सुखी रहे।",
				"Today is our wedding anniversary. Thank you, God, for such a wonderful life partner, may our marriage always remain happy.")
		}
	}

	switch occasion {
	case quotes.Birthday:
		return pick("[Name] को जन्मदिन की हार्दिक शुभकामनाएं।\nआपका जीवन खुशियों से भरा रहे।",
			"Warmest birthday wishes to [Name].\nMay your life be filled with happiness.")
	case quotes.Marriage, quotes.Relationship:
		return pick("[Name] को [Years] वर्षों की यात्रा पर बधाई।\nयह प्यार हमेशा बना रहे।",
			"Congratulations to [Name] on [Years] years together.\nMay this love last forever.")
	}

	switch quotes.Occasion(req.Subcategory) {
	case quotes.Jyanti:
		return pick("[Naam] की जयंती पर उनके आदर्शों को नमन।\nउनका जीवन हमारे लिए प्रेरणा है।",
			"Salutations to [Naam] on their Jayanti.\nTheir life is an inspiration for us.")
	case quotes.Divas:
		return pick("[Divas ka Naam] पर जागरूकता का संदेश।\nआइए इसे सार्थक बनाएं।",
			"Awareness message on [Divas ka Naam].\nLet us make it meaningful.")
	case quotes.Festivals:
		return pick("[Festival Name] की हार्दिक शुभकामनाएं।\nयह त्योहार खुशियां लाए।",
			"Heartfelt wishes on [Festival Name].\nMay this festival bring joy.")
	case quotes.MarriageDateFix:
		return pick("[Name 1] और [Name 2] के विवाह की तिथि [Date] निश्चित हुई।\nहार्दिक शुभकामनाएं।",
			"Wedding date of [Name 1] and [Name 2] fixed on [Date].\nBest wishes.")
	case quotes.NewMembers:
		return pick("[Date] को [Time] पर एक नए सदस्य का स्वागत।\nपरिवार को बधाई।",
			"Welcoming a new member on [Date] at [Time].\nCongratulations to the family.")
	}

	return pick("इस खास अवसर पर ढेर सारी शुभकामनाएं।\nखुशियां हमेशा बनी रहें।",
		"Warmest wishes on this special occasion.\nMay happiness always remain.")
}
