package domain

// SentimentLabel is the five-point sentiment scale used to decorate words.
type SentimentLabel string

const (
	SentimentVeryNegative SentimentLabel = "Very Negative"
	SentimentNegative     SentimentLabel = "Negative"
	SentimentNeutral      SentimentLabel = "Neutral"
	SentimentPositive     SentimentLabel = "Positive"
	SentimentVeryPositive SentimentLabel = "Very Positive"
)

// ParseSentimentLabel maps a model label onto the scale. Unknown labels are Neutral.
func ParseSentimentLabel(raw string) SentimentLabel {
	switch l := SentimentLabel(raw); l {
	case SentimentVeryNegative, SentimentNegative, SentimentNeutral, SentimentPositive, SentimentVeryPositive:
		return l
	default:
		return SentimentNeutral
	}
}
