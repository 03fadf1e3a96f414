package types

import "fmt"

// Sentiment represents the aggregate tone detected in meeting content
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// AllSentiments returns all valid sentiments
func AllSentiments() []Sentiment {
	return []Sentiment{
		SentimentPositive,
		SentimentNeutral,
		SentimentNegative,
	}
}

// IsValid checks if the sentiment is valid
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive,
		SentimentNeutral,
		SentimentNegative:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sentiment
func (s Sentiment) String() string {
	return string(s)
}

// ParseSentiment parses a string into a Sentiment
func ParseSentiment(s string) (Sentiment, error) {
	sentiment := Sentiment(s)
	if !sentiment.IsValid() {
		return "", fmt.Errorf("invalid sentiment: %s", s)
	}
	return sentiment, nil
}
