package classification

type Classification string

// TooShort - The message has too few characters to be a question.
const TooShort Classification = "too_short"

// TooLong - The message exceeds the maximum accepted length.
const TooLong Classification = "too_long"

// Spam - The message repeats a character excessively, or contains nothing written in a supported script.
const Spam Classification = "spam"

// Inappropriate - The message contains blocked terms (adult content, weapons, drugs, fraud, gambling, self-harm).
const Inappropriate Classification = "inappropriate"

// OffTopic - The message is about entertainment, sports, shopping or another theme the assistant does not serve.
const OffTopic Classification = "off_topic"

// NoDomainContent - The message does not mention anything the assistant can help with.
const NoDomainContent Classification = "no_domain_content"

// Accepted - The message passed every filter and may be forwarded to the backend.
const Accepted Classification = "accepted"

var all = []Classification{TooShort, TooLong, Spam, Inappropriate, OffTopic, NoDomainContent, Accepted}

func (c Classification) String() string {
	return string(c)
}

// IsRejection - True for every known classification except Accepted.
func (c Classification) IsRejection() bool {
	return c != Accepted && c.IsKnown()
}

func (c Classification) IsKnown() bool {
	for _, known := range all {
		if c == known {
			return true
		}
	}
	return false
}

// All - Every known classification, rejections first and Accepted last.
func All() []Classification {
	return append([]Classification(nil), all...)
}
