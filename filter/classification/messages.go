package classification

// The templates below are returned verbatim to users. Renderers key their styling off the emoji markers
// (👋 and 🤔 render as info, ⚠️ as a warning) and the formatter classifies the category lines, so the
// wording and markers must not drift.
var templates = map[Classification]string{
	TooShort:        "Hi there! 👋\n\nYour message seems a bit short. Could you please describe your question in a little more detail? I'm here to help!",
	TooLong:         "Hi! 👋\n\nYour message is quite long. Could you please try to keep it under 5000 characters? Feel free to break it into smaller questions if needed!",
	Spam:            "Hmm... 🤔\n\nI couldn't understand your message. Could you please write a clear question? I'm here to help with government services and essential information!",
	Inappropriate:   "I appreciate you reaching out! 😊\n\nHowever, I'm specifically designed to help with essential services like:\n\n🏥 Healthcare and medical support\n🌾 Agriculture and farming assistance\n💰 Banking and financial services\n🏛️ Government schemes and welfare\n📚 Education and scholarships\n📋 Legal documentation help\n\nHow can I assist you with any of these topics today?",
	OffTopic:        "Thanks for your question! 😊\n\nI noticed this might be about entertainment, shopping, or general topics. While I'd love to chat about everything, I'm specially trained to help with:\n\n🏥 Healthcare - Finding doctors, getting insurance, medical schemes\n🌾 Agriculture - Crop advice, farming loans, subsidies\n💰 Finance - Opening bank accounts, getting loans, financial planning\n🏛️ Government Schemes - PM-JAY, PM-KISAN, scholarships, and more\n📚 Education - School admission, scholarships, training programs\n🌦️ Climate & Disasters - Weather alerts, emergency support\n\nWhat can I help you with from these areas?",
	NoDomainContent: "Hello! 👋 I'm SahaayAI, your friendly assistant for essential services.\n\nI'm here to make your life easier by helping with:\n\n🏥 Healthcare - \"How do I get Ayushman Bharat card?\"\n🌾 Agriculture - \"What loans are available for farmers?\"\n💰 Finance - \"How can I open a Jan Dhan account?\"\n🏛️ Government Schemes - \"Am I eligible for PM-KISAN?\"\n📚 Education - \"What scholarships are available for students?\"\n🌦️ Climate Support - \"How to get flood relief assistance?\"\n\nTry asking me something like the examples above, and I'll do my best to help! 😊",
	Accepted:        "",
}

// Message - The user-facing explanation for the classification. Empty for Accepted and unknown classifications.
func (c Classification) Message() string {
	return templates[c]
}
