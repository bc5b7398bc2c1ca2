package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	WelcomeMessage = "Hello! Welcome to Screen Printing NW. I can help you get a quote for custom apparel, answer questions about our products, or connect you with a team member. What can I do for you today?"

	MainMenuMessage = "What would you like to do?\n1. Get a quote for custom apparel\n2. Ask a question about our products\n3. Talk to a human\n\nYou can also just tell me what you need."

	HumanContactMessage = "No problem! Here is how you can reach our team directly:\n\nPhone: 425.303.3381\nEmail: info@screenprintingnw.com\nHours: Monday to Friday, 8am to 5pm"

	QuestionIntroMessage = "Happy to help with product questions! Ask me anything about our apparel, printing, or embroidery. Say \"done\" or \"back\" when you want to return to the menu."

	GoodbyeMessage = "Thanks for chatting with Screen Printing NW. Have a great day!"

	QuoteEmailSubject = "Your Screen Printing NW Quote Request Summary"
)

// IntentClassifierPrompt instructs the model to label a user message with
// exactly one intent from the closed set and reply as strict JSON.
const IntentClassifierPrompt = `You are an intent classifier for a custom apparel quote chatbot.

Classify the user's message into EXACTLY ONE of these intents:
- "Greeting": hello, hi, good morning, small talk openers
- "Has Questions about Product": asking about products, pricing, materials, printing, embroidery
- "Place order": wants a quote, wants to order custom apparel
- "End conversation": goodbye, wants to stop, done talking
- "Wants Human": wants to talk to a person, agent, representative
- "Yes": affirmative answer to a question
- "No": negative answer to a question
- "No match": none of the above

Respond ONLY with JSON in this exact shape:
{"intent": "<one of the intents above>", "confidence": <0.0-1.0>, "reasoning": "<one short sentence>"}`

// ChangeRequestPrompt asks the model to extract field edits from free text
// at the order summary, constrained to the editable field names. One message
// may change several fields at once.
const ChangeRequestPrompt = `The user is reviewing their quote request summary and may want to change one or more fields.

Editable fields: first_name, last_name, email, phone, organization, order_type, budget, service, apparel, color, decoration_location, decoration_colors, quantity, sizes, delivery_option, delivery_address, notes

If the message requests changes, respond ONLY with a JSON array, one entry per change:
[{"field": "<field name from the list>", "new_value": "<the new value>"}]

If the message does not request a change, respond ONLY with:
[]`

// ProductCatalog maps each apparel type to its available garment colors.
var ProductCatalog = map[string][]string{
	"t-shirt": {"white", "black", "navy", "red", "gray"},
	"hoodie":  {"black", "gray", "navy"},
	"cap":     {"black", "white", "navy", "khaki"},
	"polo":    {"white", "black", "navy"},
}

// SizeAliases normalizes the many ways customers write garment sizes.
var SizeAliases = map[string]string{
	"xs":     "xs",
	"s":      "s",
	"sm":     "s",
	"small":  "s",
	"m":      "m",
	"med":    "m",
	"medium": "m",
	"l":      "l",
	"lg":     "l",
	"large":  "l",
	"xl":     "xl",
	"xlarge": "xl",
	"2xl":    "2xl",
	"xxl":    "2xl",
	"2x":     "2xl",
	"3xl":    "3xl",
	"xxxl":   "3xl",
	"3x":     "3xl",
}

// SizeOrder is the canonical rendering order for size breakdowns.
var SizeOrder = []string{"xs", "s", "m", "l", "xl", "2xl", "3xl"}

// OrderTypes are the recognized reasons for a custom apparel order.
var OrderTypes = []string{
	"Corporate hiring",
	"School/spirit wear",
	"Sports team",
	"Retail resale",
	"Employee uniforms",
	"Other",
}

// DecorationLocations are the placements a logo can be applied to.
var DecorationLocations = []string{
	"Full Back",
	"Full Front",
	"Left Chest",
	"Right Chest",
	"Left Sleeve",
	"Right Sleeve",
}

// BudgetOptions are the two quality tiers customers choose between.
var BudgetOptions = []string{"Premium", "Value"}

// ServiceOptions are the decoration methods on offer.
var ServiceOptions = []string{"Screen Printing", "Embroidery"}

// DeliveryOptions are the fulfilment choices.
var DeliveryOptions = []string{"Delivery", "Pick Up"}

// Interrupt keyword groups checked mid-order, highest precedence first.
var (
	ProductKeywords = []string{"product", "question", "price", "pricing", "cost", "shirt", "hoodie", "embroidery", "screen print"}
	HumanKeywords   = []string{"human", "agent", "representative", "talk to a person", "call me"}
	EndKeywords     = []string{"end", "cancel", "stop", "goodbye", "bye", "finish chat"}
)

// QAExitKeywords return the user to the menu from product Q&A.
var QAExitKeywords = []string{"done", "finished", "back", "menu"}

// OrderKeywords restart the flow after a conversation has ended.
var OrderKeywords = []string{"order", "quote", "restart", "start", "begin"}

// ConfirmKeywords accept the order summary as final.
var ConfirmKeywords = []string{"confirm", "yes", "looks good", "correct", "submit", "accept"}

// CancelKeywords discard the in-progress order at the summary.
var CancelKeywords = []string{"cancel", "discard", "start over", "nevermind", "never mind"}

// UploadExtensions are the file types accepted for logo uploads.
var UploadExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".svg":  true,
	".pdf":  true,
	".ai":   true,
	".eps":  true,
	".psd":  true,
}
