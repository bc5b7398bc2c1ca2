package store

import (
	"time"

	"screenprint-chatbot-be/internal/constant"
)

// ConversationState identifies where the dialogue currently sits.
type ConversationState string

const (
	StateWelcome          ConversationState = "WELCOME"
	StateMainMenu         ConversationState = "MAIN_MENU"
	StateWantsHuman       ConversationState = "WANTS_HUMAN"
	StateProductQuestions ConversationState = "HAS_QUESTIONS_ABOUT_PRODUCT"

	StateOrderContactFirstName  ConversationState = "ORDER_CONTACT_FIRST_NAME"
	StateOrderContactLastName   ConversationState = "ORDER_CONTACT_LAST_NAME"
	StateOrderContactEmail      ConversationState = "ORDER_CONTACT_EMAIL"
	StateOrderContactPhone      ConversationState = "ORDER_CONTACT_PHONE"
	StateOrderOrganization      ConversationState = "ORDER_ORGANIZATION"
	StateOrderType              ConversationState = "ORDER_TYPE"
	StateOrderBudget            ConversationState = "ORDER_BUDGET"
	StateOrderService           ConversationState = "ORDER_SERVICE"
	StateOrderApparel           ConversationState = "ORDER_APPAREL"
	StateOrderColor             ConversationState = "ORDER_COLOR"
	StateOrderLogo              ConversationState = "ORDER_LOGO"
	StateOrderDecorationLoc     ConversationState = "ORDER_DECORATION_LOCATION"
	StateOrderDecorationColors  ConversationState = "ORDER_DECORATION_COLORS"
	StateOrderQuantity          ConversationState = "ORDER_QUANTITY"
	StateOrderSizes             ConversationState = "ORDER_SIZES"
	StateOrderDelivery          ConversationState = "ORDER_DELIVERY"
	StateOrderDeliveryAddress   ConversationState = "ORDER_DELIVERY_ADDRESS"
	StateOrderNotes             ConversationState = "ORDER_NOTES"
	StateOrderSummary           ConversationState = "ORDER_SUMMARY"
	StateEnd                    ConversationState = "END"
)

// Intent is the closed set of labels the classifier may emit.
type Intent string

const (
	IntentGreeting   Intent = "Greeting"
	IntentQuestions  Intent = "Has Questions about Product"
	IntentPlaceOrder Intent = "Place order"
	IntentEnd        Intent = "End conversation"
	IntentWantsHuman Intent = "Wants Human"
	IntentNoMatch    Intent = "No match"
	IntentYes        Intent = "Yes"
	IntentNo         Intent = "No"
)

// ResumeSentinel is injected as the pending user text when a paused
// conversation is woken up without fresh input to consume.
const ResumeSentinel = "__RESUME__"

// Message is one turn of the conversation transcript.
type Message struct {
	Role      string    `json:"role"` // "user" | "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Order accumulates everything the quote request collects.
type Order struct {
	FirstName          string         `json:"first_name"`
	LastName           string         `json:"last_name"`
	Email              string         `json:"email"`
	Phone              string         `json:"phone"`
	Organization       string         `json:"organization"`
	OrderType          string         `json:"order_type"`
	Budget             string         `json:"budget"` // "Premium" | "Value"
	Service            string         `json:"service"`
	Apparel            string         `json:"apparel"`
	Color              string         `json:"color"`
	LogoURL            string         `json:"logo_url"`
	DecorationLocation string         `json:"decoration_location"`
	DecorationColors   string         `json:"decoration_colors"`
	Quantity           string         `json:"quantity"`
	Sizes              map[string]int `json:"sizes"`
	DeliveryOption     string         `json:"delivery_option"` // "Delivery" | "Pick Up"
	DeliveryAddress    string         `json:"delivery_address"`
	Notes              string         `json:"notes"`
}

// StepFlag tracks the two-phase lifecycle of one collection step.
type StepFlag struct {
	Shown    bool `json:"shown"`
	Complete bool `json:"complete"`
}

// Flags holds all per-session progress markers the router reads.
type Flags struct {
	FirstName        StepFlag `json:"first_name"`
	LastName         StepFlag `json:"last_name"`
	Email            StepFlag `json:"email"`
	Phone            StepFlag `json:"phone"`
	Organization     StepFlag `json:"organization"`
	OrderType        StepFlag `json:"order_type"`
	Budget           StepFlag `json:"budget"`
	Service          StepFlag `json:"service"`
	Apparel          StepFlag `json:"apparel"`
	Color            StepFlag `json:"color"`
	Logo             StepFlag `json:"logo"`
	DecorationLoc    StepFlag `json:"decoration_location"`
	DecorationColors StepFlag `json:"decoration_colors"`
	Quantity         StepFlag `json:"quantity"`
	Sizes            StepFlag `json:"sizes"`
	Delivery         StepFlag `json:"delivery"`
	Address          StepFlag `json:"address"`
	Notes            StepFlag `json:"notes"`

	MainMenuPrompted       bool   `json:"main_menu_prompted"`
	QuestionPrompted       bool   `json:"question_prompted"`
	HumanContactShown      bool   `json:"human_contact_shown"`
	AwaitingResumeDecision bool   `json:"awaiting_resume_decision"`
	OrderInterrupted       bool   `json:"order_interrupted"`
	InterruptReason        string `json:"interrupt_reason"` // "product" | "human" | "end"
	JustResumed            bool   `json:"just_resumed"`

	SummaryShown        bool  `json:"summary_shown"`
	OrderConfirmed      bool  `json:"order_confirmed"`
	PostConfirmPrompted bool  `json:"post_confirm_prompted"`
	QuoteEmailSent        *bool `json:"quote_email_sent"`
	QuoteNotificationSent *bool `json:"quote_notification_sent"`
	QuoteEventSent        *bool `json:"quote_event_sent"`

	AwaitingUpload bool   `json:"awaiting_upload"`
	UploadKey      string `json:"upload_key"`
	LogoFileID     string `json:"logo_file_id"`
	LogoViewLink   string `json:"logo_view_link"`
	LogoFilename   string `json:"logo_filename"`

	AwaitingAddress bool `json:"awaiting_address"`

	QtyNumeric   int            `json:"qty_numeric"`
	PendingSizes map[string]int `json:"pending_sizes"`

	LastIntentConfidence float64 `json:"last_intent_confidence"`
	LastIntentReasoning  string  `json:"last_intent_reasoning"`
}

// Session is the full per-conversation state held in memory.
type Session struct {
	ID        string            `json:"id"`
	State     ConversationState `json:"state"`
	Intent    Intent            `json:"intent"`
	PendingUserText string      `json:"pending_user_text"`
	History   []Message         `json:"history"`
	Order     Order             `json:"order"`
	Flags     Flags             `json:"flags"`
	Ended     bool              `json:"ended"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewSession builds a fresh session in the WELCOME state.
func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		State:     StateWelcome,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddUserMessage appends a user turn to the transcript.
func (s *Session) AddUserMessage(text string) {
	s.History = append(s.History, Message{Role: constant.ChatMessageRoleUser, Content: text, Timestamp: time.Now().UTC()})
}

// AddAssistantMessage appends an assistant turn to the transcript.
func (s *Session) AddAssistantMessage(text string) {
	s.History = append(s.History, Message{Role: constant.ChatMessageRoleAssistant, Content: text, Timestamp: time.Now().UTC()})
}

// Clone deep-copies the session so a dialogue turn can run on scratch
// state and only replace the stored session when it succeeds.
func (s *Session) Clone() *Session {
	c := *s
	if s.History != nil {
		c.History = append([]Message(nil), s.History...)
	}
	if s.Order.Sizes != nil {
		c.Order.Sizes = make(map[string]int, len(s.Order.Sizes))
		for k, v := range s.Order.Sizes {
			c.Order.Sizes[k] = v
		}
	}
	if s.Flags.PendingSizes != nil {
		c.Flags.PendingSizes = make(map[string]int, len(s.Flags.PendingSizes))
		for k, v := range s.Flags.PendingSizes {
			c.Flags.PendingSizes[k] = v
		}
	}
	c.Flags.QuoteEmailSent = cloneBool(s.Flags.QuoteEmailSent)
	c.Flags.QuoteNotificationSent = cloneBool(s.Flags.QuoteNotificationSent)
	c.Flags.QuoteEventSent = cloneBool(s.Flags.QuoteEventSent)
	return &c
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

// ResetOrder clears the collected order and every progress flag while
// keeping the session identity and transcript intact.
func (s *Session) ResetOrder() {
	s.Order = Order{}
	s.Flags = Flags{}
}
