package flow

import (
	"fmt"
	"strconv"
	"strings"

	"screenprint-chatbot-be/internal/constant"
	"screenprint-chatbot-be/pkg/flow/parse"
	"screenprint-chatbot-be/pkg/store"
)

// Step node IDs, one per collected field.
const (
	NodeContactFirstName NodeID = "contact_first_name"
	NodeContactLastName  NodeID = "contact_last_name"
	NodeContactEmail     NodeID = "contact_email"
	NodeContactPhone     NodeID = "contact_phone"
	NodeOrganization     NodeID = "organization"
	NodeOrderType        NodeID = "order_type"
	NodeBudget           NodeID = "budget"
	NodeService          NodeID = "service"
	NodeApparel          NodeID = "apparel"
	NodeColor            NodeID = "color"
	NodeLogo             NodeID = "logo"
	NodeDecorationLoc    NodeID = "decoration_location"
	NodeDecorationColors NodeID = "decoration_colors"
	NodeQuantity         NodeID = "quantity"
	NodeSizes            NodeID = "sizes"
	NodeDelivery         NodeID = "delivery"
	NodeAddress          NodeID = "delivery_address"
	NodeNotes            NodeID = "notes"
)

func numberedList(options []string) string {
	var b strings.Builder
	for i, opt := range options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
	}
	return strings.TrimRight(b.String(), "\n")
}

// applyContact merges extracted contact details into the order. Customers
// often paste name, email and phone in one message, so any step that sees
// a detail records it and marks that step done.
func applyContact(sess *store.Session, c parse.Contact) {
	o := &sess.Order
	f := &sess.Flags
	if c.FirstName != "" && o.FirstName == "" {
		o.FirstName = c.FirstName
		f.FirstName.Complete = true
	}
	if c.LastName != "" && o.LastName == "" {
		o.LastName = c.LastName
		f.LastName.Complete = true
	}
	if c.Email != "" && o.Email == "" {
		o.Email = c.Email
		f.Email.Complete = true
	}
	if c.Phone != "" && o.Phone == "" {
		o.Phone = c.Phone
		f.Phone.Complete = true
	}
}

// orderSteps defines the collection sequence the router scans.
func orderSteps() []StepConfig {
	return []StepConfig{
		{
			ID:    NodeContactFirstName,
			State: store.StateOrderContactFirstName,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.FirstName },
			Prompt: func(*store.Session) string {
				return "Great, let's get your quote started! What's your name? You can also share your email and phone number in the same message."
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				applyContact(sess, parse.ContactDetails(text))
				if sess.Order.FirstName == "" {
					return "Sorry, I didn't catch your name. What should I call you?", false
				}
				return "", true
			},
		},
		{
			ID:    NodeContactLastName,
			State: store.StateOrderContactLastName,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.LastName },
			Prompt: func(sess *store.Session) string {
				return fmt.Sprintf("Thanks, %s! And your last name?", sess.Order.FirstName)
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				applyContact(sess, parse.ContactDetails(text))
				if sess.Order.LastName == "" {
					return "Sorry, what's your last name?", false
				}
				return "", true
			},
		},
		{
			ID:    NodeContactEmail,
			State: store.StateOrderContactEmail,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.Email },
			Prompt: func(*store.Session) string {
				return "What email address should we send your quote to?"
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				applyContact(sess, parse.ContactDetails(text))
				if sess.Order.Email == "" {
					return "That doesn't look like an email address. Could you re-enter it?", false
				}
				return "", true
			},
		},
		{
			ID:    NodeContactPhone,
			State: store.StateOrderContactPhone,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.Phone },
			Prompt: func(*store.Session) string {
				return "And the best phone number to reach you?"
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				applyContact(sess, parse.ContactDetails(text))
				if sess.Order.Phone == "" {
					return "That doesn't look like a phone number. Could you re-enter it?", false
				}
				return "", true
			},
		},
		{
			ID:    NodeOrganization,
			State: store.StateOrderOrganization,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.Organization },
			Prompt: func(*store.Session) string {
				return "What company, school, or organization is this order for? Say \"personal\" if it's just for you."
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				sess.Order.Organization = strings.TrimSpace(text)
				return "", true
			},
		},
		{
			ID:    NodeOrderType,
			State: store.StateOrderType,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.OrderType },
			Prompt: func(*store.Session) string {
				return "What kind of order is this?\n" + numberedList(constant.OrderTypes)
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				choice := parse.Choice(text, constant.OrderTypes)
				if choice == "" {
					return "Please pick one of the listed order types, by number or name.", false
				}
				sess.Order.OrderType = choice
				return "", true
			},
		},
		{
			ID:    NodeBudget,
			State: store.StateOrderBudget,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.Budget },
			Prompt: func(*store.Session) string {
				return "Are you looking for Premium quality or Value pricing?"
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				choice := parse.Choice(text, constant.BudgetOptions)
				if choice == "" {
					return "Please choose Premium or Value.", false
				}
				sess.Order.Budget = choice
				return "", true
			},
		},
		{
			ID:    NodeService,
			State: store.StateOrderService,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.Service },
			Prompt: func(*store.Session) string {
				return "Would you like Screen Printing or Embroidery?"
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				choice := parse.Choice(text, constant.ServiceOptions)
				if choice == "" {
					return "Please choose Screen Printing or Embroidery.", false
				}
				sess.Order.Service = choice
				return "", true
			},
			ProductAnswers: true,
		},
		{
			ID:    NodeApparel,
			State: store.StateOrderApparel,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.Apparel },
			Prompt: func(*store.Session) string {
				return "What would you like to customize? We offer t-shirts, hoodies, polos, and caps."
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				apparel := parse.Apparel(text)
				if apparel == "" {
					return "We offer t-shirts, hoodies, polos, and caps. Which would you like?", false
				}
				sess.Order.Apparel = apparel
				return "", true
			},
			ProductAnswers: true,
		},
		{
			ID:    NodeColor,
			State: store.StateOrderColor,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.Color },
			Prompt: func(sess *store.Session) string {
				colors := constant.ProductCatalog[sess.Order.Apparel]
				return fmt.Sprintf("What garment color? For %ss we have: %s.", sess.Order.Apparel, strings.Join(colors, ", "))
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				color := parse.Color(text, sess.Order.Apparel)
				if color == "" {
					colors := constant.ProductCatalog[sess.Order.Apparel]
					return fmt.Sprintf("Sorry, %ss come in: %s. Which would you like?", sess.Order.Apparel, strings.Join(colors, ", ")), false
				}
				sess.Order.Color = color
				return "", true
			},
			ProductAnswers: true,
		},
		{
			ID:    NodeLogo,
			State: store.StateOrderLogo,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.Logo },
			Prompt: func(sess *store.Session) string {
				sess.Flags.AwaitingUpload = true
				sess.Flags.UploadKey = "logo"
				return "Please upload your logo or artwork using the upload button (PNG, JPG, SVG, PDF, AI, EPS, or PSD). Say \"skip\" if you don't have one handy."
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				lower := strings.ToLower(text)
				if parse.HasKeyword(lower, []string{"skip", "later", "none"}) {
					sess.Flags.AwaitingUpload = false
					return "No problem, you can email the artwork to us later.", true
				}
				if sess.Order.LogoURL != "" {
					sess.Flags.AwaitingUpload = false
					return fmt.Sprintf("Got your file %s, thanks!", sess.Flags.LogoFilename), true
				}
				return "I haven't received a file yet. Use the upload button, or say \"skip\".", false
			},
		},
		{
			ID:    NodeDecorationLoc,
			State: store.StateOrderDecorationLoc,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.DecorationLoc },
			Prompt: func(*store.Session) string {
				return "Where should the design go?\n" + numberedList(constant.DecorationLocations)
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				choice := parse.Choice(text, constant.DecorationLocations)
				if choice == "" {
					return "Please pick one of the listed placements, by number or name.", false
				}
				sess.Order.DecorationLocation = choice
				return "", true
			},
		},
		{
			ID:    NodeDecorationColors,
			State: store.StateOrderDecorationColors,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.DecorationColors },
			Prompt: func(*store.Session) string {
				return "What colors are in your design? A rough count is fine, e.g. \"2 colors, red and white\"."
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				sess.Order.DecorationColors = strings.TrimSpace(text)
				return "", true
			},
			ProductAnswers: true,
		},
		{
			ID:    NodeQuantity,
			State: store.StateOrderQuantity,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.Quantity },
			Prompt: func(*store.Session) string {
				return "How many pieces do you need in total?"
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				qty, ok := parse.Quantity(text)
				if !ok || qty <= 0 {
					return "Roughly how many pieces? A number or a range both work.", false
				}
				sess.Flags.QtyNumeric = qty
				sess.Order.Quantity = strconv.Itoa(qty)
				return "", true
			},
		},
		{
			ID:    NodeSizes,
			State: store.StateOrderSizes,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.Sizes },
			Prompt: func(*store.Session) string {
				return "How should that break down by size? For example: \"S:10, M:15, L:5\". Sizes run XS to 3XL."
			},
			Handle:         handleSizes,
			ProductAnswers: true,
		},
		{
			ID:    NodeDelivery,
			State: store.StateOrderDelivery,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.Delivery },
			Prompt: func(*store.Session) string {
				return "Would you like Delivery, or will you Pick Up from our Everett shop?"
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				lower := strings.ToLower(text)
				choice := parse.Choice(text, constant.DeliveryOptions)
				if choice == "" {
					switch {
					case strings.Contains(lower, "deliver"), strings.Contains(lower, "ship"):
						choice = "Delivery"
					case strings.Contains(lower, "pick"), strings.Contains(lower, "collect"):
						choice = "Pick Up"
					}
				}
				if choice == "" {
					return "Please choose Delivery or Pick Up.", false
				}
				sess.Order.DeliveryOption = choice
				sess.Flags.AwaitingAddress = choice == "Delivery"
				return "", true
			},
		},
		{
			ID:    NodeAddress,
			State: store.StateOrderDeliveryAddress,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.Address },
			Prompt: func(*store.Session) string {
				return "What address should we deliver to?"
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				sess.Order.DeliveryAddress = strings.TrimSpace(text)
				sess.Flags.AwaitingAddress = false
				return "", true
			},
		},
		{
			ID:    NodeNotes,
			State: store.StateOrderNotes,
			Flag:  func(f *store.Flags) *store.StepFlag { return &f.Notes },
			Prompt: func(*store.Session) string {
				return "Almost done! Anything else we should know about your order? Say \"no\" if not."
			},
			Handle: func(sess *store.Session, text string) (string, bool) {
				lower := strings.ToLower(strings.TrimSpace(text))
				if lower == "no" || lower == "none" || lower == "nope" || lower == "nothing" {
					sess.Order.Notes = ""
				} else {
					sess.Order.Notes = strings.TrimSpace(text)
				}
				return "", true
			},
		},
	}
}

// handleSizes parses the size breakdown and reconciles it with the stated
// quantity. A mismatch asks the customer whether the sizes total wins.
func handleSizes(sess *store.Session, text string) (string, bool) {
	f := &sess.Flags

	if f.PendingSizes != nil {
		lower := strings.ToLower(text)
		yes, ok := parse.YesNo(text)
		useTotal := strings.Contains(lower, "use sizes total") || strings.Contains(lower, "sizes total") || (ok && yes)
		if useTotal {
			total := parse.SizesTotal(f.PendingSizes)
			sess.Order.Sizes = f.PendingSizes
			sess.Order.Quantity = strconv.Itoa(total)
			f.QtyNumeric = total
			f.PendingSizes = nil
			return fmt.Sprintf("Got it, I've updated the quantity to %d.", total), true
		}
		if ok && !yes {
			f.PendingSizes = nil
			return "Okay, let's try again. How should the order break down by size?", false
		}
		return fmt.Sprintf("The sizes you gave add up to %d, but the quantity is %d. Say \"use sizes total\" to update the quantity, or \"no\" to re-enter the sizes.", parse.SizesTotal(f.PendingSizes), f.QtyNumeric), false
	}

	sizes := parse.Sizes(text)
	if sizes == nil {
		return "I couldn't read that breakdown. Try something like \"S:10, M:15, L:5\".", false
	}

	total := parse.SizesTotal(sizes)
	if f.QtyNumeric > 0 && total != f.QtyNumeric {
		f.PendingSizes = sizes
		return fmt.Sprintf("Those sizes add up to %d, but you mentioned %d pieces. Should I use the sizes total of %d?", total, f.QtyNumeric, total), false
	}

	sess.Order.Sizes = sizes
	if f.QtyNumeric == 0 {
		f.QtyNumeric = total
		sess.Order.Quantity = strconv.Itoa(total)
	}
	return "", true
}
