package flow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"screenprint-chatbot-be/internal/constant"
	"screenprint-chatbot-be/pkg/flow/parse"
	"screenprint-chatbot-be/pkg/intent"
	"screenprint-chatbot-be/pkg/store"
)

const summaryInstructions = "Reply \"confirm\" to submit, ask me to change anything (e.g. \"change color to navy\"), or say \"cancel\" to discard."

// runSummary reviews the finished order, applies edits, and submits on
// confirmation.
func (e *Engine) runSummary(ctx context.Context, sess *store.Session, out *reply) NodeID {
	sess.State = store.StateOrderSummary
	text := sess.PendingUserText
	if text == store.ResumeSentinel {
		sess.PendingUserText = ""
		text = ""
	}

	if !sess.Flags.SummaryShown {
		sess.Flags.SummaryShown = true
		sess.PendingUserText = ""
		out.say(RenderSummary(sess))
		out.say(summaryInstructions)
		return NodePause
	}

	if text == "" {
		return NodePause
	}
	sess.PendingUserText = ""

	if sess.Flags.OrderConfirmed {
		return e.runPostConfirm(sess, text, out)
	}

	lower := strings.ToLower(text)
	switch {
	case parse.HasKeyword(lower, constant.ConfirmKeywords):
		return e.confirmOrder(ctx, sess, out)

	case parse.HasKeyword(lower, constant.CancelKeywords):
		sess.ResetOrder()
		sess.State = store.StateMainMenu
		out.say("No problem, I've discarded that quote request.")
		out.say(constant.MainMenuMessage)
		return NodePause

	default:
		reqs, ok := e.changes.Parse(ctx, text)
		if !ok {
			out.say("Sorry, I didn't catch that. " + summaryInstructions)
			return NodePause
		}
		for _, req := range reqs {
			msg, applied := e.applyChange(sess, req)
			if applied {
				e.logger.Printf("[SUMMARY] change accepted: %s -> %q", req.Field, req.NewValue)
			} else {
				e.logger.Printf("[SUMMARY] change dropped: %s -> %q", req.Field, req.NewValue)
			}
			out.say(msg)
		}
		if !sess.Flags.SummaryShown {
			// An edit reopened a step, let the router re-ask it.
			return NodeOrderRouter
		}
		out.say(RenderSummary(sess))
		out.say(summaryInstructions)
		return NodePause
	}
}

// confirmOrder submits the quote exactly once. The email and the event
// each record their outcome so a repeated confirm cannot resend.
func (e *Engine) confirmOrder(ctx context.Context, sess *store.Session, out *reply) NodeID {
	f := &sess.Flags

	body := EmailBody(RenderSummary(sess))
	if f.QuoteEmailSent == nil {
		sent := e.mailer.Send(sess.Order.Email, constant.QuoteEmailSubject, body)
		f.QuoteEmailSent = &sent
	}
	// The shop-inbox copy is tracked separately, so a failed customer
	// send never blocks it.
	if f.QuoteNotificationSent == nil {
		sent := e.mailer.Notify(sess.Order.Email, body)
		f.QuoteNotificationSent = &sent
	}
	if f.QuoteEventSent == nil {
		err := e.publisher.QuoteConfirmed(ctx, sess.ID, sess.Order)
		if err != nil {
			e.logger.Printf("[WARN] quote event publish failed: %v", err)
		}
		sent := err == nil
		f.QuoteEventSent = &sent
	}

	f.OrderConfirmed = true
	f.PostConfirmPrompted = true

	out.say("Your quote request has been submitted! Our team will review it and get back to you within one business day.")
	if *f.QuoteEmailSent {
		out.say(fmt.Sprintf("A copy of the summary is on its way to %s.", sess.Order.Email))
	} else {
		out.say("I couldn't send the summary email just now, but your request is in and our team will follow up.")
	}
	out.say("Would you like to start another quote, or end the chat?")
	return NodePause
}

// runPostConfirm handles the "another quote or end?" question after a
// submitted order.
func (e *Engine) runPostConfirm(sess *store.Session, text string, out *reply) NodeID {
	lower := strings.ToLower(text)
	switch {
	case parse.HasKeyword(lower, []string{"another", "again", "new"}) || parse.HasKeyword(lower, constant.OrderKeywords):
		sess.ResetOrder()
		return NodeOrderRouter
	case parse.HasKeyword(lower, []string{"end", "no", "done", "goodbye", "bye", "stop"}):
		return NodeEnd
	default:
		out.say("Should I start another quote, or end the chat?")
		return NodePause
	}
}

// applyChange validates one summary edit against the catalog and option
// lists. Invalid values are dropped with an explanation.
func (e *Engine) applyChange(sess *store.Session, req intent.ChangeRequest) (string, bool) {
	o := &sess.Order
	f := &sess.Flags
	v := strings.TrimSpace(req.NewValue)

	switch req.Field {
	case "first_name":
		o.FirstName = v
	case "last_name":
		o.LastName = v
	case "organization":
		o.Organization = v
	case "notes":
		o.Notes = v
	case "decoration_colors":
		o.DecorationColors = v

	case "email":
		email := parse.ContactDetails(v).Email
		if email == "" {
			return fmt.Sprintf("%q doesn't look like an email address, so I've kept the old one.", v), false
		}
		o.Email = email

	case "phone":
		phone := parse.ContactDetails(v).Phone
		if phone == "" {
			return fmt.Sprintf("%q doesn't look like a phone number, so I've kept the old one.", v), false
		}
		o.Phone = phone

	case "order_type":
		choice := parse.Choice(v, constant.OrderTypes)
		if choice == "" {
			return fmt.Sprintf("%q isn't one of our order types, so I've kept the old one.", v), false
		}
		o.OrderType = choice

	case "budget":
		choice := parse.Choice(v, constant.BudgetOptions)
		if choice == "" {
			return fmt.Sprintf("Budget can be Premium or Value, so I've kept %s.", o.Budget), false
		}
		o.Budget = choice

	case "service":
		choice := parse.Choice(v, constant.ServiceOptions)
		if choice == "" {
			return fmt.Sprintf("Service can be Screen Printing or Embroidery, so I've kept %s.", o.Service), false
		}
		o.Service = choice

	case "apparel":
		apparel := parse.Apparel(v)
		if apparel == "" {
			return fmt.Sprintf("%q isn't a product we offer, so I've kept %s.", v, o.Apparel), false
		}
		o.Apparel = apparel
		if o.Color != "" && parse.Color(o.Color, apparel) == "" {
			// The old color doesn't exist for the new product.
			o.Color = ""
			f.Color = store.StepFlag{}
			f.SummaryShown = false
			return fmt.Sprintf("Done, switched to %ss. Your color isn't available for them, so let's pick a new one.", apparel), true
		}

	case "color":
		color := parse.Color(v, o.Apparel)
		if color == "" {
			colors := constant.ProductCatalog[o.Apparel]
			return fmt.Sprintf("%ss come in: %s. I've kept %s.", o.Apparel, strings.Join(colors, ", "), o.Color), false
		}
		o.Color = color

	case "decoration_location":
		choice := parse.Choice(v, constant.DecorationLocations)
		if choice == "" {
			return fmt.Sprintf("%q isn't one of our placements, so I've kept %s.", v, o.DecorationLocation), false
		}
		o.DecorationLocation = choice

	case "quantity":
		qty, ok := parse.Quantity(v)
		if !ok || qty <= 0 {
			return fmt.Sprintf("%q doesn't look like a quantity, so I've kept %s.", v, o.Quantity), false
		}
		o.Quantity = strconv.Itoa(qty)
		f.QtyNumeric = qty
		if total := parse.SizesTotal(o.Sizes); len(o.Sizes) > 0 && total != qty {
			return fmt.Sprintf("Updated the quantity to %d. Heads up: your size breakdown still adds up to %d.", qty, total), true
		}

	case "sizes":
		sizes := parse.Sizes(v)
		if sizes == nil {
			return fmt.Sprintf("I couldn't read %q as a size breakdown, so I've kept the old one.", v), false
		}
		o.Sizes = sizes
		total := parse.SizesTotal(sizes)
		if total != f.QtyNumeric {
			o.Quantity = strconv.Itoa(total)
			f.QtyNumeric = total
			return fmt.Sprintf("Updated the sizes and set the quantity to match at %d.", total), true
		}

	case "delivery_option":
		lower := strings.ToLower(v)
		choice := parse.Choice(v, constant.DeliveryOptions)
		if choice == "" {
			switch {
			case strings.Contains(lower, "deliver"), strings.Contains(lower, "ship"):
				choice = "Delivery"
			case strings.Contains(lower, "pick"):
				choice = "Pick Up"
			}
		}
		if choice == "" {
			return fmt.Sprintf("Delivery can be Delivery or Pick Up, so I've kept %s.", o.DeliveryOption), false
		}
		o.DeliveryOption = choice
		if choice == "Delivery" && o.DeliveryAddress == "" {
			f.Address = store.StepFlag{}
			f.AwaitingAddress = true
			f.SummaryShown = false
			return "Switched to delivery. I'll need an address.", true
		}

	case "delivery_address":
		o.DeliveryAddress = v

	default:
		return "That's not a field I can change here.", false
	}

	return "Done, I've updated that.", true
}
