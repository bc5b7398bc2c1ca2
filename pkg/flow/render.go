package flow

import (
	"fmt"
	"strings"

	"screenprint-chatbot-be/pkg/flow/parse"
	"screenprint-chatbot-be/pkg/store"
)

// orDash substitutes the dash placeholder for fields not yet collected.
func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "—"
	}
	return v
}

// RenderSummary builds the markdown quote summary shown for review.
func RenderSummary(sess *store.Session) string {
	o := &sess.Order

	logo := "—"
	switch {
	case sess.Flags.LogoViewLink != "":
		logo = fmt.Sprintf("[View](%s)", sess.Flags.LogoViewLink)
	case o.LogoURL != "":
		logo = "Uploaded"
	}

	sizes := "—"
	if len(o.Sizes) > 0 {
		sizes = parse.FormatSizes(o.Sizes)
	}

	var b strings.Builder
	b.WriteString("Here is your quote request summary:\n\n")
	fmt.Fprintf(&b, "**Name:** %s\n", orDash(strings.TrimSpace(o.FirstName+" "+o.LastName)))
	fmt.Fprintf(&b, "**Email:** %s\n", orDash(o.Email))
	fmt.Fprintf(&b, "**Phone:** %s\n", orDash(o.Phone))
	fmt.Fprintf(&b, "**Organization:** %s\n", orDash(o.Organization))
	fmt.Fprintf(&b, "**Order Type:** %s\n", orDash(o.OrderType))
	fmt.Fprintf(&b, "**Budget:** %s\n", orDash(o.Budget))
	fmt.Fprintf(&b, "**Service:** %s\n", orDash(o.Service))
	fmt.Fprintf(&b, "**Apparel:** %s\n", orDash(o.Apparel))
	fmt.Fprintf(&b, "**Color:** %s\n", orDash(o.Color))
	fmt.Fprintf(&b, "**Logo:** %s\n", logo)
	fmt.Fprintf(&b, "**Decoration Location:** %s\n", orDash(o.DecorationLocation))
	fmt.Fprintf(&b, "**Decoration Colors:** %s\n", orDash(o.DecorationColors))
	fmt.Fprintf(&b, "**Quantity:** %s\n", orDash(o.Quantity))
	fmt.Fprintf(&b, "**Sizes:** %s\n", sizes)
	fmt.Fprintf(&b, "**Delivery:** %s\n", orDash(o.DeliveryOption))
	if o.DeliveryOption == "Delivery" {
		fmt.Fprintf(&b, "**Delivery Address:** %s\n", orDash(o.DeliveryAddress))
	}
	fmt.Fprintf(&b, "**Notes:** %s\n", orDash(o.Notes))
	return b.String()
}

// EmailBody converts the summary markdown into plain text for email:
// bold markers are stripped and view links become bare URLs.
func EmailBody(summary string) string {
	body := strings.ReplaceAll(summary, "**", "")
	for {
		start := strings.Index(body, "[View](")
		if start == -1 {
			break
		}
		end := strings.Index(body[start:], ")")
		if end == -1 {
			break
		}
		url := body[start+len("[View](") : start+end]
		body = body[:start] + "View: " + url + body[start+end+1:]
	}
	return body
}
