package notification

// Notification channels
const (
	ChannelEmail    = "email"
	ChannelTelegram = "telegram"
)

// Template ids
const (
	TemplateWelcome           = "welcome"
	TemplateOrderConfirmation = "order_confirmation"
	TemplateRepairStatus      = "repair_status"
	TemplateQuoteReceived     = "quote_received"
)

// Event is one best-effort notification to deliver. It is immutable once
// constructed, has no persisted identity, and is delivered at most once:
// failures are logged and counted, never retried and never surfaced to the
// operation that triggered the event.
type Event struct {
	Template  string
	Channel   string
	Recipient string // email address or Telegram chat id
	Language  string // sq, en; empty defaults to sq
	Params    map[string]string
}
