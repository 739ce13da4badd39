package sim

// NotificationKind tints a notification in the UI
type NotificationKind int

const (
	NoteInfo NotificationKind = iota
	NoteCoin
	NoteFuel
	NoteWarning
)

// Notification is a short message shown over the game for a fixed number of frames
type Notification struct {
	Text string
	Kind NotificationKind
	TTL  int // Frames left
}

// Notifier keeps the transient messages. It is aged once per frame by whoever
// drives the game, independent of the run state.
type Notifier struct {
	ttl   int
	notes []Notification
}

// NewNotifier creates a notifier whose messages live for ttl frames
func NewNotifier(ttl int) *Notifier {
	if ttl <= 0 {
		ttl = DefaultPhysics().NotificationTicks
	}
	return &Notifier{ttl: ttl}
}

// Push adds a message
func (n *Notifier) Push(text string, kind NotificationKind) {
	n.notes = append(n.notes, Notification{Text: text, Kind: kind, TTL: n.ttl})
}

// Update ages every message by one frame and drops the expired ones
func (n *Notifier) Update() {
	live := n.notes[:0]
	for _, note := range n.notes {
		note.TTL--
		if note.TTL > 0 {
			live = append(live, note)
		}
	}
	n.notes = live
}

// Active returns a copy of the live messages, oldest first
func (n *Notifier) Active() []Notification {
	return append([]Notification(nil), n.notes...)
}

// Clear drops every message
func (n *Notifier) Clear() {
	n.notes = n.notes[:0]
}
