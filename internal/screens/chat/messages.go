package chat

// replyMsg carries the outcome of one assistant round trip.
type replyMsg struct {
	reply string
	err   error
}
