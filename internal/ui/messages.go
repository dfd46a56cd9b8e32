package ui

// savedMsg is sent when a wizard step's state has been persisted
type savedMsg struct {
	err error
}

// exportDoneMsg is sent when a review-screen export completes
type exportDoneMsg struct {
	files int
	dest  string
	err   error
}
