// Package domain holds chat types shared across layers
package domain

// Event is one inbound chat message from the platform client
type Event struct {
	// Channel is the chat room the message was seen in
	Channel string

	// Sender is the display name of the author
	Sender string

	// Text is the raw message body
	Text string

	// ReplyTo is the platform token used to thread a reply to this
	// message
	ReplyTo string
}
