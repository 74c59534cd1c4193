// Package twitch adapts the Twitch IRC chat gateway to the chat ports.
//
// The gateway speaks a line-based IRC subset over TLS. Only what the bot
// needs is implemented: login, capability request for message tags,
// channel join, PRIVMSG intake and threaded replies
package twitch

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"sync"

	perr "streamlate/internal/platform/errors"
	"streamlate/internal/platform/logger"
	"streamlate/internal/services/chat/domain"
)

// DefaultAddr is the TLS endpoint of the chat gateway
const DefaultAddr = "irc.chat.twitch.tv:6697"

// Config identifies the bot on the gateway
type Config struct {
	// Addr is the gateway endpoint; empty means DefaultAddr
	Addr string

	// Nick is the bot's login name
	Nick string

	// Token is the OAuth access token, without the "oauth:" prefix
	Token string

	// Channel is the chat room to join, without the leading '#'
	Channel string
}

// Client implements domain.EventSource and domain.Replier over one IRC
// connection. Events must be called before Reply
type Client struct {
	cfg Config
	log logger.Logger

	mu   sync.Mutex
	conn *tls.Conn
}

// New constructs a client; no connection is made until Events
func New(cfg Config, log logger.Logger) *Client {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	cfg.Channel = strings.TrimPrefix(strings.ToLower(cfg.Channel), "#")
	return &Client{cfg: cfg, log: log.With().Str("component", "twitch").Logger()}
}

// Events dials the gateway, logs in, joins the channel and streams chat
// messages until ctx is done or the connection drops. The returned
// channel closes on exit
func (c *Client) Events(ctx context.Context) (<-chan domain.Event, error) {
	conn, err := tls.Dial("tcp", c.cfg.Addr, nil)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "twitch: dialing gateway")
	}
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	for _, line := range []string{
		"CAP REQ :twitch.tv/tags twitch.tv/commands",
		"PASS oauth:" + c.cfg.Token,
		"NICK " + strings.ToLower(c.cfg.Nick),
		"JOIN #" + c.cfg.Channel,
	} {
		if err := c.send(line); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	events := make(chan domain.Event, 64)
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()
	go c.readLoop(conn, events)
	return events, nil
}

func (c *Client) readLoop(conn *tls.Conn, events chan<- domain.Event) {
	defer close(events)
	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 0, 8192), 64*1024)
	for sc.Scan() {
		m := parseLine(sc.Text())
		switch m.command {
		case "PING":
			if err := c.send("PONG :" + m.text); err != nil {
				return
			}
		case "NOTICE":
			// login failures arrive as notices before the disconnect
			c.log.Warn().Str("notice", m.text).Msg("gateway notice")
		case "RECONNECT":
			c.log.Info().Msg("gateway requested reconnect")
			return
		case "PRIVMSG":
			if len(m.params) == 0 {
				continue
			}
			sender := m.tags["display-name"]
			if sender == "" {
				sender = m.nick
			}
			events <- domain.Event{
				Channel: strings.TrimPrefix(m.params[0], "#"),
				Sender:  sender,
				Text:    m.text,
				ReplyTo: m.tags["id"],
			}
		}
	}
	if err := sc.Err(); err != nil {
		c.log.Warn().Err(err).Msg("gateway read ended")
	}
}

// Reply satisfies domain.Replier. Replies thread onto the original
// message when its ID is known
func (c *Client) Reply(_ context.Context, ev domain.Event, text string) error {
	line := fmt.Sprintf("PRIVMSG #%s :%s", c.cfg.Channel, sanitize(text))
	if ev.ReplyTo != "" {
		line = fmt.Sprintf("@reply-parent-msg-id=%s %s", escapeTag(ev.ReplyTo), line)
	}
	return c.send(line)
}

func (c *Client) send(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return perr.Unavailablef("twitch: not connected")
	}
	if _, err := c.conn.Write([]byte(line + "\r\n")); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "twitch: writing to gateway")
	}
	return nil
}

// sanitize keeps a reply on one protocol line
func sanitize(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
