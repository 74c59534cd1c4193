package module

import "streamlate/internal/platform/config"

// Options holds configuration settings for the chat module
type Options struct {
	BotName        string
	ReplyPerMinute int
	ReplyBurst     int
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	bf := cfg.Prefix("BOT_")
	return Options{
		BotName:        bf.MayString("NAME", "streamlate"),
		ReplyPerMinute: bf.MayInt("REPLY_PER_MINUTE", 20),
		ReplyBurst:     bf.MayInt("REPLY_BURST", 3),
	}
}
