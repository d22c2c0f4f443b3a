package social

import (
	"strings"
	"time"
)

// BotEmail is the reserved address identifying the single echo bot account.
const BotEmail = "bot@demo.test"

const (
	botPromptReply   = "Say something and I'll echo it back."
	botGreetingReply = "Hello! I'm an echo bot. Say anything."
)

// BotReply maps inbound text to the scripted reply. Rules run in order on
// the lowercase-trimmed input; the echo case keeps the original text as sent.
func BotReply(text string, now time.Time) string {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return botPromptReply
	}
	if strings.Contains(t, "hello") || strings.Contains(t, "hi") || strings.Contains(t, "hey") {
		return botGreetingReply
	}
	if strings.HasPrefix(t, "/time") {
		return "Server time: " + FormatTime(now)
	}
	return "Echo: " + text
}

// EnsureBotAccount creates the echo bot account if it is absent, or
// retrofits the bot flag onto an existing account with the reserved email.
// It is idempotent; reruns never create duplicates. The second return
// reports whether the document changed.
func EnsureBotAccount(doc *Document, now time.Time) (User, bool) {
	for i := range doc.Users {
		if doc.Users[i].Email != BotEmail {
			continue
		}
		if doc.Users[i].Bot {
			return doc.Users[i], false
		}
		doc.Users[i].Bot = true
		return doc.Users[i], true
	}

	bot := NewUser(BotEmail, "", "Echo Bot", now)
	bot.Bio = "I repeat what you say. Try /time"
	bot.Bot = true
	bot.Privacy.Visibility = "public"
	doc.Users = append(doc.Users, bot)
	return bot, true
}
