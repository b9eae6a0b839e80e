// Package telekit is a small framework for building Telegram bots on top of
// the MTProto client from gotd/td.
//
// It owns the connection and the update loop and routes updates to
// registered handlers:
//   - Message handlers with filters (users, chats, direction, custom)
//   - Commands, optionally locked per user and synced to the bot menu
//   - Albums (grouped media) delivered as a single batch
//   - An error hook that receives every handler error or panic
//
// Basic usage:
//
//	bot, err := telekit.New(telekit.Config{
//	    APIID:    12345,
//	    APIHash:  "your-api-hash",
//	    BotToken: "your-bot-token",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bot.Command("start", func(ctx *telekit.Context) error {
//	    return ctx.Reply("Hello!")
//	})
//
//	bot.OnError(func(ctx *telekit.Context, err error) {
//	    // Clean up whatever the failed handler left behind
//	})
//
//	if err := bot.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
package telekit
