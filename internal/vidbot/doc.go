// Package vidbot contains the video collector bot: users send videos with
// captions, the bot keeps them per user and returns them as one zip archive
// on /zip, each file named after its caption.
package vidbot
