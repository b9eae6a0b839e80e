package vidbot

import "fmt"

// Replies sent to users.
const (
	msgInstructions = "📹 Video Collector Bot\n\n" +
		"1. Send me video files with descriptions (captions)\n" +
		"2. I'll collect them all\n" +
		"3. Send /zip when you're done to get a zip file\n" +
		"4. All videos will be named according to their descriptions\n\n" +
		"Send your first video with a description to begin!"

	msgInvalidVideo   = "⚠️ Please send a valid video file!"
	msgMissingCaption = "⚠️ Please include a description (caption) with your video!"
	msgNoVideos       = "⚠️ No videos collected yet!"
	msgArchiveCaption = "Here are your videos with descriptive names!"
)

// Bot profile shown in Telegram.
const (
	About       = "Bundles your captioned videos into one zip file."
	Description = "Send videos with a caption, then /zip to get them back in one archive, each file named after its caption."
)

func msgSaved(name string, total int) string {
	return fmt.Sprintf("✅ Video saved as: %s\nTotal videos collected: %d\nSend more videos or /zip when done", name, total)
}

func msgArchiveFailed(err error) string {
	return fmt.Sprintf("⚠️ Error creating zip file: %v", err)
}
