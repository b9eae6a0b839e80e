// Package collector holds the per-user state of the video collector bot:
// caption sanitizing, the temporary workspace that downloaded videos and
// generated archives live in, the session-keyed collection store, and the
// zip archive writer.
//
// Nothing in this package talks to Telegram. Handlers in internal/vidbot
// combine these pieces with the telekit framework.
package collector
