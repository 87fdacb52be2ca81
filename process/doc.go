// Package process defines the contract between a running git process and
// the code that parses its output.
//
// A Process exposes its output as a channel of Output values, one per line,
// tagged with the stream it came from. The last value on the channel is
// always a Closed sentinel, after which the channel is closed. Lines within
// one stream arrive in order; there is no ordering between stdout and stderr.
//
// Framer splits a byte stream into lines. Git redraws progress with carriage
// returns, so both '\r' and '\n' end a line and "\r\n" counts once.
package process
