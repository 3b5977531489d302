// Package agent relays an interactive conversation to an Azure-hosted
// orchestrator agent over the assistants API. A Relay owns one
// conversation thread; the REPL wraps it in a terminal loop.
package agent
