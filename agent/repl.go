package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// REPL drives an interactive conversation with a Relay over plain
// text streams.
type REPL struct {
	relay  *Relay
	input  io.Reader
	output io.Writer
}

// NewREPL creates a REPL reading questions from input and writing
// prompts and replies to output.
func NewREPL(relay *Relay, input io.Reader, output io.Writer) *REPL {
	return &REPL{relay: relay, input: input, output: output}
}

// Run starts the conversation thread and loops until the user quits or
// input is exhausted. A failing round-trip is reported and the loop
// continues; only thread creation and I/O failures end the session.
func (r *REPL) Run(ctx context.Context) error {
	if err := r.relay.Start(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r.input)
	for {
		fmt.Fprint(r.output, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(r.output)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		reply, err := r.relay.Ask(ctx, line)
		if err != nil {
			fmt.Fprintf(r.output, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(r.output, "Agent: %s\n", reply)
	}
}
