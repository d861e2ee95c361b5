package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/chzyer/readline"
)

func interactive(d *dial, historyFile string) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "dial> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	return repl(l.Readline, l.Stdout(), d)
}

// repl feeds lines from readLine to d until readLine returns io.EOF, at which
// point it writes the final results to w.
func repl(readLine func() (string, error), w io.Writer, d *dial) error {
	for {
		line, err := readLine()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			printResults(w, d)
			return nil
		default:
			return err
		}
		out, err := evalLine(d, line)
		if err != nil {
			log.Println(err)
			continue
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
	}
}

// evalLine applies one line of interactive input to d and returns the text
// to show for it.
func evalLine(d *dial, line string) (string, error) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return "", nil
	case "reset":
		d.reset()
		return fmt.Sprintf("position %d", d.pos), nil
	}
	r, err := parseRotation(line)
	if err != nil {
		return "", err
	}
	s := d.rotate(r)
	return fmt.Sprintf("%s; part 1: %d, part 2: %s", s, d.landed, d.crossed.String()), nil
}
