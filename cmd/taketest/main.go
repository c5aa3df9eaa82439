package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/saulo-duarte/testseries-lambda/internal/attempt"
	"github.com/saulo-duarte/testseries-lambda/internal/config"
)

const guidelines = `Guidelines:
  - Read each question carefully and pick one of the four options.
  - The test is submitted automatically when the timer reaches 0:00.
  - Interrupting the program (Ctrl+C) counts as leaving the test and submits it.
  - Answers cannot be changed once the test is submitted.`

const help = `Commands:
  <question> <option>   answer, e.g. "3 2" picks option 2 of question 3
  list                  show questions and your current answers
  time                  show the remaining time
  feedback <text>       leave a comment with the submission
  submit                submit now`

func main() {
	app := &cli.App{
		Name:  "taketest",
		Usage: "take a timed test series from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api", Value: "http://localhost:8080", EnvVars: []string{"TESTSERIES_API"}, Usage: "API base URL"},
			&cli.StringFlag{Name: "token", EnvVars: []string{"TESTSERIES_TOKEN"}, Required: true, Usage: "JWT issued for the student"},
			&cli.StringFlag{Name: "series", Required: true, Usage: "series id"},
			&cli.BoolFlag{Name: "yes", Usage: "acknowledge the guidelines without prompting"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	config.Logger.SetLevel(logrus.ErrorLevel)

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := attempt.NewAPIClient(c.String("api"), c.String("token"), nil)
	series, err := client.FetchSeries(ctx, c.String("series"))
	if err != nil {
		return fmt.Errorf("load series: %w", err)
	}

	out := c.App.Writer
	printIntro(out, series)

	lines := readLines(os.Stdin)

	ack := c.Bool("yes")
	if !ack {
		fmt.Fprint(out, "Type 'yes' to accept and start: ")
		line, ok := <-lines
		ack = ok && strings.EqualFold(strings.TrimSpace(line), "yes")
	}

	session := attempt.NewSession(series, client)
	if err := session.Start(ack); err != nil {
		return err
	}
	fmt.Fprintln(out, help)
	printQuestions(out, session)

	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()
	go session.Run(runCtx)

	// The first signal counts as leaving the test. Restoring the default
	// handler lets a second Ctrl+C quit.
	interrupted := make(chan struct{})
	go func() {
		<-ctx.Done()
		stop()
		close(interrupted)
	}()

	status := time.NewTicker(time.Second)
	defer status.Stop()

	t := &terminal{out: out, session: session}
	return t.loop(interrupted, lines, status.C)
}

// terminal relays user input to a running session until one submission
// succeeds. Failed submissions leave the session open for a retry.
type terminal struct {
	out      io.Writer
	session  *attempt.Session
	reported int
}

func (t *terminal) loop(interrupted <-chan struct{}, lines <-chan string, status <-chan time.Time) error {
	for {
		select {
		case <-t.session.Done():
			printReceipt(t.out, t.session)
			return nil

		case <-interrupted:
			interrupted = nil
			fmt.Fprintln(t.out, "\nLeft the test, submitting.")
			_ = t.session.Blur(context.Background())

		case line, ok := <-lines:
			if !ok {
				lines = nil
				if _, err := t.session.Submit(context.Background()); err != nil && !t.failed() {
					fmt.Fprintln(t.out, "error:", err)
				}
				break
			}
			if err := handle(t.out, t.session, line); err != nil && !t.failed() {
				fmt.Fprintln(t.out, "error:", err)
			}

		case <-status:
		}

		if err := t.reportFailure(lines != nil, interrupted != nil); err != nil {
			return err
		}
	}
}

func (t *terminal) failed() bool {
	return t.session.Failures() > t.reported
}

// reportFailure tells the user about a submission that has failed since the
// last report, including automatic ones fired by the countdown. It gives up
// only when no input is left to retry with.
func (t *terminal) reportFailure(canType, canInterrupt bool) error {
	if !t.failed() {
		return nil
	}
	t.reported = t.session.Failures()
	err := t.session.LastError()
	if err == nil {
		return nil
	}

	fmt.Fprintf(t.out, "Submission failed: %v\n", err)
	switch {
	case canType:
		fmt.Fprintln(t.out, "Your answers are kept. Type 'submit' to retry.")
	case canInterrupt:
		fmt.Fprintln(t.out, "Your answers are kept. Press Ctrl+C to retry.")
	default:
		return fmt.Errorf("submit attempt: %w", err)
	}
	return nil
}

func handle(out io.Writer, s *attempt.Session, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "list":
		printQuestions(out, s)
	case "time":
		if s.Timed() {
			fmt.Fprintln(out, "remaining", attempt.FormatClock(s.Remaining()))
		} else {
			fmt.Fprintln(out, "elapsed", attempt.FormatClock(s.Elapsed()))
		}
	case "feedback":
		s.SetFeedback(strings.TrimSpace(strings.TrimPrefix(line, "feedback")))
	case "submit":
		if _, err := s.Submit(context.Background()); err != nil {
			return err
		}
	case "help":
		fmt.Fprintln(out, help)
	default:
		if len(fields) != 2 {
			return fmt.Errorf("unknown command %q", fields[0])
		}
		return answer(s, fields[0], fields[1])
	}
	return nil
}

func answer(s *attempt.Session, qArg, oArg string) error {
	qs := s.Series().Questions
	qn, err := strconv.Atoi(qArg)
	if err != nil || qn < 1 || qn > len(qs) {
		return fmt.Errorf("question must be between 1 and %d", len(qs))
	}
	q := qs[qn-1]
	on, err := strconv.Atoi(oArg)
	if err != nil || on < 1 || on > len(q.Options) {
		return fmt.Errorf("option must be between 1 and %d", len(q.Options))
	}
	return s.Answer(q.ID, q.Options[on-1])
}

func readLines(r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			ch <- sc.Text()
		}
	}()
	return ch
}

func printIntro(out io.Writer, s *attempt.Series) {
	fmt.Fprintf(out, "%s\n%s\n\n", s.Title, s.Description)
	if s.Timer > 0 {
		fmt.Fprintf(out, "Questions: %d  Time limit: %s\n\n", len(s.Questions), attempt.FormatClock(s.TimerSeconds()))
	} else {
		fmt.Fprintf(out, "Questions: %d  No time limit\n\n", len(s.Questions))
	}
	fmt.Fprintln(out, guidelines)
}

func printQuestions(out io.Writer, s *attempt.Session) {
	answers := s.Answers()
	for i, q := range s.Series().Questions {
		fmt.Fprintf(out, "\n%d. %s\n", i+1, q.Text)
		for j, o := range q.Options {
			mark := " "
			if answers[q.ID] == o {
				mark = "*"
			}
			fmt.Fprintf(out, "  %s %d) %s\n", mark, j+1, o)
		}
	}
	fmt.Fprintln(out)
}

func printReceipt(out io.Writer, s *attempt.Session) {
	r := s.Receipt()
	if r == nil {
		return
	}
	if s.Reason().IsAutomatic() {
		fmt.Fprintf(out, "\nSubmitted automatically: %s\n", s.Reason())
	}
	fmt.Fprintf(out, "\nScore: %d/%d (%.2f%%) in %s\n",
		r.CorrectCount, r.CorrectCount+r.WrongCount, r.Percentage, attempt.FormatClock(r.TimeTaken))
	for i, aq := range r.AttemptedQuestions {
		status := "wrong"
		if aq.IsCorrect {
			status = "correct"
		}
		selected := aq.SelectedOption
		if selected == "" {
			selected = "(not answered)"
		}
		fmt.Fprintf(out, "%d. %s\n   yours: %s  answer: %s  [%s]\n", i+1, aq.QuestionText, selected, aq.CorrectOption, status)
	}
}
