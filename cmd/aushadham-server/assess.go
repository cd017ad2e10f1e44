package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HelloOjasMutreja/Aushadham/internal/domain/triage"
)

func assessCmd() *cobra.Command {
	var symptom, description string
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Answer a questionnaire in the terminal and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			svc := triage.NewService(triage.NewMemorySessionRepo(), newEngine(cfg), newAdvisor(cfg))
			return runAssess(cmd.Context(), svc, symptom, description, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&symptom, "symptom", "s", "", "symptom to assess, e.g. \"stomach pain\"")
	cmd.Flags().StringVarP(&description, "description", "d", "", "optional longer description")
	_ = cmd.MarkFlagRequired("symptom")
	return cmd
}

func runAssess(ctx context.Context, svc *triage.Service, symptom, description string, in io.Reader, out io.Writer) error {
	start, err := svc.Start(ctx, symptom, description)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, start.Message)
	fmt.Fprintln(out, "Answer with an option number or free text. Commands: :back, :skip, :quit")

	sc := bufio.NewScanner(in)
	q := start.Question
loop:
	for q != nil {
		printQuestion(out, q)
		if !sc.Scan() {
			break loop
		}

		line := strings.TrimSpace(sc.Text())
		sub := triage.SubmitInput{SessionID: start.SessionID}
		switch line {
		case ":quit":
			break loop
		case ":back":
			sub.Action = triage.ActionPrevious.String()
		case ":skip":
			sub.Action = triage.ActionSkip.String()
		default:
			answer := pickOption(q, line)
			sub.Answer = &answer
		}

		res, err := svc.Submit(ctx, sub)
		if err != nil {
			return err
		}
		if res.Completed {
			fmt.Fprintln(out, res.Message)
			break loop
		}
		if res.Transition == triage.NoOp {
			fmt.Fprintln(out, "Already at the first question.")
		}
		q = res.Question
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read answers: %w", err)
	}

	report, err := svc.Report(ctx, start.SessionID)
	if err != nil {
		return err
	}
	printReport(out, report)
	return nil
}

// pickOption maps "2" to the second option; anything else is used as is.
func pickOption(q *triage.QuestionView, line string) string {
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(q.Options) {
		return line
	}
	return q.Options[n-1]
}

func printQuestion(out io.Writer, q *triage.QuestionView) {
	fmt.Fprintf(out, "\n[%d/%d] %s\n", q.Current, q.Total, q.Text)
	for i, o := range q.Options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, o)
	}
	fmt.Fprint(out, "> ")
}

func printReport(out io.Writer, r *triage.Report) {
	fmt.Fprintf(out, "\nAssessment for %q (%s)\n", r.Symptom, r.AssessmentDate)
	fmt.Fprintf(out, "Answered %d of %d questions\n", r.QuestionsAnswered, r.TotalQuestions)
	fmt.Fprintf(out, "Severity: %s (score %d)\n", r.Severity, r.RiskScore)
	fmt.Fprintf(out, "Urgency: %s\n", r.Urgency)
	if len(r.Recommendations) > 0 {
		fmt.Fprintln(out, "Recommendations:")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(out, "  - %s\n", rec)
		}
	}
	if len(r.SuggestedMedications) > 0 {
		fmt.Fprintln(out, "Over-the-counter options:")
		for _, m := range r.SuggestedMedications {
			fmt.Fprintf(out, "  - %s: %s\n", m.Name, m.Purpose)
		}
	}
	fmt.Fprintf(out, "\n%s\n", r.Disclaimer)
}
