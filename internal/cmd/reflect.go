package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"studyflow/internal/domain"
	"studyflow/internal/logging"
	"studyflow/internal/theme"
)

// ReflectCmd attaches a self-assessment to a session
type ReflectCmd struct {
	Completion string `help:"Task completion: complete, partial or none" short:"c"`
	Difficulty int    `help:"Difficulty from 1 (easy) to 5 (hard)" short:"D"`
	ID         string `arg:"" optional:"" help:"Session id or prefix (defaults to the latest session)"`
	Local      bool   `help:"Score locally without contacting the service"`
	Task       string `help:"What you worked on" short:"t"`
}

// reflectionInput holds the values collected from flags or the form
type reflectionInput struct {
	completion string
	difficulty string
	task       string
}

// Run executes the reflect command
func (r *ReflectCmd) Run(container *Container) error {
	session, err := r.session(container)
	if err != nil {
		return err
	}

	input := reflectionInput{completion: r.Completion, task: r.Task}
	if r.Difficulty != 0 {
		input.difficulty = strconv.Itoa(r.Difficulty)
	}

	if input.completion == "" || input.difficulty == "" {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("--completion and --difficulty are required when not running in a terminal")
		}
		if err := r.runForm(session, &input); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("Cancelled.")
				return nil
			}
			return err
		}
	}

	completion, err := domain.ParseCompletionStatus(input.completion)
	if err != nil {
		return err
	}
	difficulty, err := strconv.Atoi(input.difficulty)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, input.difficulty)
	}

	reflection, err := domain.NewReflection(session.ID, input.task, completion, difficulty, time.Now())
	if err != nil {
		return err
	}

	score, source := r.score(container, reflection, session)
	if err := reflection.AttachScore(score); err != nil {
		return err
	}
	if err := container.Cache.SaveReflection(reflection); err != nil {
		return err
	}

	fmt.Printf("Reflection saved for %s. Efficiency: %s %s\n",
		theme.TitleStyle.Render(shortID(session.ID)),
		theme.FormatScore(reflection.EfficiencyScore),
		theme.MutedStyle.Render("("+source+")"))
	return nil
}

func (r *ReflectCmd) session(container *Container) (domain.Session, error) {
	if r.ID != "" {
		return findSession(container.Cache, r.ID)
	}
	return latestSession(container.Cache)
}

// score asks the service first and falls back to the local formula
func (r *ReflectCmd) score(container *Container, reflection domain.Reflection, session domain.Session) (float64, string) {
	if !r.Local {
		ctx, cancel := context.WithTimeout(context.Background(), container.Config.RequestTimeout)
		defer cancel()

		score, err := container.Uploader.SubmitReflection(ctx, reflection)
		if err == nil {
			return score, "remote"
		}
		logging.Logger.Warn("Remote scoring failed, using local score", "error", err)
	}
	return domain.ScoreForSession(reflection, session), "local"
}

func (r *ReflectCmd) runForm(session domain.Session, input *reflectionInput) error {
	completionOptions := make([]huh.Option[string], 0, len(domain.CompletionStatuses))
	for _, c := range domain.CompletionStatuses {
		completionOptions = append(completionOptions, huh.NewOption(string(c), string(c)))
	}

	difficultyOptions := make([]huh.Option[string], 0, domain.MaxDifficulty)
	for d := domain.MinDifficulty; d <= domain.MaxDifficulty; d++ {
		v := strconv.Itoa(d)
		difficultyOptions = append(difficultyOptions, huh.NewOption(v, v))
	}

	if input.completion == "" {
		input.completion = string(domain.CompletionPartial)
	}
	if input.difficulty == "" {
		input.difficulty = "3"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What did you work on?").
				Description(fmt.Sprintf("Session %s (%s)", shortID(session.ID), session.SubjectOr("no subject"))).
				Value(&input.task).
				CharLimit(500),
			huh.NewSelect[string]().
				Title("Did you finish it?").
				Options(completionOptions...).
				Value(&input.completion),
			huh.NewSelect[string]().
				Title("How hard was it?").
				Options(difficultyOptions...).
				Value(&input.difficulty),
		),
	)

	return form.Run()
}
